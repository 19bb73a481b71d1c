package analytics

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ananyadas/finquest/internal/analytics"
	"github.com/ananyadas/finquest/internal/auth"
)

type Handler struct {
	svc *analytics.Service
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/trends", h.trends)
	r.Get("/comparison", h.comparison)
	r.Get("/forecast", h.forecast)
	r.Get("/subscriptions", h.subscriptions)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	summary, err := h.svc.Dashboard(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toSummaryResponse(summary))
}

func (h *Handler) trends(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	period := analytics.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = analytics.PeriodMonth
	}

	count := queryInt(r, "count", 6)

	buckets, err := h.svc.SpendingTrends(r.Context(), userID, period, count)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toTrendResponse(buckets))
}

func (h *Handler) comparison(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	months := queryInt(r, "months", 6)

	comparison, err := h.svc.CategoryComparison(r.Context(), userID, months)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toComparisonResponse(comparison))
}

func (h *Handler) forecast(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	months := queryInt(r, "months", 6)

	forecast, err := h.svc.CashFlowForecast(r.Context(), userID, months)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toForecastResponse(forecast))
}

func (h *Handler) subscriptions(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	report, err := h.svc.SubscriptionAnalytics(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toSubscriptionResponse(report))
}

func queryInt(r *http.Request, key string, fallback int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}

	return n
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

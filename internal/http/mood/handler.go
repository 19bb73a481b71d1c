package mood

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/auth"
	"github.com/ananyadas/finquest/internal/mood"
)

type Handler struct {
	svc *mood.Service
}

func NewHandler(svc *mood.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.logMood)
	r.Get("/", h.list)
	r.Get("/insights", h.insights)
}

type logMoodRequest struct {
	Mood mood.Kind `json:"mood"`
	Note string    `json:"note"`
}

type logResponse struct {
	ID             uuid.UUID `json:"id"`
	Day            string    `json:"day"`
	Mood           mood.Kind `json:"mood"`
	Note           string    `json:"note,omitempty"`
	SpendingAmount int64     `json:"spending_amount"`
}

func toLogResponse(l *mood.Log) logResponse {
	return logResponse{
		ID:             l.ID,
		Day:            l.Day.Format(time.DateOnly),
		Mood:           l.Mood,
		Note:           l.Note,
		SpendingAmount: l.SpendingAmount,
	}
}

func (h *Handler) logMood(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req logMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.LogMood(r.Context(), userID, req.Mood, req.Note)
	if err != nil {
		if errors.Is(err, mood.ErrInvalidMood) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toLogResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	logs, err := h.svc.ListRecent(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]logResponse, len(logs))
	for i, l := range logs {
		resp[i] = toLogResponse(l)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type correlationResponse struct {
	Mood            mood.Kind `json:"mood"`
	Days            int       `json:"days"`
	TotalSpending   int64     `json:"total_spending"`
	AverageSpending int64     `json:"average_spending"`
}

type insightsResponse struct {
	Correlations []correlationResponse `json:"correlations"`
	HighestMood  mood.Kind             `json:"highest_mood,omitempty"`
	LowestMood   mood.Kind             `json:"lowest_mood,omitempty"`
	TotalLogs    int                   `json:"total_logs"`
	Logs         []logResponse         `json:"logs"`
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	days := mood.DefaultLookbackDays
	if s := r.URL.Query().Get("days"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			days = n
		}
	}

	insights, err := h.svc.Analyze(r.Context(), userID, days)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := insightsResponse{
		Correlations: make([]correlationResponse, 0, len(insights.Correlations)),
		HighestMood:  insights.HighestMood,
		LowestMood:   insights.LowestMood,
		TotalLogs:    insights.TotalLogs,
		Logs:         make([]logResponse, 0, len(insights.Logs)),
	}

	for _, l := range insights.Logs {
		resp.Logs = append(resp.Logs, toLogResponse(l))
	}

	for _, c := range insights.Correlations {
		resp.Correlations = append(resp.Correlations, correlationResponse{
			Mood:            c.Mood,
			Days:            c.Days,
			TotalSpending:   c.TotalSpending,
			AverageSpending: c.AverageSpending,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

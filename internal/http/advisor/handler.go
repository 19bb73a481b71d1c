package advisor

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ananyadas/finquest/internal/advisor"
	"github.com/ananyadas/finquest/internal/auth"
)

type Handler struct {
	svc *advisor.Service
}

func NewHandler(svc *advisor.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/ask", h.ask)
	r.Get("/selfcare", h.selfCare)
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (h *Handler) ask(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	answer, err := h.svc.Ask(r.Context(), userID, req.Question)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(askResponse{Answer: answer}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type selfCareResponse struct {
	SafeSpendAmount int64    `json:"safe_spend_amount"`
	SavingsRate     float64  `json:"savings_rate"`
	Suggestions     []string `json:"suggestions"`
}

func (h *Handler) selfCare(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	report, err := h.svc.SelfCare(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := selfCareResponse{
		SafeSpendAmount: report.SafeSpendAmount,
		SavingsRate:     report.SavingsRate,
		Suggestions:     report.Suggestions,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

package category

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/auth"
	"github.com/ananyadas/finquest/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

type categoryRequest struct {
	Name  string      `json:"name"`
	Kind  ledger.Kind `json:"kind"`
	Color string      `json:"color"`
}

type categoryResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Kind      ledger.Kind `json:"kind"`
	Color     string      `json:"color,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func toResponse(cat *ledger.Category) categoryResponse {
	return categoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		Kind:      cat.Kind,
		Color:     cat.Color,
		CreatedAt: cat.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cat, err := h.svc.CreateCategory(r.Context(), userID, ledger.CreateCategoryParams{
		Name:  req.Name,
		Kind:  req.Kind,
		Color: req.Color,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(cat)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	categories, err := h.svc.ListCategories(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]categoryResponse, len(categories))
	for i, cat := range categories {
		resp[i] = toResponse(cat)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			http.Error(w, "category not found", http.StatusNotFound)
		case errors.Is(err, ledger.ErrUnauthorized):
			http.Error(w, "forbidden", http.StatusForbidden)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

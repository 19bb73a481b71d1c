package bank

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/auth"
	"github.com/ananyadas/finquest/internal/bank"
)

type Handler struct {
	svc *bank.Service
}

func NewHandler(svc *bank.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.connect)
	r.Get("/", h.list)
	r.Post("/{id}/sync", h.sync)
	r.Delete("/{id}", h.disconnect)
}

type connectRequest struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	Provider      string `json:"provider"`
}

type connectionResponse struct {
	ID            uuid.UUID   `json:"id"`
	BankName      string      `json:"bank_name"`
	AccountNumber string      `json:"account_number"`
	Provider      string      `json:"provider"`
	Status        bank.Status `json:"status"`
	LastSyncedAt  *time.Time  `json:"last_synced_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func toResponse(c *bank.Connection) connectionResponse {
	return connectionResponse{
		ID:            c.ID,
		BankName:      c.BankName,
		AccountNumber: c.MaskedAccountNumber(),
		Provider:      c.Provider,
		Status:        c.Status,
		LastSyncedAt:  c.LastSyncedAt,
		CreatedAt:     c.CreatedAt,
	}
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Connect(r.Context(), userID, bank.ConnectParams{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Provider:      req.Provider,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	connections, err := h.svc.ListConnections(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]connectionResponse, len(connections))
	for i, c := range connections {
		resp[i] = toResponse(c)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Sync(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Disconnect(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bank.ErrNotFound):
		http.Error(w, "connection not found", http.StatusNotFound)
	case errors.Is(err, bank.ErrUnauthorized):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, bank.ErrDisconnected):
		http.Error(w, "connection is disconnected", http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

package gamify

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/auth"
	"github.com/ananyadas/finquest/internal/gamify"
)

type Handler struct {
	svc *gamify.Service
}

func NewHandler(svc *gamify.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/progress", h.progress)
	r.Get("/achievements", h.achievements)
	r.Get("/challenges", h.listChallenges)
	r.Post("/challenges/generate", h.generateChallenges)
	r.Post("/challenges/{id}/complete", h.completeChallenge)
	r.Get("/lessons", h.listLessons)
	r.Patch("/lessons/{id}/progress", h.updateLessonProgress)
}

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	p, err := h.svc.GetProgress(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(p))
}

func (h *Handler) achievements(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	achievements, err := h.svc.ListAchievements(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toAchievementList(achievements))
}

func (h *Handler) listChallenges(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	challenges, err := h.svc.ListChallenges(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toChallengeList(challenges))
}

func (h *Handler) generateChallenges(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	challenges, err := h.svc.GenerateChallenges(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toChallengeList(challenges))
}

func (h *Handler) completeChallenge(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.CompleteChallenge(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, gamify.ErrNotFound):
			http.Error(w, "challenge not found", http.StatusNotFound)
		case errors.Is(err, gamify.ErrUnauthorized):
			http.Error(w, "forbidden", http.StatusForbidden)
		case errors.Is(err, gamify.ErrChallengeNotActive):
			http.Error(w, "challenge is not active", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, toChallengeResponse(c))
}

func (h *Handler) listLessons(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	lessons, err := h.svc.ListLessons(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toLessonList(lessons))
}

type lessonProgressRequest struct {
	Progress int `json:"progress"`
}

func (h *Handler) updateLessonProgress(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req lessonProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ul, err := h.svc.UpdateLessonProgress(r.Context(), userID, id, req.Progress)
	if err != nil {
		switch {
		case errors.Is(err, gamify.ErrNotFound):
			http.Error(w, "lesson not found", http.StatusNotFound)
		case errors.Is(err, gamify.ErrInvalidProgress):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, toUserLessonResponse(ul))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

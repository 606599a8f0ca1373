package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/salgadostudio/booking-site/internal/logger"
	"github.com/salgadostudio/booking-site/internal/repository"
	"github.com/salgadostudio/booking-site/internal/service"
)

// AdminHandler serves the session-protected submission list and mutations.
type AdminHandler struct {
	subSvc *service.SubmissionService
}

func NewAdminHandler(subSvc *service.SubmissionService) *AdminHandler {
	return &AdminHandler{subSvc: subSvc}
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subSvc.List()
	if err != nil {
		logger.Log.Error("load submissions failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not load submissions.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"submissions": subs})
}

func (h *AdminHandler) SetLookedAt(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		LookedAt json.RawMessage `json:"lookedAt"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The admin front-end historically sent both true and "true".
	lookedAt := string(req.LookedAt) == "true" || string(req.LookedAt) == `"true"`

	sub, err := h.subSvc.SetLookedAt(id, lookedAt)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Submission not found.")
		return
	}
	if err != nil {
		logger.Log.Error("update submission failed", zap.Error(err), zap.String("id", id))
		writeError(w, http.StatusInternalServerError, "Could not update submission.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "submission": sub})
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.subSvc.Delete(id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Submission not found.")
		return
	}
	if err != nil {
		logger.Log.Error("delete submission failed", zap.Error(err), zap.String("id", id))
		writeError(w, http.StatusInternalServerError, "Could not delete submission.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

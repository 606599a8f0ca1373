package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/salgadostudio/booking-site/internal/logger"
	"github.com/salgadostudio/booking-site/internal/service"
)

// BookingHandler is the public intake path for new submissions.
type BookingHandler struct {
	subSvc *service.SubmissionService
}

func NewBookingHandler(subSvc *service.SubmissionService) *BookingHandler {
	return &BookingHandler{subSvc: subSvc}
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if err := readJSON(r, &fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := h.subSvc.Submit(fields)
	if errors.Is(err, service.ErrValidation) {
		writeError(w, http.StatusBadRequest, service.ErrValidation.Error())
		return
	}
	if err != nil {
		logger.Log.Error("save submission failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not save submission.")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/qform/middleware"
	"github.com/danielhkuo/qform/models"
	"github.com/danielhkuo/qform/questions"
)

// FormHandler serves read-only form state. Rendering is a collaborator
// concern: the handler returns canonical state objects, never markup.
type FormHandler struct {
	questions *questions.Manager
	started   time.Time
}

func NewFormHandler(qm *questions.Manager) *FormHandler {
	return &FormHandler{questions: qm, started: time.Now()}
}

// GetForm handles GET /questions
// Returns all questions in ordinal order, each with its options in ordinal
// order.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	qs, err := h.questions.List(r.Context())
	if err != nil {
		writeError(w, err, "Failed to load form")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, qs)
}

// Health handles GET /health
func (h *FormHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Uptime: humanize.RelTime(h.started, time.Now(), "", ""),
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/qform/middleware"
	"github.com/danielhkuo/qform/models"
	"github.com/danielhkuo/qform/questions"
)

type OptionHandler struct {
	options *questions.OptionManager
}

func NewOptionHandler(om *questions.OptionManager) *OptionHandler {
	return &OptionHandler{options: om}
}

// Create handles POST /questions/{id}/options
func (h *OptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	opt, err := h.options.Add(r.Context(), questionID)
	if err != nil {
		writeError(w, err, "Failed to create option")
		return
	}

	slog.Info("option added", "question_id", questionID, "option_id", opt.ID, "ord", opt.Ord)

	middleware.JSONResponse(w, http.StatusCreated, opt)
}

// Edit handles PATCH /questions/{id}/options/{optionID}
func (h *OptionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	optionID := r.PathValue("optionID")
	if questionID == "" || optionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id and option id are required")
		return
	}

	var req models.EditOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	opt, err := h.options.Edit(r.Context(), questionID, optionID, req.Text, req.Selected)
	if err != nil {
		writeError(w, err, "Failed to edit option")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, opt)
}

// Delete handles DELETE /questions/{id}/options/{optionID}
func (h *OptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	optionID := r.PathValue("optionID")
	if questionID == "" || optionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id and option id are required")
		return
	}

	if err := h.options.Delete(r.Context(), questionID, optionID); err != nil {
		writeError(w, err, "Failed to delete option")
		return
	}

	slog.Info("option deleted", "question_id", questionID, "option_id", optionID)

	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT /questions/{id}/options/reorder
func (h *OptionHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	var req models.ReorderOptionsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.options.Reorder(r.Context(), questionID, req.OptionIDs); err != nil {
		writeError(w, err, "Failed to reorder options")
		return
	}

	slog.Info("options reordered", "question_id", questionID, "count", len(req.OptionIDs))

	w.WriteHeader(http.StatusNoContent)
}

// ReplaceAll handles PUT /questions/{id}/options
func (h *OptionHandler) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	var req models.ReplaceOptionsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	opts, err := h.options.ReplaceAll(r.Context(), questionID, req.Options)
	if err != nil {
		writeError(w, err, "Failed to replace options")
		return
	}

	slog.Info("options replaced", "question_id", questionID, "count", len(opts))

	middleware.JSONResponse(w, http.StatusOK, opts)
}

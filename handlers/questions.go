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

type QuestionHandler struct {
	questions *questions.Manager
}

func NewQuestionHandler(qm *questions.Manager) *QuestionHandler {
	return &QuestionHandler{questions: qm}
}

// Create handles POST /questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	question, err := h.questions.Add(r.Context())
	if err != nil {
		writeError(w, err, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", question.ID, "ord", question.Ord)

	middleware.JSONResponse(w, http.StatusCreated, question)
}

// Edit handles PUT /questions/{id}
func (h *QuestionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	var req models.EditQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	question, err := h.questions.EditText(r.Context(), id, req.Text)
	if err != nil {
		writeError(w, err, "Failed to edit question")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, question)
}

// Delete handles DELETE /questions/{id}
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id is required")
		return
	}

	if err := h.questions.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete question")
		return
	}

	slog.Info("question deleted", "question_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// Reorder handles PUT /questions/reorder
func (h *QuestionHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderQuestionsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.questions.Reorder(r.Context(), req.QuestionIDs); err != nil {
		writeError(w, err, "Failed to reorder questions")
		return
	}

	slog.Info("questions reordered", "count", len(req.QuestionIDs))

	w.WriteHeader(http.StatusNoContent)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/qform/middleware"
	"github.com/danielhkuo/qform/models"
)

// writeError maps the mutation error taxonomy to HTTP status codes.
// Storage failures are logged with their detail but surfaced only as the
// fallback message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("mutation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/qform/cliparse"
	"github.com/danielhkuo/qform/handlers"
	"github.com/danielhkuo/qform/middleware"
	"github.com/danielhkuo/qform/questions"
	"github.com/danielhkuo/qform/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize managers and handlers
	st := store.New(db)
	questionManager := questions.NewManager(st)
	optionManager := questions.NewOptionManager(st)

	questionHandler := handlers.NewQuestionHandler(questionManager)
	optionHandler := handlers.NewOptionHandler(optionManager)
	formHandler := handlers.NewFormHandler(questionManager)

	// Health check
	mux.HandleFunc("GET /health", middleware.WithLogging(formHandler.Health))

	// Form state
	mux.HandleFunc("GET /questions", middleware.WithLogging(formHandler.GetForm))

	// Question mutations
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.Create))
	mux.HandleFunc("PUT /questions/reorder", middleware.WithLogging(questionHandler.Reorder))
	mux.HandleFunc("PUT /questions/{id}", middleware.WithLogging(questionHandler.Edit))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.Delete))

	// Option mutations
	mux.HandleFunc("POST /questions/{id}/options", middleware.WithLogging(optionHandler.Create))
	mux.HandleFunc("PUT /questions/{id}/options", middleware.WithLogging(optionHandler.ReplaceAll))
	mux.HandleFunc("PUT /questions/{id}/options/reorder", middleware.WithLogging(optionHandler.Reorder))
	mux.HandleFunc("PATCH /questions/{id}/options/{optionID}", middleware.WithLogging(optionHandler.Edit))
	mux.HandleFunc("DELETE /questions/{id}/options/{optionID}", middleware.WithLogging(optionHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("qform API v1"))
	})

	return mux
}

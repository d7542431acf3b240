// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/mkaddouri/evalproject/cliparse"
	"github.com/mkaddouri/evalproject/handlers"
	"github.com/mkaddouri/evalproject/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	projectHandler := handlers.NewProjectHandler(db, cfg)
	ratingHandler := handlers.NewRatingHandler(db, cfg)
	commentHandler := handlers.NewCommentHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdminKey(cfg.AdminKeySalt, h))
	}

	// Health check (also the client's auto-sync liveness target)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Project browsing (public)
	mux.HandleFunc("GET /projects", middleware.WithLogging(projectHandler.List))
	mux.HandleFunc("GET /projects/{id}", middleware.WithLogging(projectHandler.Get))
	mux.HandleFunc("GET /projects/{id}/comments", middleware.WithLogging(commentHandler.ListByProject))

	// Anonymous rating submission, keyed by (project, user_session)
	mux.HandleFunc("GET /projects/{id}/rating", middleware.WithLogging(ratingHandler.GetMine))
	mux.HandleFunc("POST /projects/{id}/rating", middleware.WithLogging(ratingHandler.Submit))
	mux.HandleFunc("PUT /projects/{id}/rating", middleware.WithLogging(ratingHandler.Update))

	// Anonymous comments, same key
	mux.HandleFunc("GET /projects/{id}/comment", middleware.WithLogging(commentHandler.GetMine))
	mux.HandleFunc("POST /projects/{id}/comment", middleware.WithLogging(commentHandler.Submit))
	mux.HandleFunc("PUT /projects/{id}/comment", middleware.WithLogging(commentHandler.Update))

	// Project management (admin operations)
	mux.HandleFunc("POST /projects", admin(projectHandler.Create))
	mux.HandleFunc("PUT /projects/{id}", admin(projectHandler.Update))
	mux.HandleFunc("DELETE /projects/{id}", admin(projectHandler.Delete))
	mux.HandleFunc("GET /admin/dashboard", admin(resultsHandler.Dashboard))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("evalproject API v1"))
	})

	return mux
}

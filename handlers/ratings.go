// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mkaddouri/evalproject/auth"
	"github.com/mkaddouri/evalproject/cliparse"
	"github.com/mkaddouri/evalproject/middleware"
	"github.com/mkaddouri/evalproject/models"
)

type RatingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRatingHandler(db *sql.DB, cfg cliparse.Config) *RatingHandler {
	return &RatingHandler{db: db, cfg: cfg}
}

// GetMine handles GET /projects/{id}/rating?user_session=...
// Point lookup of the caller's existing rating, used to pre-fill the form
func (h *RatingHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	userSession := r.URL.Query().Get("user_session")
	if projectID == "" || userSession == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id and user_session are required")
		return
	}

	var rating models.Rating
	err := h.db.QueryRow(`
		SELECT project_id, presentation, technical, innovation, overall, created_at, updated_at
		FROM rating
		WHERE project_id = $1 AND user_session = $2
	`, projectID, userSession).Scan(
		&rating.ProjectID, &rating.Presentation, &rating.Technical,
		&rating.Innovation, &rating.Overall, &rating.CreatedAt, &rating.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No rating for this session")
		return
	}
	if err != nil {
		slog.Error("failed to query rating", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rating)
}

// Submit handles POST /projects/{id}/rating
// First-time rating for a (project, session) pair; 409 if one exists
func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.SubmitRatingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateRating(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	if !h.projectExists(w, projectID) {
		return
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)
	now := time.Now()

	_, err := h.db.Exec(`
		INSERT INTO rating (project_id, user_session, presentation, technical, innovation, overall, ip_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, projectID, req.UserSession, req.Presentation, req.Technical, req.Innovation, req.Overall, ipHash, now, now)

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Rating already exists for this session; use PUT to update")
			return
		}
		slog.Error("failed to insert rating", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit rating")
		return
	}

	slog.Info("rating submitted", "project_id", projectID, "overall", req.Overall)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitRatingResponse{
		Message: "Rating submitted successfully",
	})
}

// Update handles PUT /projects/{id}/rating
// Revises the existing rating keyed by (project, session)
func (h *RatingHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.SubmitRatingRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateRating(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	result, err := h.db.Exec(`
		UPDATE rating
		SET presentation = $1, technical = $2, innovation = $3, overall = $4, updated_at = $5
		WHERE project_id = $6 AND user_session = $7
	`, req.Presentation, req.Technical, req.Innovation, req.Overall, time.Now(), projectID, req.UserSession)

	if err != nil {
		slog.Error("failed to update rating", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update rating")
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No existing rating for this session")
		return
	}

	slog.Info("rating updated", "project_id", projectID, "overall", req.Overall)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitRatingResponse{
		Message: "Rating updated successfully",
	})
}

// validateRating returns an error message, or "" when the request is valid.
// Overall is mandatory; the other criteria may be zero (skipped).
func validateRating(req *models.SubmitRatingRequest) string {
	if req.UserSession == "" {
		return "user_session is required"
	}
	if req.Overall < models.RatingMin || req.Overall > models.RatingMax {
		return "overall must be between 1 and 5"
	}
	for _, v := range []int{req.Presentation, req.Technical, req.Innovation} {
		if v < 0 || v > models.RatingMax {
			return "criteria scores must be between 0 and 5"
		}
	}
	return ""
}

// projectExists writes a 404/500 and returns false when the project is
// missing or the lookup fails.
func (h *RatingHandler) projectExists(w http.ResponseWriter, projectID string) bool {
	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM project WHERE id = $1)
	`, projectID).Scan(&exists)

	if err != nil {
		slog.Error("failed to check project", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return false
	}
	return true
}

// isUniqueViolation matches unique-constraint errors from both SQLite
// and PostgreSQL drivers.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

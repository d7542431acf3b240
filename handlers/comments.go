// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkaddouri/evalproject/cliparse"
	"github.com/mkaddouri/evalproject/middleware"
	"github.com/mkaddouri/evalproject/models"
)

type CommentHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCommentHandler(db *sql.DB, cfg cliparse.Config) *CommentHandler {
	return &CommentHandler{db: db, cfg: cfg}
}

// GetMine handles GET /projects/{id}/comment?user_session=...
// Most recent comment by this session on this project, for form pre-fill
func (h *CommentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	userSession := r.URL.Query().Get("user_session")
	if projectID == "" || userSession == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id and user_session are required")
		return
	}

	var comment models.Comment
	err := h.db.QueryRow(`
		SELECT id, project_id, content, created_at, updated_at
		FROM comment
		WHERE project_id = $1 AND user_session = $2
		ORDER BY updated_at DESC
		LIMIT 1
	`, projectID, userSession).Scan(
		&comment.ID, &comment.ProjectID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "No comment for this session")
		return
	}
	if err != nil {
		slog.Error("failed to query comment", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, comment)
}

// ListByProject handles GET /projects/{id}/comments
// Public list of comments for the project page, most recent first
func (h *CommentHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, project_id, content, created_at, updated_at
		FROM comment
		WHERE project_id = $1
		ORDER BY updated_at DESC
	`, projectID)

	if err != nil {
		slog.Error("failed to query comments", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			slog.Error("failed to scan comment", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		comments = append(comments, c)
	}

	middleware.JSONResponse(w, http.StatusOK, comments)
}

// Submit handles POST /projects/{id}/comment
// First comment for a (project, session) pair; 409 if one exists
func (h *CommentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.SubmitCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.UserSession == "" || req.Content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_session and content are required")
		return
	}

	commentID := uuid.NewString()
	now := time.Now()
	_, err := h.db.Exec(`
		INSERT INTO comment (id, project_id, user_session, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, commentID, projectID, req.UserSession, req.Content, now, now)

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Comment already exists for this session; use PUT to update")
			return
		}
		slog.Error("failed to insert comment", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit comment")
		return
	}

	slog.Info("comment submitted", "project_id", projectID, "comment_id", commentID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitCommentResponse{
		CommentID: commentID,
		Message:   "Comment submitted successfully",
	})
}

// Update handles PUT /projects/{id}/comment
// Replaces the comment content keyed by (project, session)
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.SubmitCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.UserSession == "" || req.Content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_session and content are required")
		return
	}

	result, err := h.db.Exec(`
		UPDATE comment
		SET content = $1, updated_at = $2
		WHERE project_id = $3 AND user_session = $4
	`, req.Content, time.Now(), projectID, req.UserSession)

	if err != nil {
		slog.Error("failed to update comment", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update comment")
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "No existing comment for this session")
		return
	}

	slog.Info("comment updated", "project_id", projectID)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitCommentResponse{
		Message: "Comment updated successfully",
	})
}

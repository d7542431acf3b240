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

type ProjectHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewProjectHandler(db *sql.DB, cfg cliparse.Config) *ProjectHandler {
	return &ProjectHandler{db: db, cfg: cfg}
}

// summaryColumns selects a project row plus its rating/comment aggregates.
const summaryColumns = `
	p.id, p.title, COALESCE(p.description, ''), COALESCE(p.students, ''), p.field, p.created_at,
	COALESCE((SELECT AVG(r.overall) FROM rating r WHERE r.project_id = p.id), 0) AS average_rating,
	(SELECT COUNT(*) FROM rating r WHERE r.project_id = p.id),
	(SELECT COUNT(*) FROM comment c WHERE c.project_id = p.id)`

// Create handles POST /projects (admin)
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if !models.IsValidField(req.Field) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "field must be one of: "+strings.Join(models.ValidFields, ", "))
		return
	}

	projectID := uuid.NewString()
	_, err := h.db.Exec(`
		INSERT INTO project (id, title, description, students, field, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, projectID, req.Title, req.Description, req.Students, req.Field, time.Now())

	if err != nil {
		slog.Error("failed to insert project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	slog.Info("project created", "project_id", projectID, "field", req.Field)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateProjectResponse{
		ProjectID: projectID,
	})
}

// Update handles PUT /projects/{id} (admin)
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.UpdateProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if !models.IsValidField(req.Field) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "field must be one of: "+strings.Join(models.ValidFields, ", "))
		return
	}

	result, err := h.db.Exec(`
		UPDATE project SET title = $1, description = $2, students = $3, field = $4
		WHERE id = $5
	`, req.Title, req.Description, req.Students, req.Field, projectID)

	if err != nil {
		slog.Error("failed to update project", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update project")
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	slog.Info("project updated", "project_id", projectID)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Project updated"})
}

// Delete handles DELETE /projects/{id} (admin)
// Ratings and comments cascade with the project row
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	result, err := h.db.Exec(`DELETE FROM project WHERE id = $1`, projectID)
	if err != nil {
		slog.Error("failed to delete project", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	slog.Info("project deleted", "project_id", projectID)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

// List handles GET /projects
// Returns all projects with aggregated rating stats; supports ?field= filter
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if field != "" && !models.IsValidField(field) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown field")
		return
	}

	var rows *sql.Rows
	var err error
	if field != "" {
		rows, err = h.db.Query(`
			SELECT`+summaryColumns+`
			FROM project p
			WHERE p.field = $1
			ORDER BY p.created_at DESC
		`, field)
	} else {
		rows, err = h.db.Query(`
			SELECT` + summaryColumns + `
			FROM project p
			ORDER BY p.created_at DESC
		`)
	}

	if err != nil {
		slog.Error("failed to query projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	projects := []models.ProjectSummary{}
	for rows.Next() {
		var p models.ProjectSummary
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Students, &p.Field, &p.CreatedAt,
			&p.AverageRating, &p.TotalVotes, &p.CommentsCount,
		); err != nil {
			slog.Error("failed to scan project", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		projects = append(projects, p)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProjectListResponse{Projects: projects})
}

// Get handles GET /projects/{id}
// Returns one project with aggregated rating stats
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	var p models.ProjectSummary
	err := h.db.QueryRow(`
		SELECT`+summaryColumns+`
		FROM project p
		WHERE p.id = $1
	`, projectID).Scan(
		&p.ID, &p.Title, &p.Description, &p.Students, &p.Field, &p.CreatedAt,
		&p.AverageRating, &p.TotalVotes, &p.CommentsCount,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		slog.Error("failed to query project", "error", err, "project_id", projectID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

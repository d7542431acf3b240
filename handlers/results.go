// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mkaddouri/evalproject/cliparse"
	"github.com/mkaddouri/evalproject/middleware"
	"github.com/mkaddouri/evalproject/models"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// Dashboard handles GET /admin/dashboard (admin)
// Aggregated portal stats: totals, per-field averages, top projects
func (h *ResultsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var resp models.DashboardResponse

	err := h.db.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM project),
			(SELECT COUNT(*) FROM rating),
			(SELECT COUNT(*) FROM comment),
			COALESCE((SELECT AVG(overall) FROM rating), 0)
	`).Scan(&resp.TotalProjects, &resp.TotalVotes, &resp.TotalComments, &resp.AverageRating)

	if err != nil {
		slog.Error("failed to query dashboard totals", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	fieldStats, err := h.queryFieldStats()
	if err != nil {
		slog.Error("failed to query field stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	resp.FieldStats = fieldStats

	topProjects, err := h.queryTopProjects(5)
	if err != nil {
		slog.Error("failed to query top projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	resp.TopProjects = topProjects

	// Last vote activity, humanized for the dashboard header
	var lastActivity time.Time
	err = h.db.QueryRow(`
		SELECT updated_at FROM rating ORDER BY updated_at DESC LIMIT 1
	`).Scan(&lastActivity)
	if err == nil {
		resp.LastActivity = humanize.Time(lastActivity)
	} else if err != sql.ErrNoRows {
		slog.Warn("failed to query last activity", "error", err)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

func (h *ResultsHandler) queryFieldStats() ([]models.FieldStats, error) {
	rows, err := h.db.Query(`
		SELECT p.field, COUNT(DISTINCT p.id), COALESCE(AVG(r.overall), 0)
		FROM project p
		LEFT JOIN rating r ON r.project_id = p.id
		GROUP BY p.field
		ORDER BY p.field
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.FieldStats{}
	for rows.Next() {
		var s models.FieldStats
		if err := rows.Scan(&s.Field, &s.ProjectCount, &s.AverageRating); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (h *ResultsHandler) queryTopProjects(limit int) ([]models.ProjectSummary, error) {
	rows, err := h.db.Query(`
		SELECT`+summaryColumns+`
		FROM project p
		WHERE EXISTS (SELECT 1 FROM rating r WHERE r.project_id = p.id)
		ORDER BY average_rating DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.ProjectSummary{}
	for rows.Next() {
		var p models.ProjectSummary
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Students, &p.Field, &p.CreatedAt,
			&p.AverageRating, &p.TotalVotes, &p.CommentsCount,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/mkaddouri/evalproject/models"
	"github.com/mkaddouri/evalproject/testutil"
)

func TestCreateProject(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProjectHandler(conn, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.CreateProjectResponse)
	}{
		{
			name: "valid project",
			requestBody: models.CreateProjectRequest{
				Title:       "Smart Irrigation",
				Description: "Moisture-driven watering",
				Students:    "Alice, Bob",
				Field:       models.FieldInformatique,
			},
			expectedStatus: 201,
			checkResponse: func(t *testing.T, resp *models.CreateProjectResponse) {
				if resp.ProjectID == "" {
					t.Error("Expected non-empty project_id")
				}

				var count int
				if err := conn.QueryRow(`SELECT COUNT(*) FROM project WHERE id = $1`, resp.ProjectID).Scan(&count); err != nil {
					t.Fatalf("Failed to query project: %v", err)
				}
				if count != 1 {
					t.Error("Project was not created in database")
				}
			},
		},
		{
			name: "missing title",
			requestBody: models.CreateProjectRequest{
				Field: models.FieldGestion,
			},
			expectedStatus: 400,
		},
		{
			name: "invalid field",
			requestBody: models.CreateProjectRequest{
				Title: "Bridge Design",
				Field: "astrologie",
			},
			expectedStatus: 400,
		},
		{
			name:           "invalid JSON",
			requestBody:    "not-a-struct{",
			expectedStatus: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/projects", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Create(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil && w.Code == tt.expectedStatus {
				var resp models.CreateProjectResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestUpdateProject(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProjectHandler(conn, cfg)

	projectID := testutil.CreateTestProject(t, conn, "Old Title", models.FieldMecanique)

	req := testutil.MakeRequest("PUT", "/projects/"+projectID, models.UpdateProjectRequest{
		Title:    "New Title",
		Students: "Claire",
		Field:    models.FieldElectronique,
	}, nil)
	req.SetPathValue("id", projectID)
	w := httptest.NewRecorder()

	handler.Update(w, req)
	testutil.AssertStatus(t, w, 200)

	var title, field string
	if err := conn.QueryRow(`SELECT title, field FROM project WHERE id = $1`, projectID).Scan(&title, &field); err != nil {
		t.Fatalf("Failed to query project: %v", err)
	}
	if title != "New Title" || field != models.FieldElectronique {
		t.Errorf("Project not updated: title=%s field=%s", title, field)
	}

	// Unknown project
	req = testutil.MakeRequest("PUT", "/projects/missing", models.UpdateProjectRequest{
		Title: "X",
		Field: models.FieldGestion,
	}, nil)
	req.SetPathValue("id", "missing")
	w = httptest.NewRecorder()

	handler.Update(w, req)
	testutil.AssertStatus(t, w, 404)
}

func TestDeleteProject(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProjectHandler(conn, cfg)

	projectID := testutil.CreateTestProject(t, conn, "Doomed", models.FieldGestion)
	testutil.SubmitTestRating(t, conn, projectID, "session-1", 4)
	testutil.SubmitTestComment(t, conn, projectID, "session-1", "Nice work")

	req := testutil.MakeRequest("DELETE", "/projects/"+projectID, nil, nil)
	req.SetPathValue("id", projectID)
	w := httptest.NewRecorder()

	handler.Delete(w, req)
	testutil.AssertStatus(t, w, 200)

	// Ratings and comments cascade
	var ratings, comments int
	conn.QueryRow(`SELECT COUNT(*) FROM rating WHERE project_id = $1`, projectID).Scan(&ratings)
	conn.QueryRow(`SELECT COUNT(*) FROM comment WHERE project_id = $1`, projectID).Scan(&comments)
	if ratings != 0 || comments != 0 {
		t.Errorf("Expected cascade delete, got %d ratings and %d comments", ratings, comments)
	}

	req = testutil.MakeRequest("DELETE", "/projects/"+projectID, nil, nil)
	req.SetPathValue("id", projectID)
	w = httptest.NewRecorder()

	handler.Delete(w, req)
	testutil.AssertStatus(t, w, 404)
}

func TestListProjects(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProjectHandler(conn, cfg)

	p1 := testutil.CreateTestProject(t, conn, "Info Project", models.FieldInformatique)
	testutil.CreateTestProject(t, conn, "Civil Project", models.FieldGenieCivil)

	testutil.SubmitTestRating(t, conn, p1, "session-1", 5)
	testutil.SubmitTestRating(t, conn, p1, "session-2", 3)
	testutil.SubmitTestComment(t, conn, p1, "session-1", "Impressive")

	t.Run("all projects", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/projects", nil, nil)
		w := httptest.NewRecorder()

		handler.List(w, req)
		testutil.AssertStatus(t, w, 200)

		var resp models.ProjectListResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Projects) != 2 {
			t.Fatalf("Expected 2 projects, got %d", len(resp.Projects))
		}

		for _, p := range resp.Projects {
			if p.ID != p1 {
				continue
			}
			if p.TotalVotes != 2 {
				t.Errorf("Expected 2 votes, got %d", p.TotalVotes)
			}
			if p.AverageRating != 4.0 {
				t.Errorf("Expected average 4.0, got %f", p.AverageRating)
			}
			if p.CommentsCount != 1 {
				t.Errorf("Expected 1 comment, got %d", p.CommentsCount)
			}
		}
	})

	t.Run("field filter", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/projects?field="+models.FieldGenieCivil, nil, nil)
		w := httptest.NewRecorder()

		handler.List(w, req)
		testutil.AssertStatus(t, w, 200)

		var resp models.ProjectListResponse
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Projects) != 1 {
			t.Fatalf("Expected 1 project, got %d", len(resp.Projects))
		}
		if resp.Projects[0].Field != models.FieldGenieCivil {
			t.Errorf("Unexpected field: %s", resp.Projects[0].Field)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/projects?field=astrologie", nil, nil)
		w := httptest.NewRecorder()

		handler.List(w, req)
		testutil.AssertStatus(t, w, 400)
	})
}

func TestGetProject(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewProjectHandler(conn, cfg)

	projectID := testutil.CreateTestProject(t, conn, "Solo Project", models.FieldInformatique)
	testutil.SubmitTestRating(t, conn, projectID, "session-1", 4)

	req := testutil.MakeRequest("GET", "/projects/"+projectID, nil, nil)
	req.SetPathValue("id", projectID)
	w := httptest.NewRecorder()

	handler.Get(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.ProjectSummary
	testutil.AssertJSON(t, w, &resp)
	if resp.Title != "Solo Project" {
		t.Errorf("Unexpected title: %s", resp.Title)
	}
	if resp.TotalVotes != 1 {
		t.Errorf("Expected 1 vote, got %d", resp.TotalVotes)
	}

	req = testutil.MakeRequest("GET", "/projects/missing", nil, nil)
	req.SetPathValue("id", "missing")
	w = httptest.NewRecorder()

	handler.Get(w, req)
	testutil.AssertStatus(t, w, 404)
}

// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/mkaddouri/evalproject/models"
	"github.com/mkaddouri/evalproject/testutil"
)

func TestDashboard(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(conn, cfg)

	p1 := testutil.CreateTestProject(t, conn, "Top Project", models.FieldInformatique)
	p2 := testutil.CreateTestProject(t, conn, "Quiet Project", models.FieldGenieCivil)

	testutil.SubmitTestRating(t, conn, p1, "session-1", 5)
	testutil.SubmitTestRating(t, conn, p1, "session-2", 5)
	testutil.SubmitTestRating(t, conn, p2, "session-1", 2)
	testutil.SubmitTestComment(t, conn, p1, "session-1", "Excellent")

	req := testutil.MakeRequest("GET", "/admin/dashboard", nil, nil)
	w := httptest.NewRecorder()

	handler.Dashboard(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.DashboardResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalProjects != 2 {
		t.Errorf("Expected 2 projects, got %d", resp.TotalProjects)
	}
	if resp.TotalVotes != 3 {
		t.Errorf("Expected 3 votes, got %d", resp.TotalVotes)
	}
	if resp.TotalComments != 1 {
		t.Errorf("Expected 1 comment, got %d", resp.TotalComments)
	}
	if resp.AverageRating != 4.0 {
		t.Errorf("Expected average 4.0, got %f", resp.AverageRating)
	}
	if resp.LastActivity == "" {
		t.Error("Expected humanized last activity")
	}

	// Per-field stats cover only fields with projects
	if len(resp.FieldStats) != 2 {
		t.Fatalf("Expected 2 field entries, got %d", len(resp.FieldStats))
	}
	for _, s := range resp.FieldStats {
		switch s.Field {
		case models.FieldInformatique:
			if s.ProjectCount != 1 || s.AverageRating != 5.0 {
				t.Errorf("Unexpected informatique stats: %+v", s)
			}
		case models.FieldGenieCivil:
			if s.ProjectCount != 1 || s.AverageRating != 2.0 {
				t.Errorf("Unexpected genie-civil stats: %+v", s)
			}
		default:
			t.Errorf("Unexpected field: %s", s.Field)
		}
	}

	// Top projects ranked by average
	if len(resp.TopProjects) != 2 {
		t.Fatalf("Expected 2 top projects, got %d", len(resp.TopProjects))
	}
	if resp.TopProjects[0].ID != p1 {
		t.Errorf("Expected %s first, got %s", p1, resp.TopProjects[0].ID)
	}
}

func TestDashboardEmptyPortal(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(conn, cfg)

	req := testutil.MakeRequest("GET", "/admin/dashboard", nil, nil)
	w := httptest.NewRecorder()

	handler.Dashboard(w, req)
	testutil.AssertStatus(t, w, 200)

	var resp models.DashboardResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalProjects != 0 || resp.TotalVotes != 0 || resp.AverageRating != 0 {
		t.Errorf("Expected zeroed stats, got %+v", resp)
	}
	if resp.LastActivity != "" {
		t.Errorf("Expected no last activity, got %q", resp.LastActivity)
	}
	if len(resp.TopProjects) != 0 {
		t.Errorf("Expected no top projects, got %d", len(resp.TopProjects))
	}
}

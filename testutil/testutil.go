// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mkaddouri/evalproject/cliparse"
	"github.com/mkaddouri/evalproject/db"
	"github.com/mkaddouri/evalproject/models"
)

// SetupTestDB creates an in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// foreign_keys is off by default in SQLite; without it the
	// ON DELETE CASCADE clauses in the schema are ignored.
	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// The in-memory database exists per connection; a second pooled
	// connection would see an empty schema.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AdminKeySalt: "test-admin-salt",
		IPHashSalt:   "test-ip-salt",
	}
}

// CreateTestProject inserts a project and returns its ID
func CreateTestProject(t *testing.T, conn *sql.DB, title, field string) string {
	t.Helper()

	projectID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO project (id, title, description, students, field, created_at)
		VALUES ($1, $2, 'A test project', 'Alice, Bob', $3, $4)
	`, projectID, title, field, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}

	return projectID
}

// SubmitTestRating inserts a rating row for a (project, session) pair
func SubmitTestRating(t *testing.T, conn *sql.DB, projectID, userSession string, overall int) {
	t.Helper()

	now := time.Now()
	_, err := conn.Exec(`
		INSERT INTO rating (project_id, user_session, presentation, technical, innovation, overall, created_at, updated_at)
		VALUES ($1, $2, 3, 4, 4, $3, $4, $5)
	`, projectID, userSession, overall, now, now)
	if err != nil {
		t.Fatalf("Failed to create test rating: %v", err)
	}
}

// SubmitTestComment inserts a comment row for a (project, session) pair
func SubmitTestComment(t *testing.T, conn *sql.DB, projectID, userSession, content string) string {
	t.Helper()

	commentID := uuid.NewString()
	now := time.Now()
	_, err := conn.Exec(`
		INSERT INTO comment (id, project_id, user_session, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, commentID, projectID, userSession, content, now, now)
	if err != nil {
		t.Fatalf("Failed to create test comment: %v", err)
	}

	return commentID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// ErrorMessage extracts the message from an error response body
func ErrorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp.Message
}

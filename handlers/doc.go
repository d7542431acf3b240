// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the EvalProject API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ProjectHandler: project CRUD and public listing with aggregates
  - RatingHandler: anonymous rating lookup, submission, and revision
  - CommentHandler: anonymous comment lookup, submission, and revision
  - ResultsHandler: admin dashboard aggregation

Handlers are created via constructor functions that accept *sql.DB and Config:

	projectHandler := handlers.NewProjectHandler(db, cfg)

# Rating Flow

Ratings are keyed by (project_id, user_session), where user_session is
the client-derived anonymous identity (see the votesec package). The
surface is the exact key-value contract the client core needs:

	GET  /projects/{id}/rating?user_session=... → point lookup (pre-fill)
	POST /projects/{id}/rating                  → insert (409 if exists)
	PUT  /projects/{id}/rating                  → update-by-key

Comments follow the same shape under /projects/{id}/comment.

The overall criterion is required (1-5); presentation, technical, and
innovation may be zero when the voter skips them.

# Admin Operations

Project mutation and the dashboard require the X-Admin-Key header,
validated against the key derived from ADMIN_KEY_SALT:

	POST   /projects      → Create
	PUT    /projects/{id} → Update
	DELETE /projects/{id} → Delete
	GET    /admin/dashboard → Dashboard
*/
package handlers

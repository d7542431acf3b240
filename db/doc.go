// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

Three tables:

  - project: student projects with title, description, students, field
  - rating: one row per (project_id, user_session) pair, four criteria
  - comment: one row per (project_id, user_session) pair

The (project_id, user_session) primary key on rating is what enforces
"one active rating per anonymous identity per project" at the store
level; the client-side vote ledger only gates the UI.

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
		// handle
	}

CreateSchema is idempotent (IF NOT EXISTS) and works on both SQLite and
PostgreSQL.
*/
package db

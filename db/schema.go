// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Projects
CREATE TABLE IF NOT EXISTS project (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    students TEXT,
    field TEXT NOT NULL CHECK (field IN ('informatique', 'genie-civil', 'electronique', 'mecanique', 'gestion')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_project_field ON project(field);

-- Ratings: one active rating per (project, anonymous session)
CREATE TABLE IF NOT EXISTS rating (
    project_id TEXT NOT NULL REFERENCES project(id) ON DELETE CASCADE,
    user_session TEXT NOT NULL,
    presentation INTEGER NOT NULL CHECK (presentation >= 0 AND presentation <= 5),
    technical INTEGER NOT NULL CHECK (technical >= 0 AND technical <= 5),
    innovation INTEGER NOT NULL CHECK (innovation >= 0 AND innovation <= 5),
    overall INTEGER NOT NULL CHECK (overall >= 1 AND overall <= 5),
    ip_hash TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (project_id, user_session)
);

CREATE INDEX IF NOT EXISTS idx_rating_project_id ON rating(project_id);

-- Comments: one comment per (project, anonymous session)
CREATE TABLE IF NOT EXISTS comment (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL REFERENCES project(id) ON DELETE CASCADE,
    user_session TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (project_id, user_session)
);

CREATE INDEX IF NOT EXISTS idx_comment_project_id ON comment(project_id);
`

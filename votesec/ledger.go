// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votesec

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// VoteRecord marks an active rating for a (project, identity) pair.
// Timestamp is epoch milliseconds of the most recent submission.
type VoteRecord struct {
	ProjectID      string `json:"projectId"`
	UserIdentifier string `json:"userIdentifier"`
	Timestamp      int64  `json:"timestamp"`
}

// ledger is the locally persisted list of votes cast from this
// installation, stored as one JSON blob. The whole blob is read,
// mutated in memory, and written back; concurrent writers can lose an
// update (last write wins), which is accepted for a single-user store.
type ledger struct {
	storage Storage
	key     string
	now     func() time.Time
}

// load returns the stored records. Absent, unreadable, or corrupt blobs
// all mean "no votes" - never fatal.
func (l *ledger) load() []VoteRecord {
	blob, ok, err := l.storage.Get(l.key)
	if err != nil {
		slog.Warn("vote ledger read failed, treating as empty", "error", err)
		return nil
	}
	if !ok || blob == "" {
		return nil
	}

	var records []VoteRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		slog.Warn("vote ledger corrupt, treating as empty", "error", err)
		return nil
	}
	return records
}

func (l *ledger) persist(records []VoteRecord) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize vote ledger: %w", err)
	}
	if err := l.storage.Set(l.key, string(blob)); err != nil {
		return fmt.Errorf("failed to persist vote ledger: %w", err)
	}
	return nil
}

// contains reports whether a record matches both fields exactly.
func (l *ledger) contains(projectID, identity string) bool {
	for _, r := range l.load() {
		if r.ProjectID == projectID && r.UserIdentifier == identity {
			return true
		}
	}
	return false
}

// upsert replaces any record for (projectID, identity) with a fresh one,
// so the ledger never holds two entries for the same pair.
func (l *ledger) upsert(projectID, identity string) error {
	records := l.load()

	kept := records[:0]
	for _, r := range records {
		if r.ProjectID == projectID && r.UserIdentifier == identity {
			continue
		}
		kept = append(kept, r)
	}

	kept = append(kept, VoteRecord{
		ProjectID:      projectID,
		UserIdentifier: identity,
		Timestamp:      l.now().UnixMilli(),
	})

	return l.persist(kept)
}

// prune drops every record whose age has reached maxAge. A record
// exactly at the boundary (age == maxAge) is removed.
func (l *ledger) prune(maxAge time.Duration) error {
	cutoff := l.now().UnixMilli() - maxAge.Milliseconds()

	records := l.load()
	kept := records[:0]
	for _, r := range records {
		if r.Timestamp > cutoff {
			kept = append(kept, r)
		}
	}

	return l.persist(kept)
}

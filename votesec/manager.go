// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votesec

import (
	"log/slog"
	"time"
)

// Storage keys. These match the original web deployment and must not
// change, or existing installations lose their identity and ledger.
const (
	ledgerKey      = "evalproject_votes"
	sessionKey     = "evalproject_session"
	fingerprintKey = "evalproject_fingerprint"
)

// RetentionWindow is how long a ledger entry lives before
// CleanupOldVotes discards it.
const RetentionWindow = 30 * 24 * time.Hour

// Manager is the vote-security facade: it composes identity generation,
// the session token store, and the vote ledger behind the three
// questions the UI needs answered. All operations are synchronous local
// storage access; none performs network I/O.
//
// A Manager is meant to live for the whole process: the identity is
// materialized from storage once and cached. Not safe for concurrent use.
type Manager struct {
	storage Storage
	env     Environment
	now     func() time.Time
	ledger  ledger

	identifier string // cached after first use
}

// NewManager builds a Manager on the given storage and environment.
func NewManager(storage Storage, env Environment) *Manager {
	return &Manager{
		storage: storage,
		env:     env,
		now:     time.Now,
		ledger:  ledger{storage: storage, key: ledgerKey, now: time.Now},
	}
}

// UserIdentifier returns "{sessionToken}_{fingerprint}", creating and
// persisting the underlying values on first use. Stable for the
// lifetime of the storage; a cleared storage yields a fresh identity.
// Never fails: if persistence is unavailable the identity is still
// returned (and will differ after a restart), with a warning logged.
func (m *Manager) UserIdentifier() string {
	if m.identifier != "" {
		return m.identifier
	}

	session := m.getOrCreate(sessionKey, func() string { return newSessionToken(m.now()) })
	fingerprint := m.getOrCreate(fingerprintKey, func() string { return Fingerprint(m.env) })

	m.identifier = session + "_" + fingerprint
	return m.identifier
}

// HasVoted reports whether this identity has an active vote on the
// project. Purely local; the remote store is not consulted.
func (m *Manager) HasVoted(projectID string) bool {
	return m.ledger.contains(projectID, m.UserIdentifier())
}

// RecordVote marks the project as voted by this identity, replacing any
// previous record for the pair. A returned error means the vote state
// may not survive a restart; callers should warn, not abort.
func (m *Manager) RecordVote(projectID string) error {
	return m.ledger.upsert(projectID, m.UserIdentifier())
}

// CleanupOldVotes prunes ledger entries older than RetentionWindow.
// Callers decide when to run retention; nothing schedules this.
func (m *Manager) CleanupOldVotes() error {
	return m.ledger.prune(RetentionWindow)
}

// getOrCreate returns the stored value for key, or generates, persists,
// and returns a new one. Read failures regenerate; write failures keep
// the in-memory value and log.
func (m *Manager) getOrCreate(key string, generate func() string) string {
	value, ok, err := m.storage.Get(key)
	if err != nil {
		slog.Warn("identity read failed, regenerating", "key", key, "error", err)
	}
	if ok && value != "" {
		return value
	}

	value = generate()
	if err := m.storage.Set(key, value); err != nil {
		slog.Warn("identity not persisted", "key", key, "error", err)
	}
	return value
}

// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package localstore

import (
	"testing"

	"github.com/mkaddouri/evalproject/votesec"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(Config{InMemory: true})
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreGetSetRemove(t *testing.T) {
	store := openTestStore(t)

	// Absent key
	_, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Expected ok=false for absent key")
	}

	// Round trip
	if err := store.Set("evalproject_session", "123_abc"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, ok, err := store.Get("evalproject_session")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "123_abc" {
		t.Errorf("Expected 123_abc, got %q (ok=%v)", value, ok)
	}

	// Overwrite
	if err := store.Set("evalproject_session", "456_def"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, _, _ = store.Get("evalproject_session")
	if value != "456_def" {
		t.Errorf("Expected overwritten value, got %q", value)
	}

	// Remove
	if err := store.Remove("evalproject_session"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok, _ := store.Get("evalproject_session"); ok {
		t.Error("Expected key to be gone after Remove")
	}

	// Removing an absent key is not an error
	if err := store.Remove("missing"); err != nil {
		t.Errorf("Remove of absent key failed: %v", err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(Config{Path: dir})
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := store.Set("evalproject_fingerprint", "fp"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	store, err = Open(Config{Path: dir})
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer store.Close()

	value, ok, err := store.Get("evalproject_fingerprint")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || value != "fp" {
		t.Errorf("Value did not survive reopen: %q (ok=%v)", value, ok)
	}
}

func TestStoreBacksVoteManager(t *testing.T) {
	store := openTestStore(t)

	var _ votesec.Storage = store

	mgr := votesec.NewManager(store, votesec.HostEnvironment{})

	id := mgr.UserIdentifier()
	if id == "" {
		t.Fatal("Expected a non-empty identifier")
	}
	if err := mgr.RecordVote("p1"); err != nil {
		t.Fatalf("RecordVote failed: %v", err)
	}
	if !mgr.HasVoted("p1") {
		t.Error("Expected HasVoted after RecordVote")
	}

	// A second manager over the same store sees the same state.
	mgr2 := votesec.NewManager(store, votesec.HostEnvironment{})
	if mgr2.UserIdentifier() != id {
		t.Error("Identity should be stable across managers")
	}
	if !mgr2.HasVoted("p1") {
		t.Error("Vote should be visible to a fresh manager")
	}
}

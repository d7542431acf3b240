// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votesec

// Storage is the durable string key-value store backing identity tokens
// and the vote ledger. One store per installation; nothing else writes
// to its keys. An absent key is (value="", ok=false, err=nil) - errors
// are reserved for storage being unavailable.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// MemStorage is an in-memory Storage for tests and embedders that do not
// need persistence. Not safe for concurrent use.
type MemStorage struct {
	m map[string]string
}

func NewMemStorage() *MemStorage {
	return &MemStorage{m: make(map[string]string)}
}

func (s *MemStorage) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemStorage) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *MemStorage) Remove(key string) error {
	delete(s.m, key)
	return nil
}

// Clear drops every key, simulating a user wiping browser storage.
func (s *MemStorage) Clear() {
	s.m = make(map[string]string)
}

// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package localstore

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Config holds options for opening a Store.
type Config struct {
	// Path is the directory for the database files. Ignored when
	// InMemory is true.
	Path string

	// InMemory disables disk persistence. Useful for tests.
	InMemory bool

	// Logger receives BadgerDB's internal log output. Nil disables it.
	Logger *slog.Logger
}

// Store is a durable key-value store for client-side vote-security
// state, backed by an embedded BadgerDB. It satisfies votesec.Storage.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store at cfg.Path.
func Open(cfg Config) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithLogger(nil)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the value for key, or ok=false if the key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) Set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// badgerLogger adapts slog to BadgerDB's logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"sync"
)

// Store is one browser-profile's worth of shared state: a single key-value
// table that every open context reads and writes. There is no in-memory
// authority; contexts converge only through the table plus change events.
type Store struct {
	db *sql.DB

	mu   sync.RWMutex
	subs map[string]*Context
}

// Open connects to the backing database, verifies the connection and
// ensures the schema exists. driver is "sqlite" or "postgres".
func Open(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile store ping failed: %w", err)
	}
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return New(db), nil
}

// New wraps an already-open database. The caller is responsible for the
// schema; Open does both.
func New(db *sql.DB) *Store {
	return &Store{
		db:   db,
		subs: make(map[string]*Context),
	}
}

// Close closes the backing database. Open contexts become unusable.
func (s *Store) Close() error {
	return s.db.Close()
}

// notify delivers an event to every subscribed context except the writer.
// The writer never hears about its own change; it must re-read if it wants
// to observe what it wrote, same as every other context.
func (s *Store) notify(writerID string, ev Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, c := range s.subs {
		if id == writerID {
			continue
		}
		select {
		case c.events <- ev:
		default:
			// Slow consumer; drop. Consumers re-derive full state from
			// storage on every event, so a drop delays a re-render at
			// worst until the next change.
		}
	}
}

func (s *Store) subscribe(c *Context) {
	s.mu.Lock()
	s.subs[c.id] = c
	s.mu.Unlock()
}

func (s *Store) unsubscribe(id string) {
	s.mu.Lock()
	if c, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(c.events)
	}
	s.mu.Unlock()
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/url"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quepasa/session"
	"github.com/danielhkuo/quepasa/store"
)

// SetupTestStore creates a fresh in-memory profile store with the full
// schema. Each test gets its own database; MaxOpenConns(1) keeps the
// whole pool on the single in-memory connection.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := store.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	st := store.New(db)
	t.Cleanup(func() { st.Close() })
	return st
}

// Locator builds a test locator, optionally pre-seeded with a room code.
func Locator(t *testing.T, code string) *url.URL {
	t.Helper()

	raw := "https://quepasa.test/"
	if code != "" {
		raw += "?room=" + code
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("Failed to parse test locator: %v", err)
	}
	return u
}

// OpenSession opens a session on the store for the given room code,
// failing the test on any error and closing the session on cleanup.
func OpenSession(t *testing.T, st *store.Store, code string, opts session.Options) *session.Session {
	t.Helper()

	s, err := session.Open(st, Locator(t, code), opts)
	if err != nil {
		t.Fatalf("Failed to open session: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

// FakeGeo is a Geolocator returning fixed coordinates or a fixed error.
type FakeGeo struct {
	Coords session.Coords
	Err    error
}

func (g FakeGeo) Current(context.Context) (session.Coords, error) {
	if g.Err != nil {
		return session.Coords{}, g.Err
	}
	return g.Coords, nil
}

// CueRecorder is a SoundPlayer that remembers every cue played.
type CueRecorder struct {
	mu   sync.Mutex
	cues []session.Cue
}

func (r *CueRecorder) Play(c session.Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, c)
	r.mu.Unlock()
}

// Cues returns a copy of the recorded cues in play order.
func (r *CueRecorder) Cues() []session.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]session.Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

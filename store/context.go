// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event describes one key change made by some other context. It carries
// the key and the new value, but consumers must re-derive their view from
// a fresh read of storage rather than trust the delta: events can be
// dropped under pressure and are not ordered across keys.
type Event struct {
	Key     string
	Value   string
	Deleted bool
}

// eventBuffer sizes each context's event channel. Sixteen pending changes
// is far beyond what a human-driven room produces between reads.
const eventBuffer = 16

// Context is one independent view onto a Store - the equivalent of a
// browser tab. Every context reads and writes the same table; a write
// notifies all other contexts and never the writer itself.
type Context struct {
	id     string
	store  *Store
	events chan Event
}

// NewContext opens a new context on the store and subscribes it to change
// events. Close it when done or its event channel leaks.
func (s *Store) NewContext() *Context {
	c := &Context{
		id:     uuid.NewString(),
		store:  s,
		events: make(chan Event, eventBuffer),
	}
	s.subscribe(c)
	return c
}

// ID returns the context's unique identifier.
func (c *Context) ID() string {
	return c.id
}

// Events returns the channel of changes made by other contexts. The
// channel is closed by Close.
func (c *Context) Events() <-chan Event {
	return c.events
}

// Close unsubscribes the context and closes its event channel. The store
// itself stays open for other contexts.
func (c *Context) Close() {
	c.store.unsubscribe(c.id)
}

// Get reads a key. ok is false when the key is absent; absence is not an
// error, it is the normal state of any record never written.
func (c *Context) Get(key string) (value string, ok bool, err error) {
	err = c.store.db.QueryRow(`SELECT v FROM kv WHERE k = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

// Put writes a key and notifies every other context. There is no
// compare-and-swap: concurrent read-modify-write sequences from two
// contexts race, and the last write wins. Callers tolerate lost updates.
func (c *Context) Put(key, value string) error {
	_, err := c.store.db.Exec(`
		INSERT INTO kv (k, v, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (k) DO UPDATE SET v = excluded.v, updated_at = excluded.updated_at
	`, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	c.store.notify(c.id, Event{Key: key, Value: value})
	return nil
}

// Delete removes a key. Idempotent; deleting an absent key notifies
// nobody.
func (c *Context) Delete(key string) error {
	res, err := c.store.db.Exec(`DELETE FROM kv WHERE k = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		c.store.notify(c.id, Event{Key: key, Deleted: true})
	}
	return nil
}

// DeletePrefix removes every key with the given prefix, notifying other
// contexts once per removed key. Used to clear a whole room's records.
func (c *Context) DeletePrefix(prefix string) error {
	rows, err := c.store.db.Query(`SELECT k FROM kv WHERE k LIKE $1 ESCAPE '\'`, likePattern(prefix))
	if err != nil {
		return fmt.Errorf("failed to list keys under %q: %w", prefix, err)
	}
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to list keys under %q: %w", prefix, err)
	}

	for _, k := range keys {
		if err := c.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// likePattern escapes LIKE metacharacters in prefix. Room keys contain
// neither, but identity keys embed user-influenced codes.
func likePattern(prefix string) string {
	out := make([]byte, 0, len(prefix)+2)
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, prefix[i])
	}
	return string(out) + "%"
}

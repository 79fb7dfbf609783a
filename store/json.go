// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// ReadJSON reads key and decodes it into T. A missing record and a
// malformed one both yield T's zero value: stale or corrupt profile data
// degrades to "nothing there", never to a fault the UI has to render.
// Only an actual storage failure is an error.
//
// This is the one place the corrupt-defaults-to-empty policy lives; every
// persisted record (roster, block-list, owner, messages, identity) decodes
// through it.
func ReadJSON[T any](c *Context, key string) (T, error) {
	var v T
	raw, ok, err := c.Get(key)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, nil
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Warn("discarding corrupt record", "key", key, "error", err)
		var zero T
		return zero, nil
	}
	return v, nil
}

// WriteJSON encodes v and writes it under key, notifying other contexts.
func WriteJSON[T any](c *Context, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return c.Put(key, string(raw))
}

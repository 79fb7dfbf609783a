// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the key-value table backing a profile store.
// Safe to call multiple times - uses IF NOT EXISTS. The statement is kept
// portable across sqlite and postgres (no engine-specific defaults;
// updated_at is always set from Go).
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Profile-local key-value records. One row per persisted record:
-- identity, roster, owner, block-list, message log, each namespaced by
-- room code in the key.
CREATE TABLE IF NOT EXISTS kv (
    k TEXT PRIMARY KEY,
    v TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

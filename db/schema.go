// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The same DDL runs on postgres and sqlite.
const schema = `
-- Ballots, one per username
CREATE TABLE IF NOT EXISTS ballot (
    username TEXT PRIMARY KEY,
    option_index INTEGER NOT NULL CHECK (option_index >= 0),
    submitted_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ballot_option_index ON ballot(option_index);

-- Poll flag, a single row
CREATE TABLE IF NOT EXISTS poll_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    active BOOLEAN NOT NULL
);
`

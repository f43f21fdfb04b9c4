// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the relational ledger and backend selection.

# Backends

OpenLedger picks a poll.Ledger from the configured DATABASE_TYPE:

	ledger, closeLedger, err := db.OpenLedger(cfg)

Supported types:

  - memory: memstore, lost on restart
  - bolt: boltstore, a single file under DATA_DIR
  - sqlite: this package over modernc.org/sqlite
  - postgres: this package over github.com/lib/pq

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - ballot: One row per username (primary key), with option_index and
    submitted_at in Unix milliseconds
  - poll_state: A single row (id = 1) holding the active flag

# Placeholders

Queries are written with ? placeholders. For postgres they are rebound to
$1, $2, ... before execution.

A duplicate username surfaces as poll.ErrAlreadyVoted whether it is caught
by the in-transaction check or by the primary key (pq code 23505, or
"UNIQUE constraint failed" on sqlite).
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-vote/boltstore"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/memstore"
	"github.com/danielhkuo/quickly-vote/poll"
)

// OpenLedger builds the backend selected by cfg.DatabaseType. The returned
// close function releases the backend and is never nil.
func OpenLedger(cfg cliparse.Config) (poll.Ledger, func() error, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseMemory, "":
		slog.Warn("using in-memory storage; ballots are lost on restart")
		return memstore.New(), func() error { return nil }, nil

	case cliparse.DatabaseBolt:
		store, err := boltstore.Open(boltstore.Options{DataDir: cfg.DataDir})
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		return store, store.Close, nil

	case cliparse.DatabaseSQLite, cliparse.DatabasePostgres:
		conn, err := OpenSQL(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store, err := NewStore(conn, cfg.DatabaseType)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		return store, conn.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}
}

// OpenSQL connects, verifies the connection and creates the schema.
func OpenSQL(dialect, url string) (*sql.DB, error) {
	conn, err := sql.Open(dialect, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// sqlite allows a single writer; one connection avoids SQLITE_BUSY
	if dialect == DialectSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	slog.Info("Database schema ready", "dialect", dialect)

	return conn, nil
}

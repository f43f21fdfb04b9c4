// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/danielhkuo/quickly-vote/poll"
)

// Dialect names match the registered database/sql driver names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var _ poll.Ledger = (*Store)(nil)

// Store is the relational Ledger. Queries are written with ? placeholders
// and rebound for postgres.
type Store struct {
	db      *sql.DB
	dialect string
}

func NewStore(db *sql.DB, dialect string) (*Store, error) {
	switch dialect {
	case DialectPostgres, DialectSQLite:
	default:
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}
	return &Store{db: db, dialect: dialect}, nil
}

func (s *Store) HasVoted(ctx context.Context, identity string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT EXISTS(SELECT 1 FROM ballot WHERE username = ?)
	`), identity).Scan(&exists)
	return exists, err
}

func (s *Store) CountTotal(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ballot`).Scan(&n)
	return n, err
}

func (s *Store) CountForOption(ctx context.Context, idx int) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT COUNT(*) FROM ballot WHERE option_index = ?
	`), idx).Scan(&n)
	return n, err
}

// InsertBallot checks absence and inserts in one transaction. The primary
// key on username backs the check if another writer shares the database.
func (s *Store) InsertBallot(ctx context.Context, b poll.Ballot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, s.rebind(`
		SELECT EXISTS(SELECT 1 FROM ballot WHERE username = ?)
	`), b.Identity).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return poll.ErrAlreadyVoted
	}

	_, err = tx.ExecContext(ctx, s.rebind(`
		INSERT INTO ballot (username, option_index, submitted_at)
		VALUES (?, ?, ?)
	`), b.Identity, b.Option, b.SubmittedAt.UnixMilli())
	if err != nil {
		if isUniqueViolation(err) {
			return poll.ErrAlreadyVoted
		}
		return err
	}

	return tx.Commit()
}

func (s *Store) Ballot(ctx context.Context, identity string) (poll.Ballot, bool, error) {
	var (
		b  poll.Ballot
		ms int64
	)
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT username, option_index, submitted_at FROM ballot WHERE username = ?
	`), identity).Scan(&b.Identity, &b.Option, &ms)
	if err == sql.ErrNoRows {
		return poll.Ballot{}, false, nil
	}
	if err != nil {
		return poll.Ballot{}, false, err
	}
	b.SubmittedAt = time.UnixMilli(ms).UTC()
	return b, true, nil
}

func (s *Store) Ballots(ctx context.Context) ([]poll.Ballot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT username, option_index, submitted_at
		FROM ballot
		ORDER BY username
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ballots := []poll.Ballot{}
	for rows.Next() {
		var (
			b  poll.Ballot
			ms int64
		)
		if err := rows.Scan(&b.Identity, &b.Option, &ms); err != nil {
			return nil, err
		}
		b.SubmittedAt = time.UnixMilli(ms).UTC()
		ballots = append(ballots, b)
	}
	return ballots, rows.Err()
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM ballot`)
	return err
}

func (s *Store) PollActive(ctx context.Context) (bool, bool, error) {
	var active bool
	err := s.db.QueryRowContext(ctx, `SELECT active FROM poll_state WHERE id = 1`).Scan(&active)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return active, true, nil
}

func (s *Store) SetPollActive(ctx context.Context, active bool) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO poll_state (id, active) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET active = excluded.active
	`), active)
	return err
}

// rebind rewrites ? placeholders to $1, $2, ... for postgres.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

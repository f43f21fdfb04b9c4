// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"time"
)

// Ballot is a committed record of one identity's choice. It is never
// mutated; only a reset removes it.
type Ballot struct {
	Identity    string    `json:"identity"`
	Option      int       `json:"option"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Ledger is the persistence capability the engine is written against.
// Backends must return ErrAlreadyVoted from InsertBallot when the identity
// already has a ballot, and Ballots must read one consistent snapshot.
type Ledger interface {
	HasVoted(ctx context.Context, identity string) (bool, error)
	CountTotal(ctx context.Context) (int, error)
	CountForOption(ctx context.Context, idx int) (int, error)
	InsertBallot(ctx context.Context, b Ballot) error
	Ballot(ctx context.Context, identity string) (Ballot, bool, error)
	Ballots(ctx context.Context) ([]Ballot, error)
	Clear(ctx context.Context) error

	// PollActive returns the stored flag; ok is false if none was stored yet.
	PollActive(ctx context.Context) (active bool, ok bool, err error)
	SetPollActive(ctx context.Context, active bool) error
}

// Sink receives fresh totals after every committed vote.
// Publish must not block.
type Sink interface {
	Publish(totals []int)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package memstore is the in-process Ledger. State is lost on restart.
package memstore

import (
	"context"
	"sync"

	"github.com/danielhkuo/quickly-vote/poll"
)

var _ poll.Ledger = (*Store)(nil)

type Store struct {
	mu       sync.RWMutex
	ballots  map[string]poll.Ballot
	counts   map[int]int
	active   bool
	stateSet bool
}

func New() *Store {
	return &Store{
		ballots: make(map[string]poll.Ballot),
		counts:  make(map[int]int),
	}
}

func (s *Store) HasVoted(_ context.Context, identity string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ballots[identity]
	return ok, nil
}

func (s *Store) CountTotal(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ballots), nil
}

func (s *Store) CountForOption(_ context.Context, idx int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[idx], nil
}

// InsertBallot checks absence and inserts under one write lock.
func (s *Store) InsertBallot(_ context.Context, b poll.Ballot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ballots[b.Identity]; ok {
		return poll.ErrAlreadyVoted
	}
	s.ballots[b.Identity] = b
	s.counts[b.Option]++
	return nil
}

func (s *Store) Ballot(_ context.Context, identity string) (poll.Ballot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.ballots[identity]
	return b, ok, nil
}

func (s *Store) Ballots(_ context.Context) ([]poll.Ballot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]poll.Ballot, 0, len(s.ballots))
	for _, b := range s.ballots {
		out = append(out, b)
	}
	return out, nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ballots = make(map[string]poll.Ballot)
	s.counts = make(map[int]int)
	return nil
}

func (s *Store) PollActive(_ context.Context) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.stateSet, nil
}

func (s *Store) SetPollActive(_ context.Context, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
	s.stateSet = true
	return nil
}

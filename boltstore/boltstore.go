// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package boltstore is a file-backed Ledger on top of bbolt. Ballots and the
// poll flag survive restarts.
package boltstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/danielhkuo/quickly-vote/poll"
)

const (
	// dbFileName is the name of the database file inside DataDir
	dbFileName string = "quickly-vote.db"
	// bucketBallotsName maps identity to a JSON encoded ballot
	bucketBallotsName string = "ballots"
	// bucketStateName holds the poll flag
	bucketStateName string = "poll_state"
)

var (
	keyActive = []byte("active")

	ErrDataDirRequired = errors.New("data directory is required")
)

var _ poll.Ledger = (*Store)(nil)

type Options struct {
	// DataDir is the directory holding the database file. It's required
	DataDir string

	// Options hold all bolt options. Defaults to bolt.DefaultOptions with a
	// one second file lock timeout
	Options *bolt.Options
}

type Store struct {
	db *bolt.DB
}

// Open creates DataDir if needed, opens the database and initializes buckets.
func Open(options Options) (*Store, error) {
	if options.DataDir == "" {
		return nil, ErrDataDirRequired
	}
	if err := os.MkdirAll(options.DataDir, 0750); err != nil {
		return nil, fmt.Errorf("fail to create directory %s: %w", options.DataDir, err)
	}

	opts := options.Options
	if opts == nil {
		o := *bolt.DefaultOptions
		o.Timeout = time.Second
		opts = &o
	}

	db, err := bolt.Open(filepath.Join(options.DataDir, dbFileName), 0600, opts)
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if !opts.ReadOnly {
		if err := store.initializeBuckets(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return store, nil
}

func (s *Store) initializeBuckets() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(bucketBallotsName)); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists([]byte(bucketStateName))
		return err
	})
}

// Close will close bolt database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) HasVoted(_ context.Context, identity string) (bool, error) {
	var ok bool
	err := s.db.View(func(tx *bolt.Tx) error {
		ok = tx.Bucket([]byte(bucketBallotsName)).Get([]byte(identity)) != nil
		return nil
	})
	return ok, err
}

func (s *Store) CountTotal(_ context.Context) (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketBallotsName)).Stats().KeyN
		return nil
	})
	return n, err
}

func (s *Store) CountForOption(_ context.Context, idx int) (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		return forEachBallot(tx, func(b poll.Ballot) {
			if b.Option == idx {
				n++
			}
		})
	})
	return n, err
}

// InsertBallot checks absence and writes inside one read-write transaction.
// The write is durable once the transaction commits.
func (s *Store) InsertBallot(_ context.Context, b poll.Ballot) error {
	value, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketBallotsName))
		if bucket.Get([]byte(b.Identity)) != nil {
			return poll.ErrAlreadyVoted
		}
		return bucket.Put([]byte(b.Identity), value)
	})
}

func (s *Store) Ballot(_ context.Context, identity string) (poll.Ballot, bool, error) {
	var (
		b     poll.Ballot
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket([]byte(bucketBallotsName)).Get([]byte(identity))
		if value == nil {
			return nil
		}
		found = true
		return json.Unmarshal(value, &b)
	})
	return b, found, err
}

func (s *Store) Ballots(_ context.Context) ([]poll.Ballot, error) {
	var out []poll.Ballot
	err := s.db.View(func(tx *bolt.Tx) error {
		return forEachBallot(tx, func(b poll.Ballot) {
			out = append(out, b)
		})
	})
	return out, err
}

// Clear drops and recreates the ballot bucket.
func (s *Store) Clear(_ context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketBallotsName)); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket([]byte(bucketBallotsName))
		return err
	})
}

func (s *Store) PollActive(_ context.Context) (bool, bool, error) {
	var active, ok bool
	err := s.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket([]byte(bucketStateName)).Get(keyActive)
		if value == nil {
			return nil
		}
		ok = true
		active = len(value) == 1 && value[0] == 1
		return nil
	})
	return active, ok, err
}

func (s *Store) SetPollActive(_ context.Context, active bool) error {
	value := []byte{0}
	if active {
		value[0] = 1
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketStateName)).Put(keyActive, value)
	})
}

func forEachBallot(tx *bolt.Tx, fn func(poll.Ballot)) error {
	return tx.Bucket([]byte(bucketBallotsName)).ForEach(func(k, v []byte) error {
		var b poll.Ballot
		if err := json.Unmarshal(v, &b); err != nil {
			return fmt.Errorf("decode ballot %q: %w", k, err)
		}
		fn(b)
		return nil
	})
}

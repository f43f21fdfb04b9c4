// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-vote/auth"
)

// Config holds the deployment parameters of an Engine.
type Config struct {
	Registry *Registry

	// MaxVotes caps the total number of ballots.
	MaxVotes int
	// MaxPerOption caps ballots per option. Zero derives MaxVotes / Registry.Len()
	// with floor division.
	MaxPerOption int

	Mode Mode
	// InitialActive is stored as the poll flag on first access when the
	// ledger holds none.
	InitialActive bool

	AdminKey string

	// Sink is optional.
	Sink Sink
	// Now defaults to time.Now.
	Now func() time.Time
}

// Engine owns admission, the poll lifecycle and result projection over a
// single Ledger. All mutations of the ledger go through mu.
type Engine struct {
	mu sync.Mutex

	ledger       Ledger
	registry     *Registry
	maxVotes     int
	maxPerOption int
	mode         Mode
	initial      bool
	adminKey     string
	sink         Sink
	now          func() time.Time
}

// NewEngine validates cfg and returns an engine over ledger.
func NewEngine(ledger Ledger, cfg Config) (*Engine, error) {
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if cfg.Registry == nil {
		return nil, errors.New("option registry is required")
	}
	if cfg.MaxVotes <= 0 {
		return nil, fmt.Errorf("max votes must be positive, got %d", cfg.MaxVotes)
	}
	if cfg.MaxPerOption < 0 {
		return nil, fmt.Errorf("max per option must not be negative, got %d", cfg.MaxPerOption)
	}
	if cfg.AdminKey == "" {
		return nil, errors.New("admin key is required")
	}

	mode := cfg.Mode
	if mode == "" {
		mode = ModeGated
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}

	perOption := cfg.MaxPerOption
	if perOption == 0 {
		perOption = cfg.MaxVotes / cfg.Registry.Len()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		ledger:       ledger,
		registry:     cfg.Registry,
		maxVotes:     cfg.MaxVotes,
		maxPerOption: perOption,
		mode:         mode,
		initial:      cfg.InitialActive,
		adminKey:     cfg.AdminKey,
		sink:         cfg.Sink,
		now:          now,
	}, nil
}

func (e *Engine) Registry() *Registry { return e.registry }

func (e *Engine) Mode() Mode { return e.mode }

func (e *Engine) MaxVotes() int { return e.maxVotes }

func (e *Engine) MaxPerOption() int { return e.maxPerOption }

// SubmitVote admits or rejects one ballot. A nil error means the ballot is
// committed. Rejections are returned as the sentinel errors in errors.go;
// anything else is a storage failure and nothing was committed.
func (e *Engine) SubmitVote(ctx context.Context, identity string, idx int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode.Gated() {
		active, err := e.activeLocked(ctx)
		if err != nil {
			return err
		}
		if !active {
			return ErrPollNotActive
		}
	}

	if !e.registry.Valid(idx) {
		return ErrInvalidOption
	}
	if identity == "" {
		return ErrInvalidRequest
	}

	voted, err := e.ledger.HasVoted(ctx, identity)
	if err != nil {
		return fmt.Errorf("check ballot: %w", err)
	}
	if voted {
		return ErrAlreadyVoted
	}

	total, err := e.ledger.CountTotal(ctx)
	if err != nil {
		return fmt.Errorf("count ballots: %w", err)
	}
	if total >= e.maxVotes {
		return ErrTotalLimitReached
	}

	count, err := e.ledger.CountForOption(ctx, idx)
	if err != nil {
		return fmt.Errorf("count option %d: %w", idx, err)
	}
	if count >= e.maxPerOption {
		return ErrOptionLimitReached
	}

	err = e.ledger.InsertBallot(ctx, Ballot{
		Identity:    identity,
		Option:      idx,
		SubmittedAt: e.now().UTC(),
	})
	if errors.Is(err, ErrAlreadyVoted) {
		return ErrAlreadyVoted
	}
	if err != nil {
		return fmt.Errorf("insert ballot: %w", err)
	}

	e.publishLocked(ctx)
	return nil
}

// HasVoted reports whether identity already holds a ballot.
func (e *Engine) HasVoted(ctx context.Context, identity string) (bool, error) {
	if identity == "" {
		return false, ErrInvalidRequest
	}
	voted, err := e.ledger.HasVoted(ctx, identity)
	if err != nil {
		return false, fmt.Errorf("check ballot: %w", err)
	}
	return voted, nil
}

// Start activates the poll. Calling it on an active poll is a no-op.
func (e *Engine) Start(ctx context.Context, key string) error {
	return e.setActive(ctx, key, true)
}

// End deactivates the poll, leaving ballots visible.
func (e *Engine) End(ctx context.Context, key string) error {
	return e.setActive(ctx, key, false)
}

// Reset deactivates the poll and deletes every ballot.
func (e *Engine) Reset(ctx context.Context, key string) error {
	if err := auth.ValidateAdminKey(key, e.adminKey); err != nil {
		return ErrUnauthorized
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Deactivate first so a failed clear leaves an ended poll, not an open one.
	if err := e.ledger.SetPollActive(ctx, false); err != nil {
		return fmt.Errorf("write poll state: %w", err)
	}
	if err := e.ledger.Clear(ctx); err != nil {
		return fmt.Errorf("clear ballots: %w", err)
	}

	e.publishLocked(ctx)
	return nil
}

func (e *Engine) setActive(ctx context.Context, key string, active bool) error {
	if err := auth.ValidateAdminKey(key, e.adminKey); err != nil {
		return ErrUnauthorized
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ledger.SetPollActive(ctx, active); err != nil {
		return fmt.Errorf("write poll state: %w", err)
	}
	return nil
}

// PollActive returns the poll flag, initializing it on first access.
func (e *Engine) PollActive(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeLocked(ctx)
}

// MyVote returns the label identity voted for. It is only answered once the
// poll has ended.
func (e *Engine) MyVote(ctx context.Context, identity string) (string, error) {
	if identity == "" {
		return "", ErrInvalidRequest
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	active, err := e.activeLocked(ctx)
	if err != nil {
		return "", err
	}
	if active {
		return "", ErrPollStillActive
	}

	b, ok, err := e.ledger.Ballot(ctx, identity)
	if err != nil {
		return "", fmt.Errorf("read ballot: %w", err)
	}
	if !ok {
		return "", ErrNoVoteFound
	}
	return labelFor(e.registry, b.Option), nil
}

// Totals returns per-option counts aligned with the registry.
func (e *Engine) Totals(ctx context.Context) ([]int, error) {
	ballots, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Totals(e.registry, ballots), nil
}

// PerUser lists every ballot with its resolved label.
func (e *Engine) PerUser(ctx context.Context) ([]UserVote, error) {
	ballots, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return PerUser(e.registry, ballots), nil
}

// Grouped maps each label to the sorted identities that chose it.
func (e *Engine) Grouped(ctx context.Context) (map[string][]string, error) {
	ballots, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Grouped(e.registry, ballots), nil
}

func (e *Engine) snapshot(ctx context.Context) ([]Ballot, error) {
	ballots, err := e.ledger.Ballots(ctx)
	if err != nil {
		return nil, fmt.Errorf("read ballots: %w", err)
	}
	return ballots, nil
}

func (e *Engine) activeLocked(ctx context.Context) (bool, error) {
	active, ok, err := e.ledger.PollActive(ctx)
	if err != nil {
		return false, fmt.Errorf("read poll state: %w", err)
	}
	if ok {
		return active, nil
	}
	if err := e.ledger.SetPollActive(ctx, e.initial); err != nil {
		return false, fmt.Errorf("initialize poll state: %w", err)
	}
	return e.initial, nil
}

// publishLocked runs under mu so observers see totals in commit order.
// Failures here never affect the caller's outcome.
func (e *Engine) publishLocked(ctx context.Context) {
	if e.sink == nil {
		return
	}
	totals, err := e.Totals(ctx)
	if err != nil {
		slog.Warn("failed to compute totals for broadcast", "error", err)
		return
	}
	e.sink.Publish(totals)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import "errors"

// Rejections are expected, user-facing outcomes. None of them leave the
// ledger or the poll state modified.
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidOption      = errors.New("invalid option")
	ErrAlreadyVoted       = errors.New("already voted")
	ErrPollNotActive      = errors.New("poll not active")
	ErrTotalLimitReached  = errors.New("total vote limit reached")
	ErrOptionLimitReached = errors.New("option limit reached")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPollStillActive    = errors.New("poll still active")
	ErrNoVoteFound        = errors.New("no vote found")
)

var rejections = []error{
	ErrInvalidRequest,
	ErrInvalidOption,
	ErrAlreadyVoted,
	ErrPollNotActive,
	ErrTotalLimitReached,
	ErrOptionLimitReached,
	ErrUnauthorized,
	ErrPollStillActive,
	ErrNoVoteFound,
}

// IsRejection reports whether err is an expected outcome rather than an
// infrastructure failure.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

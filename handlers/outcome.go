// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/poll"
)

// outcome is how a poll error is reported over HTTP
type outcome struct {
	status   int
	msg      string
	decision string // metrics label
}

var outcomes = []struct {
	err error
	outcome
}{
	{poll.ErrInvalidRequest, outcome{http.StatusBadRequest, models.MsgInvalidRequest, "invalid_request"}},
	{poll.ErrInvalidOption, outcome{http.StatusBadRequest, models.MsgInvalidOption, "invalid_option"}},
	{poll.ErrAlreadyVoted, outcome{http.StatusOK, models.MsgAlreadyVoted, "already_voted"}},
	{poll.ErrPollNotActive, outcome{http.StatusOK, models.MsgPollNotActive, "poll_not_active"}},
	{poll.ErrTotalLimitReached, outcome{http.StatusOK, models.MsgTotalLimitReached, "total_limit_reached"}},
	{poll.ErrOptionLimitReached, outcome{http.StatusOK, models.MsgOptionLimitReached, "option_limit_reached"}},
	{poll.ErrUnauthorized, outcome{http.StatusForbidden, models.MsgUnauthorized, "unauthorized"}},
	{poll.ErrPollStillActive, outcome{http.StatusForbidden, models.MsgPollStillActive, "poll_still_active"}},
	{poll.ErrNoVoteFound, outcome{http.StatusNotFound, models.MsgNoVoteFound, "no_vote_found"}},
}

// outcomeFor maps err to its response. Unknown errors are storage failures.
func outcomeFor(err error) outcome {
	for _, o := range outcomes {
		if errors.Is(err, o.err) {
			return o.outcome
		}
	}
	return outcome{http.StatusInternalServerError, models.MsgStorageError, "error"}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct over a *poll.Engine:

  - VotingHandler: Login check and ballot submission
  - ResultsHandler: Totals, per-user and grouped views, status, own ballot
  - AdminHandler: Start, end and reset
  - LiveHandler: Server-sent totals

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(engine, m)

# Responses

Vote rejections are business outcomes, not transport errors. They answer
200 with success false and a reason:

	{"success": false, "msg": "Option limit reached"}

Malformed bodies and unknown options answer 400. A wrong admin key answers
403. Storage failures answer 500 and nothing is recorded.

# Live Updates

GET /live writes one "results" event with the current totals, then one per
committed change:

	event: results
	data: [3,1,0,2]

Slow observers may miss intermediate events; every event carries full
totals.
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(engine, hub, m, cfg)

# Endpoints

Health:

	GET /health
	GET /metrics

Voting:

	POST /login - Check whether a username may vote
	POST /vote  - Submit a ballot

Results:

	GET /results         - Per-option counts
	GET /user-results    - Username and label per ballot
	GET /grouped-results - Usernames per label

Lifecycle (admin key in body):

	POST /admin/start
	POST /admin/end
	POST /admin/reset

Gated mode only:

	GET /status              - Poll state
	GET /my-vote/{username}  - Own ballot, after the poll ends

Live updates (when enabled):

	GET /live - Server-sent totals
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote server.

Quickly Vote runs a single first-come-first-served poll: each username gets
one ballot, a fixed set of options, a global ballot cap and a per-option cap.

# Starting the Server

The server requires an admin key from the environment or CLI flags:

	ADMIN_KEY=secret go run .

Or with flags:

	go run . -p 3318 -admin-key secret -t sqlite -d quickly-vote.sqlite

A .env file in the working directory is loaded first; real environment
variables win over it.

# Configuration

Required settings:

  - ADMIN_KEY (-admin-key): Secret for start, end and reset

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): memory, bolt, sqlite or postgres (default: memory)
  - DATABASE_URL (-d): Connection string for sqlite or postgres
  - DATA_DIR (-data-dir): Directory for the bolt file
  - MAX_VOTES (-max-votes): Total ballot cap (default: 100)
  - MAX_PER_OPTION (-max-per-option): Per-option cap (default: MAX_VOTES / options)
  - OPTION_LABELS (-options): Comma separated labels (default: Option A..D)
  - POLL_MODE (-mode): gated or open (default: gated)
  - POLL_ACTIVE_DEFAULT (-active): Initial poll state in gated mode
  - LIVE_UPDATES (-live): Serve /live result stream (default: true)

# Architecture

  - poll: Option registry, admission engine, lifecycle, result projection
  - memstore, boltstore, db: Ledger backends
  - notify: Fan-out of totals to live observers
  - handlers: HTTP request handlers (voting, results, admin, live)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus counters
  - models: Request/response types
  - auth: Admin key validation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

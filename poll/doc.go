// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll implements admission for a single capped poll.

# Admission

Engine.SubmitVote checks, in order and under one lock:

  - poll is active (gated mode only)
  - option index is valid
  - username is non-empty
  - username has no ballot yet
  - total ballots below MaxVotes
  - ballots for the option below MaxPerOption

The first failing check is returned as one of the rejection errors in
errors.go. Any other error is a storage failure and nothing was committed.

# Storage

Engine depends only on the Ledger interface. Backends live in memstore,
boltstore and db.

# Results

Totals, PerUser and Grouped are pure functions over a ballot snapshot.
Ballots whose option no longer exists are skipped in counts and reported
as Unrecorded in per-user views.
*/
package poll

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - LoginRequest: username
  - VoteRequest: username, option
  - AdminRequest: key

# Response Types

  - Response: success, msg (login, vote, admin and every error)
  - StatusResponse: poll_active
  - UserResult: username, voted
  - MyVoteResponse: success, voted

GET /results and GET /grouped-results are plain JSON arrays and objects and
have no wrapper type.

# Messages

The Msg* constants are the user-facing strings returned in Response.Msg,
for example MsgAlreadyVoted = "Already voted".
*/
package models

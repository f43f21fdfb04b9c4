// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadDotEnv may be called first to pull variables from a .env file. Variables
already present in the environment are not overwritten.

# CLI Flags and Environment Variables

	-p                PORT                 Server port (default: 3318)
	-t                DATABASE_TYPE        memory, bolt, sqlite or postgres (default: memory)
	-d                DATABASE_URL         sqlite path or postgres URL
	--data-dir        DATA_DIR             bolt data directory
	--admin-key       ADMIN_KEY            Admin secret (required)
	--max-votes       MAX_VOTES            Total vote limit (default: 100)
	--max-per-option  MAX_PER_OPTION       Per-option limit (default: max-votes / options, floored)
	--options         OPTION_LABELS        Comma separated labels (default: Option A..Option D)
	--mode            POLL_MODE            gated or open (default: gated)
	--active          POLL_ACTIVE_DEFAULT  Initial poll flag (default: false)
	--live            LIVE_UPDATES         Server-sent result updates (default: true)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - ADMIN_KEY is missing
  - DATABASE_URL is missing for sqlite or postgres
  - DATA_DIR is missing for bolt
  - a numeric or boolean value does not parse, or a limit is out of range
  - POLL_MODE is not gated or open
*/
package cliparse

// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string, or SQLite file path
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminKeySalt: Secret for admin key HMAC (required)
  - IPHashSalt: Secret for IP hashing (defaults to AdminKeySalt)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type (sqlite or postgres)
	--admin-salt  Admin key salt
	--ip-salt     IP hash salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → --admin-salt
	IP_HASH_SALT   → --ip-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_KEY_SALT must be provided
  - DATABASE_URL must be provided for postgres (sqlite defaults to a
    local file)
*/
package cliparse

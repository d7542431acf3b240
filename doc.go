// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the EvalProject API server.

EvalProject is an evaluation portal for end-of-year student projects:
visitors rate projects across four criteria (presentation, technical,
innovation, overall) and leave one comment per project, anonymously but
without ballot stuffing. Deduplication is client-assisted: each visitor
carries a session token plus device fingerprint identity (see the
votesec package) and the server enforces one rating per (project,
session) pair.

# Starting the Server

The server reads environment variables, a local .env file, or CLI flags:

	ADMIN_KEY_SALT=secret go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string or sqlite file path
    (default: evalproject.db)
  - IP_HASH_SALT (--ip-salt): Secret for abuse-audit IP hashing
    (defaults to the admin salt)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (projects, ratings, comments, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin gate, JSON helpers
  - models: Request/response types
  - auth: Admin key and IP hashing
  - db: Schema creation
  - cliparse: Configuration parsing

The visitor side lives in its own packages and does not import the
server:

  - votesec: anonymous identity, fingerprinting, and the local vote ledger
  - localstore: durable on-disk storage backing votesec
  - client: the submission flow and background sync against this API

See package documentation for each component.
*/
package main

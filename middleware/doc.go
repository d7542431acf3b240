// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - RequireAdminKey: gates admin routes on the X-Admin-Key header
  - CORS: permissive cross-origin headers for the web frontend

# Helpers

  - JSONResponse / ErrorResponse: JSON encoding with status codes
  - ParseJSONBody: request body decoding
  - GetClientIP: client IP extraction behind proxies

Admin routes are wrapped as:

	mux.HandleFunc("POST /projects",
		middleware.WithLogging(middleware.RequireAdminKey(cfg.AdminKeySalt, h.Create)))
*/
package middleware

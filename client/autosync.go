// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"log/slog"
	"time"
)

// SyncInterval is how often the background loop pings the backend.
const SyncInterval = 3 * time.Minute

// Pinger is the probe used by AutoSync; *HTTPStore satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// AutoSync pings the backend on a fixed interval until ctx is
// cancelled. It keeps the session warm and surfaces connectivity
// problems in the log; failures are never retried early.
func AutoSync(ctx context.Context, p Pinger, interval time.Duration) {
	if interval <= 0 {
		interval = SyncInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Ping(ctx); err != nil {
				slog.Warn("backend sync ping failed", "error", err)
				continue
			}
			slog.Debug("backend sync ping ok")
		}
	}
}

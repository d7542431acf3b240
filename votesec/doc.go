// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package votesec prevents duplicate anonymous ratings without accounts.

A visitor has no login. To allow "one rating per project per visitor,
revisable", the package derives a semi-stable pseudo-identity for the
local installation and keeps a small local ledger of which projects that
identity has rated.

# Identity

The identifier accompanying every remote write is

	{sessionToken}_{fingerprint}

The session token ({epoch-millis}_{random-base36}) is generated once and
stored under evalproject_session. The fingerprint is a base64 digest of
environment signals (user agent, language, screen size, timezone offset,
render digest, CPU count, device memory), truncated to 32 characters,
stored under evalproject_fingerprint. Both are created on first use and
never rotated; clearing storage yields a fresh identity.

The identity is deliberately weak: it is not unique (fingerprints can
collide), not tamper-proof (storage is user-editable), and not shared
across devices. It only has to make accidental double-voting unlikely.

# Vote Ledger

Votes already cast from this installation live as a JSON array under
evalproject_votes. The ledger holds at most one record per
(project, identity) pair; recording a vote again replaces the old
record with a fresh timestamp. CleanupOldVotes discards records older
than 30 days; a record exactly at the boundary is removed.

The ledger is only a fast local gate for the UI ("have I voted?"). The
remote store remains the source of truth for rating values.

# Usage

	store, _ := localstore.Open(localstore.Config{Path: dir})
	mgr := votesec.NewManager(store, votesec.HostEnvironment{})

	id := mgr.UserIdentifier()
	if mgr.HasVoted(projectID) {
		// update the remote rating
	} else {
		// insert, then:
		if err := mgr.RecordVote(projectID); err != nil {
			// vote submitted but may not persist locally
		}
	}

# Failure Policy

Reads degrade: a missing or corrupt ledger blob means "no votes", a
failed identity read triggers regeneration. Writes surface errors (or a
warning log for identity persistence) but never block a submission.
*/
package votesec

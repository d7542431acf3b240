// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package localstore persists vote-security state in an embedded BadgerDB.

It is the durable counterpart of the browser's localStorage: one store
per installation (typically under the user's config directory), holding
the session token, fingerprint, and vote ledger keys for the votesec
package.

	store, err := localstore.Open(localstore.Config{Path: dir})
	if err != nil {
		// storage unavailable: votesec degrades per its failure policy
	}
	defer store.Close()

	mgr := votesec.NewManager(store, votesec.HostEnvironment{})

Use Config.InMemory for tests.
*/
package localstore

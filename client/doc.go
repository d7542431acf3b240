// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client implements the visitor-facing submission flow for the
// EvalProject portal.
//
// A Flow combines a remote Store (ratings and comments on the backend)
// with a votesec.Manager (the local anonymous identity and vote
// ledger). Opening a project prefills the form from any earlier
// submission; submitting routes to insert or update based on whether
// this identity has already voted, and records new votes locally so
// repeat visits become updates instead of duplicates.
//
// HTTPStore is the production Store, speaking the portal's JSON API.
// AutoSync runs an optional background loop that pings the backend
// every few minutes so connectivity problems show up in the log before
// a visitor hits submit.
package client

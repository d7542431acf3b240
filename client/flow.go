// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkaddouri/evalproject/votesec"
)

// Prefill holds whatever previous submission could be fetched for a
// project. A nil Rating means no earlier vote was found (or the lookup
// failed and was logged).
type Prefill struct {
	Rating  *Rating
	Comment string
}

// Flow ties the local vote identity to the remote store. One Flow is
// shared across a session; it is not safe for concurrent use.
type Flow struct {
	store Store
	votes *votesec.Manager
}

// NewFlow builds a submission flow over the given remote store and
// vote manager.
func NewFlow(store Store, votes *votesec.Manager) *Flow {
	return &Flow{store: store, votes: votes}
}

// Open loads any earlier rating and comment for the project so a form
// can be prefilled. Lookup failures degrade to an empty prefill; the
// caller still gets a usable form.
func (f *Flow) Open(ctx context.Context, projectID string) Prefill {
	session := f.votes.UserIdentifier()

	var p Prefill
	rating, err := f.store.GetRating(ctx, projectID, session)
	if err != nil {
		slog.Warn("could not load previous rating", "project_id", projectID, "error", err)
	} else {
		p.Rating = rating
	}

	comment, ok, err := f.store.LatestComment(ctx, projectID, session)
	if err != nil {
		slog.Warn("could not load previous comment", "project_id", projectID, "error", err)
	} else if ok {
		p.Comment = comment
	}
	return p
}

// Submit sends a rating (and optional comment) for the project. When
// the local ledger says this identity already voted, the existing
// records are updated in place; otherwise new ones are inserted and
// the vote is recorded locally. The returned bool reports whether a
// new vote was created.
func (f *Flow) Submit(ctx context.Context, projectID string, rating Rating, comment string) (bool, error) {
	session := f.votes.UserIdentifier()

	voted := f.votes.HasVoted(projectID)

	created := false
	if voted {
		if err := f.store.UpdateRating(ctx, projectID, session, rating); err != nil {
			return false, fmt.Errorf("could not update rating: %w", err)
		}
	} else {
		err := f.store.InsertRating(ctx, projectID, session, rating)
		switch err {
		case nil:
			created = true
			if err := f.votes.RecordVote(projectID); err != nil {
				slog.Warn("could not record vote locally", "project_id", projectID, "error", err)
			}
		case ErrConflict:
			// Server already has a vote for this session; fall back
			// to an update and repair the local ledger.
			if err := f.store.UpdateRating(ctx, projectID, session, rating); err != nil {
				return false, fmt.Errorf("could not update rating: %w", err)
			}
			if err := f.votes.RecordVote(projectID); err != nil {
				slog.Warn("could not record vote locally", "project_id", projectID, "error", err)
			}
		default:
			return false, fmt.Errorf("could not submit rating: %w", err)
		}
	}

	if comment != "" {
		if err := f.submitComment(ctx, projectID, session, comment); err != nil {
			return created, err
		}
	}
	return created, nil
}

func (f *Flow) submitComment(ctx context.Context, projectID, session, content string) error {
	_, exists, err := f.store.LatestComment(ctx, projectID, session)
	if err != nil {
		return fmt.Errorf("could not check existing comment: %w", err)
	}
	if exists {
		if err := f.store.UpdateComment(ctx, projectID, session, content); err != nil {
			return fmt.Errorf("could not update comment: %w", err)
		}
		return nil
	}

	err = f.store.InsertComment(ctx, projectID, session, content)
	if err == ErrConflict {
		err = f.store.UpdateComment(ctx, projectID, session, content)
	}
	if err != nil {
		return fmt.Errorf("could not submit comment: %w", err)
	}
	return nil
}

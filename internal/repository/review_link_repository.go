package repository

import (
	"context"

	"turismo-api/internal/domain/entity"
)

// ReviewLinkRepository is the junction index between venues and reviews.
// Each kind has its own junction table; a review id appears in at most one
// kind's table and at most once per venue.
type ReviewLinkRepository interface {
	// Link records that the review belongs to the venue. Idempotent per
	// (kind, venueID, reviewID) triple: linking twice leaves one row.
	Link(ctx context.Context, kind entity.Kind, venueID, reviewID int64) error
	// Unlink removes every association for the review across all kinds.
	// Called before review deletion.
	Unlink(ctx context.Context, reviewID int64) error
	// UnlinkVenue removes every association for the venue. Called when a
	// venue is deleted; the reviews themselves are kept.
	UnlinkVenue(ctx context.Context, kind entity.Kind, venueID int64) error
	// ReviewIDsFor returns the review ids linked to the venue, unordered.
	ReviewIDsFor(ctx context.Context, kind entity.Kind, venueID int64) ([]int64, error)
	// DeleteDangling removes junction rows whose review or venue no longer
	// exists and reports how many rows were removed. Used by the
	// maintenance sweeper.
	DeleteDangling(ctx context.Context, kind entity.Kind) (int64, error)
}

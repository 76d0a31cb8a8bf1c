// Package review provides use cases for submitting, removing and querying
// reviews, and for computing per-venue rating statistics.
package review

import "errors"

// Sentinel errors for review use case operations.
var (
	// ErrReviewNotFound indicates that the requested review was not found.
	ErrReviewNotFound = errors.New("review not found")

	// ErrInvalidReviewID indicates that the provided review ID is invalid.
	// Review IDs must be positive integers.
	ErrInvalidReviewID = errors.New("invalid review ID")

	// ErrInvalidSort indicates an unrecognized sort order.
	ErrInvalidSort = errors.New("invalid sort order")

	// ErrLinkFailed indicates the association step failed after the review
	// row was created; the compensating delete succeeded, so no partial
	// write remains.
	ErrLinkFailed = errors.New("review could not be linked to the venue")

	// ErrConsistency indicates a partial write the service could not undo:
	// a review was created, its association failed, and the compensating
	// delete failed too. The caller cannot know which side succeeded.
	ErrConsistency = errors.New("review store left in an inconsistent state")
)

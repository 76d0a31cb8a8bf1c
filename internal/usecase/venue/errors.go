// Package venue provides use cases for managing reviewable venues.
// It implements business logic for creating, updating, deleting, and querying
// places and restaurants, including validation and the unlink cascade on delete.
package venue

import "errors"

// Sentinel errors for venue use case operations.
var (
	// ErrVenueNotFound indicates that the requested venue was not found.
	ErrVenueNotFound = errors.New("venue not found")

	// ErrInvalidVenueID indicates that the provided venue ID is invalid.
	// Venue IDs must be positive integers.
	ErrInvalidVenueID = errors.New("invalid venue ID")
)

package review

import "errors"

var (
	errInvalidPage         = errors.New("invalid query parameter: page must be a positive integer")
	errInvalidRatingFilter = errors.New("invalid query parameter: rating must be between 1 and 5")
	errMutationInFlight    = errors.New("another mutation for this scope is in progress")
	errStatsNeedScope      = errors.New("invalid scope: kind and venue_id are required")
)

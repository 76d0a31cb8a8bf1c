package review

import (
	"fmt"
	"net/http"
	"strconv"

	"turismo-api/internal/domain/entity"
	reviewUC "turismo-api/internal/usecase/review"
)

// scopeFromQuery reads the optional venue scope from the query string.
// Both kind and venue_id must be present together; neither means the
// unscoped "all reviews" context.
func scopeFromQuery(r *http.Request) (reviewUC.Scope, error) {
	kindStr := r.URL.Query().Get("kind")
	venueStr := r.URL.Query().Get("venue_id")

	if kindStr == "" && venueStr == "" {
		return reviewUC.AllReviews, nil
	}
	if kindStr == "" || venueStr == "" {
		return reviewUC.Scope{}, fmt.Errorf("invalid scope: kind and venue_id must be provided together")
	}

	kind, err := entity.ParseKind(kindStr)
	if err != nil {
		return reviewUC.Scope{}, err
	}
	venueID, err := strconv.ParseInt(venueStr, 10, 64)
	if err != nil || venueID <= 0 {
		return reviewUC.Scope{}, fmt.Errorf("invalid scope: venue_id must be a positive integer")
	}

	return reviewUC.Scope{Kind: kind, VenueID: venueID}, nil
}

// scopeKey is the busy-guard key for a scope.
func scopeKey(s reviewUC.Scope) string {
	if s.IsAll() {
		return "all"
	}
	return string(s.Kind) + "/" + strconv.FormatInt(s.VenueID, 10)
}

package review

import (
	"net/http"

	"turismo-api/internal/handler/http/respond"
	reviewUC "turismo-api/internal/usecase/review"
)

type StatsHandler struct{ Svc *reviewUC.Service }

// ServeHTTP returns the rating statistics for a venue: review count, average
// rounded to one decimal, and the per-star distribution. A venue with no
// linked reviews (or one that no longer exists) returns the zero state.
//
// Query parameters: kind and venue_id, both required.
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromQuery(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if scope.IsAll() {
		respond.SafeError(w, http.StatusBadRequest, errStatsNeedScope)
		return
	}

	stats, err := h.Svc.StatisticsFor(r.Context(), scope.Kind, scope.VenueID)
	if err != nil {
		respond.BackendError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, StatsResponse{
		Kind:         string(scope.Kind),
		VenueID:      scope.VenueID,
		Count:        stats.Count,
		Average:      stats.Average,
		Distribution: stats.Distribution,
	})
}

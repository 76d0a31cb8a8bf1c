package review

import (
	"log/slog"
	"net/http"

	reviewUC "turismo-api/internal/usecase/review"
	venueUC "turismo-api/internal/usecase/venue"
)

// Register registers all review-related HTTP handlers with the given mux.
// Submit and remove share one busy guard, so at most one mutation per scope
// is in flight at a time.
func Register(mux *http.ServeMux, svc *reviewUC.Service, venues *venueUC.Service, logger *slog.Logger) {
	guard := &busyGuard{}

	mux.Handle("GET /reviews", QueryHandler{Svc: svc, Venues: venues, Logger: logger})
	mux.Handle("GET /reviews/stats", StatsHandler{Svc: svc})

	mux.Handle("POST /reviews", SubmitHandler{Svc: svc, Guard: guard, Logger: logger})
	mux.Handle("DELETE /reviews/", RemoveHandler{Svc: svc, Guard: guard, Logger: logger})
}

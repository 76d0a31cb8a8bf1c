package venue

import (
	"log/slog"
	"net/http"

	reviewUC "turismo-api/internal/usecase/review"
	venueUC "turismo-api/internal/usecase/venue"
)

// Register registers all venue-related HTTP handlers with the given mux.
// It sets up routes for listing, fetching, creating, updating, and deleting venues.
func Register(mux *http.ServeMux, svc *venueUC.Service, reviews *reviewUC.Service, logger *slog.Logger) {
	mux.Handle("GET /venues", ListHandler{Svc: svc, Reviews: reviews, Logger: logger})
	mux.Handle("GET /venues/", GetHandler{Svc: svc, Reviews: reviews})

	mux.Handle("POST /venues", CreateHandler{Svc: svc})
	mux.Handle("PUT /venues/", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /venues/", DeleteHandler{Svc: svc, Logger: logger})
}

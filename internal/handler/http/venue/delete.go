package venue

import (
	"errors"
	"log/slog"
	"net/http"

	"turismo-api/internal/handler/http/pathutil"
	"turismo-api/internal/handler/http/respond"
	"turismo-api/internal/observability/logging"
	venueUC "turismo-api/internal/usecase/venue"
)

type DeleteHandler struct {
	Svc    *venueUC.Service
	Logger *slog.Logger
}

// ServeHTTP deletes a venue. Its review associations are removed with it;
// the reviews themselves stay in the store.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/venues/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		logger := logging.WithRequestID(r.Context(), h.Logger)
		switch {
		case errors.Is(err, venueUC.ErrVenueNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		default:
			logger.Error("failed to delete venue",
				"venue_id", id,
				"error", err.Error())
			respond.BackendError(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

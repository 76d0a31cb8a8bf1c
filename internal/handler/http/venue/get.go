package venue

import (
	"errors"
	"net/http"

	"turismo-api/internal/handler/http/pathutil"
	"turismo-api/internal/handler/http/respond"
	reviewUC "turismo-api/internal/usecase/review"
	venueUC "turismo-api/internal/usecase/venue"
)

type GetHandler struct {
	Svc     *venueUC.Service
	Reviews *reviewUC.Service
}

// ServeHTTP returns a single venue with its rating statistics.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/venues/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	v, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, venueUC.ErrVenueNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.Is(err, venueUC.ErrInvalidVenueID):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.BackendError(w, err)
		}
		return
	}

	dto := toDTO(v)
	if stats, err := h.Reviews.StatisticsFor(r.Context(), v.Kind, v.ID); err == nil {
		dto.Stats = toStatsDTO(stats)
	}

	respond.JSON(w, http.StatusOK, dto)
}

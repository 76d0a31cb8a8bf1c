package venue

import (
	"log/slog"
	"net/http"

	"turismo-api/internal/domain/entity"
	"turismo-api/internal/handler/http/respond"
	"turismo-api/internal/observability/logging"
	"turismo-api/internal/repository"
	reviewUC "turismo-api/internal/usecase/review"
	venueUC "turismo-api/internal/usecase/venue"
)

type ListHandler struct {
	Svc     *venueUC.Service
	Reviews *reviewUC.Service
	Logger  *slog.Logger
}

// ServeHTTP lists venues, optionally filtered by kind and a free-text query.
// Each venue carries its computed rating statistics so list screens can show
// the star summary without a second round-trip.
//
// Query parameters:
//   - kind: "place" or "restaurant" (optional)
//   - q: case-insensitive substring over name and description (optional)
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	filter := repository.VenueFilter{Text: r.URL.Query().Get("q")}
	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind, err := entity.ParseKind(kindStr)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		filter.Kind = &kind
	}

	venues, err := h.Svc.List(ctx, filter)
	if err != nil {
		logger.Error("failed to list venues", "error", err.Error())
		respond.BackendError(w, err)
		return
	}

	dtos := make([]DTO, 0, len(venues))
	for _, v := range venues {
		dto := toDTO(v)
		stats, err := h.Reviews.StatisticsFor(ctx, v.Kind, v.ID)
		if err != nil {
			// A failed aggregation degrades to "no stats", not a failed page.
			logger.Warn("failed to compute venue statistics",
				"venue_id", v.ID,
				"error", err.Error())
		} else {
			dto.Stats = toStatsDTO(stats)
		}
		dtos = append(dtos, dto)
	}

	respond.JSON(w, http.StatusOK, dtos)
}

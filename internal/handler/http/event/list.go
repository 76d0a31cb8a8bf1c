package event

import (
	"log/slog"
	"net/http"

	"turismo-api/internal/common/pagination"
	"turismo-api/internal/handler/http/respond"
	"turismo-api/internal/observability/logging"
	eventUC "turismo-api/internal/usecase/event"
)

type ListHandler struct {
	Svc    *eventUC.Service
	Cfg    pagination.Config
	Logger *slog.Logger
}

// ServeHTTP returns one page of events with their destination, soonest
// first. Page and limit come from the query string; an out-of-range page
// clamps to the last one.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.Cfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	events, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("failed to list events", "error", err.Error())
		respond.BackendError(w, err)
		return
	}

	totalPages := pagination.CalculateTotalPages(int64(len(events)), params.Limit)
	page := pagination.ClampPage(params.Page, totalPages)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(
		toDTOs(pagination.Slice(events, page, params.Limit)),
		pagination.Metadata{
			Total:      int64(len(events)),
			Page:       page,
			Limit:      params.Limit,
			TotalPages: totalPages,
		},
	))
}

package event

import (
	"errors"
	"log/slog"
	"net/http"

	"turismo-api/internal/handler/http/respond"
	"turismo-api/internal/observability/logging"
	eventUC "turismo-api/internal/usecase/event"
)

type SearchHandler struct {
	Svc    *eventUC.Service
	Logger *slog.Logger
}

// ServeHTTP searches events by keyword against the event name, type and
// destination city. The q parameter is required and must not be blank.
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	events, err := h.Svc.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, eventUC.ErrBlankQuery) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		logger.Error("failed to search events",
			"q", r.URL.Query().Get("q"),
			"error", err.Error())
		respond.BackendError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"data":  toDTOs(events),
		"count": len(events),
	})
}

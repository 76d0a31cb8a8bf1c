package event

import (
	"log/slog"
	"net/http"

	"turismo-api/internal/common/pagination"
	eventUC "turismo-api/internal/usecase/event"
)

// Register registers all event-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *eventUC.Service, logger *slog.Logger) {
	cfg := pagination.LoadFromEnv()
	mux.Handle("GET /events", ListHandler{Svc: svc, Cfg: cfg, Logger: logger})
	mux.Handle("GET /events/search", SearchHandler{Svc: svc, Logger: logger})
}

package review

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	handlerhttp "turismo-api/internal/handler/http"
	"turismo-api/internal/handler/http/pathutil"
	"turismo-api/internal/handler/http/respond"
	"turismo-api/internal/observability/logging"
	reviewUC "turismo-api/internal/usecase/review"
)

type RemoveHandler struct {
	Svc    *reviewUC.Service
	Guard  *busyGuard
	Logger *slog.Logger
}

// ServeHTTP removes a review and its associations. Double-clicking delete
// while the first request is in flight gets 409 for the second click.
func (h RemoveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/reviews/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	release, ok := h.Guard.tryAcquire("review/" + strconv.FormatInt(id, 10))
	if !ok {
		handlerhttp.RecordBusyRejection("remove")
		respond.SafeError(w, http.StatusConflict, errMutationInFlight)
		return
	}
	defer release()

	if err := h.Svc.Remove(r.Context(), id); err != nil {
		logger := logging.WithRequestID(r.Context(), h.Logger)
		switch {
		case errors.Is(err, reviewUC.ErrInvalidReviewID):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, reviewUC.ErrReviewNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		default:
			logger.Error("failed to remove review",
				"review_id", id,
				"error", err.Error())
			respond.BackendError(w, err)
		}
		return
	}

	handlerhttp.RecordReviewRemoved()
	w.WriteHeader(http.StatusNoContent)
}

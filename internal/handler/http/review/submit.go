package review

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"turismo-api/internal/domain/entity"
	handlerhttp "turismo-api/internal/handler/http"
	"turismo-api/internal/handler/http/respond"
	"turismo-api/internal/observability/logging"
	reviewUC "turismo-api/internal/usecase/review"
)

type SubmitHandler struct {
	Svc    *reviewUC.Service
	Guard  *busyGuard
	Logger *slog.Logger
}

// ServeHTTP submits a review. When kind and venue_id are present in the
// body, the review is linked to that venue in the same logical operation.
// A second submission for the same scope while one is in flight gets 409.
func (h SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	var req struct {
		Kind     string `json:"kind"`
		VenueID  int64  `json:"venue_id"`
		Rating   int    `json:"rating"`
		Title    string `json:"title"`
		Body     string `json:"body"`
		AuthorID *int64 `json:"author_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	scope := reviewUC.AllReviews
	if req.Kind != "" || req.VenueID != 0 {
		kind, err := entity.ParseKind(req.Kind)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		if req.VenueID <= 0 {
			respond.SafeError(w, http.StatusBadRequest,
				&entity.ValidationError{Field: "venue_id", Message: "must be positive"})
			return
		}
		scope = reviewUC.Scope{Kind: kind, VenueID: req.VenueID}
	}

	release, ok := h.Guard.tryAcquire(scopeKey(scope))
	if !ok {
		handlerhttp.RecordBusyRejection("submit")
		respond.SafeError(w, http.StatusConflict, errMutationInFlight)
		return
	}
	defer release()

	created, err := h.Svc.Submit(ctx, scope, reviewUC.SubmitInput{
		Rating:   req.Rating,
		Title:    req.Title,
		Body:     req.Body,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		var verr *entity.ValidationError
		switch {
		case errors.As(err, &verr):
			respond.SafeError(w, http.StatusBadRequest, err)
		case errors.Is(err, reviewUC.ErrConsistency):
			logger.Error("review submission left inconsistent state",
				"scope", scopeKey(scope),
				"error", err.Error())
			respond.SafeError(w, http.StatusInternalServerError, err)
		case errors.Is(err, reviewUC.ErrLinkFailed):
			handlerhttp.RecordCompensation()
			logger.Warn("review rolled back after link failure",
				"scope", scopeKey(scope),
				"error", err.Error())
			respond.SafeError(w, http.StatusInternalServerError, err)
		default:
			logger.Error("failed to submit review",
				"scope", scopeKey(scope),
				"error", err.Error())
			respond.BackendError(w, err)
		}
		return
	}

	kindLabel := "all"
	if !scope.IsAll() {
		kindLabel = string(scope.Kind)
	}
	handlerhttp.RecordReviewSubmitted(kindLabel)

	respond.JSON(w, http.StatusCreated, toDTO(created))
}

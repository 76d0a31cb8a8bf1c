package review

import (
	"log/slog"
	"net/http"
	"strconv"

	"turismo-api/internal/handler/http/respond"
	"turismo-api/internal/observability/logging"
	reviewUC "turismo-api/internal/usecase/review"
	venueUC "turismo-api/internal/usecase/venue"
)

type QueryHandler struct {
	Svc    *reviewUC.Service
	Venues *venueUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns one page of reviews for the requested scope.
//
// Query parameters:
//   - kind, venue_id: venue scope (optional, both or neither)
//   - rating: exact 1-5 match (optional)
//   - sort: date_desc (default), date_asc, rating_desc, rating_asc
//   - page: 1-based page number; out-of-range values clamp
func (h QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	scope, err := scopeFromQuery(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	order, err := reviewUC.ParseSort(r.URL.Query().Get("sort"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			respond.SafeError(w, http.StatusBadRequest,
				errInvalidPage)
			return
		}
	}

	result, err := h.Svc.Query(ctx, scope, filter, order, page)
	if err != nil {
		logger.Error("failed to query reviews",
			"scope", scopeKey(scope),
			"error", err.Error())
		respond.BackendError(w, err)
		return
	}

	resp := QueryResponse{
		Data:       toDTOs(result.Items),
		Pagination: result.Pagination,
	}
	if !scope.IsAll() {
		resp.Scope = h.scopeContext(r, scope)
	}

	respond.JSON(w, http.StatusOK, resp)
}

// scopeContext resolves the venue behind the scope so the client can label
// the screen. A venue that has disappeared still yields the bare scope.
func (h QueryHandler) scopeContext(r *http.Request, scope reviewUC.Scope) *ScopeDTO {
	dto := &ScopeDTO{
		Kind:    string(scope.Kind),
		VenueID: scope.VenueID,
	}
	if h.Venues == nil {
		return dto
	}
	if v, err := h.Venues.Get(r.Context(), scope.VenueID); err == nil && v.Kind == scope.Kind {
		dto.Name = v.Name
		dto.Category = v.Category
	}
	return dto
}

func filterFromQuery(r *http.Request) (reviewUC.Filter, error) {
	ratingStr := r.URL.Query().Get("rating")
	if ratingStr == "" {
		return reviewUC.Filter{}, nil
	}
	rating, err := strconv.Atoi(ratingStr)
	if err != nil || rating < 1 || rating > 5 {
		return reviewUC.Filter{}, errInvalidRatingFilter
	}
	return reviewUC.Filter{Rating: rating}, nil
}

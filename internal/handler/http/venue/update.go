package venue

import (
	"encoding/json"
	"errors"
	"net/http"

	"turismo-api/internal/domain/entity"
	"turismo-api/internal/handler/http/pathutil"
	"turismo-api/internal/handler/http/respond"
	venueUC "turismo-api/internal/usecase/venue"
)

type UpdateHandler struct{ Svc *venueUC.Service }

// ServeHTTP partially updates a venue. Absent fields are left unchanged;
// the venue's kind is immutable.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/venues/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Category    *string `json:"category"`
		Description *string `json:"description"`
		Schedule    *string `json:"schedule"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	v, err := h.Svc.Update(r.Context(), venueUC.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Schedule:    req.Schedule,
	})
	if err != nil {
		var verr *entity.ValidationError
		switch {
		case errors.Is(err, venueUC.ErrVenueNotFound):
			respond.SafeError(w, http.StatusNotFound, err)
		case errors.As(err, &verr):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.BackendError(w, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(v))
}

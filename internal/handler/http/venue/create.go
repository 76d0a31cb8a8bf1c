package venue

import (
	"encoding/json"
	"errors"
	"net/http"

	"turismo-api/internal/domain/entity"
	"turismo-api/internal/handler/http/respond"
	venueUC "turismo-api/internal/usecase/venue"
)

type CreateHandler struct{ Svc *venueUC.Service }

// ServeHTTP creates a new venue from the submitted form fields.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind        string `json:"kind"`
		Name        string `json:"name"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Schedule    string `json:"schedule"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	kind, err := entity.ParseKind(req.Kind)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	v, err := h.Svc.Create(r.Context(), venueUC.CreateInput{
		Kind:        kind,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Schedule:    req.Schedule,
	})
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.BackendError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(v))
}

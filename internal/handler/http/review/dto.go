// Package review provides HTTP handlers for review submission, removal,
// querying and per-venue rating statistics.
package review

import (
	"turismo-api/internal/common/pagination"
	"turismo-api/internal/domain/entity"
	reviewUC "turismo-api/internal/usecase/review"
)

// dateLayout is the wire format for authored-on values. Reviews carry
// calendar dates only.
const dateLayout = "2006-01-02"

// DTO is the review representation sent to clients. The stored text column
// is decoded back into the title and body the submission form collected.
type DTO struct {
	ID         int64  `json:"id"`
	Rating     int    `json:"rating"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	AuthoredOn string `json:"authored_on"`
	AuthorID   *int64 `json:"author_id,omitempty"`
}

// ScopeDTO is the navigation context echoed back on scoped queries, so the
// review screen can show which venue it was opened from.
type ScopeDTO struct {
	Kind     string `json:"kind"`
	VenueID  int64  `json:"venue_id"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

// QueryResponse is one page of reviews plus the scope it was queried under.
type QueryResponse struct {
	Scope      *ScopeDTO           `json:"scope,omitempty"`
	Data       []DTO               `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

// StatsResponse carries the aggregated rating statistics for a venue.
type StatsResponse struct {
	Kind         string      `json:"kind"`
	VenueID      int64       `json:"venue_id"`
	Count        int         `json:"count"`
	Average      float64     `json:"average"`
	Distribution map[int]int `json:"distribution"`
}

func toDTO(r *entity.Review) DTO {
	title, body := reviewUC.DecodeText(r.Text)
	return DTO{
		ID:         r.ID,
		Rating:     r.Rating,
		Title:      title,
		Body:       body,
		AuthoredOn: r.AuthoredOn.Format(dateLayout),
		AuthorID:   r.AuthorID,
	}
}

func toDTOs(reviews []*entity.Review) []DTO {
	dtos := make([]DTO, 0, len(reviews))
	for _, r := range reviews {
		dtos = append(dtos, toDTO(r))
	}
	return dtos
}

// Package venue provides HTTP handlers for venue management endpoints.
package venue

import (
	"turismo-api/internal/domain/entity"
)

// DTO is the venue representation sent to clients. Rating statistics are
// recomputed from the currently linked reviews on every load; nothing is
// denormalized onto the venue row.
type DTO struct {
	ID          int64      `json:"id"`
	Kind        string     `json:"kind"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description,omitempty"`
	Schedule    string     `json:"schedule,omitempty"`
	Stats       *StatsDTO  `json:"stats,omitempty"`
}

// StatsDTO carries the computed rating statistics for a venue.
type StatsDTO struct {
	Count        int         `json:"count"`
	Average      float64     `json:"average"`
	Distribution map[int]int `json:"distribution"`
}

func toDTO(v *entity.Venue) DTO {
	return DTO{
		ID:          v.ID,
		Kind:        string(v.Kind),
		Name:        v.Name,
		Category:    v.Category,
		Description: v.Description,
		Schedule:    v.Schedule,
	}
}

func toStatsDTO(s entity.RatingStats) *StatsDTO {
	return &StatsDTO{
		Count:        s.Count,
		Average:      s.Average,
		Distribution: s.Distribution,
	}
}

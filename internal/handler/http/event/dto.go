// Package event provides HTTP handlers for browsing and searching tourism
// events.
package event

import (
	"time"

	"turismo-api/internal/repository"
)

// DTO is the event representation sent to clients, with its destination
// city flattened in.
type DTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	EventType string `json:"event_type,omitempty"`
	StartsAt  string `json:"starts_at,omitempty"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

func toDTO(e repository.EventWithDestination) DTO {
	dto := DTO{
		ID:        e.Event.ID,
		Name:      e.Event.Name,
		EventType: e.Event.EventType,
	}
	if !e.Event.StartsAt.IsZero() {
		dto.StartsAt = e.Event.StartsAt.Format(time.RFC3339)
	}
	if e.Destination != nil {
		dto.City = e.Destination.City
		dto.Country = e.Destination.Country
	}
	return dto
}

func toDTOs(events []repository.EventWithDestination) []DTO {
	dtos := make([]DTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, toDTO(e))
	}
	return dtos
}

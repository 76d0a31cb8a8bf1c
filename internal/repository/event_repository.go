package repository

import (
	"context"

	"turismo-api/internal/domain/entity"
)

// EventWithDestination represents an event along with its destination city.
type EventWithDestination struct {
	Event       *entity.Event
	Destination *entity.Destination
}

type EventRepository interface {
	// ListWithDestination retrieves all events with their destinations,
	// ordered by start date ascending.
	ListWithDestination(ctx context.Context) ([]EventWithDestination, error)
	// Search filters events by a case-insensitive substring over the event
	// name, event type and destination city.
	Search(ctx context.Context, q string) ([]EventWithDestination, error)
}

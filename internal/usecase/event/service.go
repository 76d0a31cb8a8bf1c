package event

import (
	"context"
	"fmt"
	"strings"

	"turismo-api/internal/repository"
)

// Service provides event browsing use cases.
type Service struct {
	Repo repository.EventRepository
}

// List retrieves all events with their destinations, soonest first.
func (s *Service) List(ctx context.Context) ([]repository.EventWithDestination, error) {
	events, err := s.Repo.ListWithDestination(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Search finds events matching the keyword against the event name, type and
// destination city. Returns ErrBlankQuery for a blank keyword.
func (s *Service) Search(ctx context.Context, q string) ([]repository.EventWithDestination, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrBlankQuery
	}

	events, err := s.Repo.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return events, nil
}

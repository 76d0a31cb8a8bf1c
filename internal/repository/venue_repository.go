// Package repository defines the persistence interfaces consumed by the
// use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"turismo-api/internal/domain/entity"
)

// VenueFilter contains optional filters for venue listing.
type VenueFilter struct {
	Kind *entity.Kind // Optional: restrict to one kind
	Text string       // Optional: case-insensitive substring over name/description
}

type VenueRepository interface {
	// List retrieves venues matching the filter, newest first.
	List(ctx context.Context, filter VenueFilter) ([]*entity.Venue, error)
	// Get returns (nil, nil) if no venue with the id exists.
	Get(ctx context.Context, id int64) (*entity.Venue, error)
	// Create inserts the venue and fills in its store-assigned ID.
	Create(ctx context.Context, v *entity.Venue) error
	Update(ctx context.Context, v *entity.Venue) error
	Delete(ctx context.Context, id int64) error
}

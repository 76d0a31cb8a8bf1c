package venue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"turismo-api/internal/domain/entity"
	"turismo-api/internal/repository"
)

// CreateInput represents the input parameters for creating a new venue.
type CreateInput struct {
	Kind        entity.Kind
	Name        string
	Category    string
	Description string
	Schedule    string
}

// UpdateInput represents the input parameters for updating an existing venue.
// Fields with nil values will not be updated. Kind is immutable after creation.
type UpdateInput struct {
	ID          int64
	Name        *string
	Category    *string
	Description *string
	Schedule    *string
}

// Service provides venue management use cases.
// It handles business logic for venue operations and delegates persistence
// to the repositories.
type Service struct {
	Repo  repository.VenueRepository
	Links repository.ReviewLinkRepository
}

// List retrieves venues matching the filter.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context, filter repository.VenueFilter) ([]*entity.Venue, error) {
	venues, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

// Get retrieves a single venue by its ID.
// Returns ErrInvalidVenueID if the ID is not positive.
// Returns ErrVenueNotFound if the venue does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Venue, error) {
	if id <= 0 {
		return nil, ErrInvalidVenueID
	}

	v, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if v == nil {
		return nil, ErrVenueNotFound
	}
	return v, nil
}

// Create creates a new venue with the provided input.
// Name and category are required after trimming whitespace.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Venue, error) {
	if !in.Kind.Valid() {
		return nil, &entity.ValidationError{Field: "kind", Message: "must be place or restaurant"}
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, &entity.ValidationError{Field: "category", Message: "is required"}
	}

	v := &entity.Venue{
		Kind:        in.Kind,
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
		Schedule:    in.Schedule,
	}

	if err := s.Repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return v, nil
}

// Update modifies an existing venue with the provided input.
// Only non-nil fields in the input will be updated.
// Returns ErrInvalidVenueID if the ID is not positive.
// Returns ErrVenueNotFound if the venue does not exist.
// Returns a ValidationError if any updated field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Venue, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidVenueID
	}

	v, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if v == nil {
		return nil, ErrVenueNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, &entity.ValidationError{Field: "name", Message: "cannot be empty"}
		}
		v.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return nil, &entity.ValidationError{Field: "category", Message: "cannot be empty"}
		}
		v.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		v.Description = *in.Description
	}
	if in.Schedule != nil {
		v.Schedule = *in.Schedule
	}

	if err := s.Repo.Update(ctx, v); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return v, nil
}

// Delete removes a venue and every association pointing at it. The linked
// reviews themselves are kept: an orphaned review simply stops appearing in
// venue-scoped listings. Deleting the reviews too would destroy data that
// other screens may still reference by id.
// Returns ErrInvalidVenueID if the ID is not positive.
// Returns ErrVenueNotFound if the venue does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidVenueID
	}

	v, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get venue: %w", err)
	}
	if v == nil {
		return ErrVenueNotFound
	}

	if err := s.Links.UnlinkVenue(ctx, v.Kind, v.ID); err != nil {
		return fmt.Errorf("unlink venue: %w", err)
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}

	slog.Info("venue deleted",
		slog.Int64("venue_id", id),
		slog.String("kind", string(v.Kind)))
	return nil
}

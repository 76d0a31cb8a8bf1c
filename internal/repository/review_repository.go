package repository

import (
	"context"

	"turismo-api/internal/domain/entity"
)

type ReviewRepository interface {
	// Create inserts the review and fills in its store-assigned ID.
	Create(ctx context.Context, r *entity.Review) error
	// GetByIDs fetches the reviews for the given ids. Unknown ids are
	// silently skipped; an empty id slice short-circuits to an empty
	// result without touching the store.
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.Review, error)
	// List retrieves every review, used by the unscoped query path.
	List(ctx context.Context) ([]*entity.Review, error)
	Delete(ctx context.Context, id int64) error
}

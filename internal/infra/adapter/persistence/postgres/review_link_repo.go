package postgres

import (
	"context"
	"fmt"

	"turismo-api/internal/domain/entity"
	"turismo-api/internal/repository"
)

// ReviewLinkRepo implements the junction index. Table and column names are
// interpolated from entity.Kind, which is a closed enum, so the SQL stays
// out of reach of caller-controlled input.
type ReviewLinkRepo struct {
	db Querier
}

func NewReviewLinkRepo(db Querier) repository.ReviewLinkRepository {
	return &ReviewLinkRepo{db: db}
}

func (repo *ReviewLinkRepo) Link(ctx context.Context, kind entity.Kind, venueID, reviewID int64) error {
	query := fmt.Sprintf(`
INSERT INTO %s (%s, review_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`, kind.JunctionTable(), kind.ForeignKey())
	if _, err := repo.db.ExecContext(ctx, query, venueID, reviewID); err != nil {
		return fmt.Errorf("Link: %w", err)
	}
	return nil
}

// Unlink removes the review's associations from every kind's junction table.
// No rows affected is not an error: an unassociated review is a valid state.
func (repo *ReviewLinkRepo) Unlink(ctx context.Context, reviewID int64) error {
	for _, kind := range entity.Kinds() {
		query := fmt.Sprintf(`DELETE FROM %s WHERE review_id = $1`, kind.JunctionTable())
		if _, err := repo.db.ExecContext(ctx, query, reviewID); err != nil {
			return fmt.Errorf("Unlink: %s: %w", kind.JunctionTable(), err)
		}
	}
	return nil
}

func (repo *ReviewLinkRepo) UnlinkVenue(ctx context.Context, kind entity.Kind, venueID int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, kind.JunctionTable(), kind.ForeignKey())
	if _, err := repo.db.ExecContext(ctx, query, venueID); err != nil {
		return fmt.Errorf("UnlinkVenue: %w", err)
	}
	return nil
}

func (repo *ReviewLinkRepo) ReviewIDsFor(ctx context.Context, kind entity.Kind, venueID int64) ([]int64, error) {
	query := fmt.Sprintf(`
SELECT review_id
FROM %s
WHERE %s = $1`, kind.JunctionTable(), kind.ForeignKey())

	rows, err := repo.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("ReviewIDsFor: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]int64, 0, 20)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ReviewIDsFor: Scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteDangling removes junction rows whose review or venue has been
// deleted out from under them.
func (repo *ReviewLinkRepo) DeleteDangling(ctx context.Context, kind entity.Kind) (int64, error) {
	query := fmt.Sprintf(`
DELETE FROM %[1]s
WHERE review_id NOT IN (SELECT id FROM reviews)
   OR %[2]s NOT IN (SELECT id FROM venues WHERE kind = $1)`,
		kind.JunctionTable(), kind.ForeignKey())

	res, err := repo.db.ExecContext(ctx, query, string(kind))
	if err != nil {
		return 0, fmt.Errorf("DeleteDangling: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

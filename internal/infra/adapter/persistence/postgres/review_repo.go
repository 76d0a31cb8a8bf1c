package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"turismo-api/internal/domain/entity"
	"turismo-api/internal/repository"
)

type ReviewRepo struct {
	db Querier
}

func NewReviewRepo(db Querier) repository.ReviewRepository {
	return &ReviewRepo{db: db}
}

func (repo *ReviewRepo) Create(ctx context.Context, r *entity.Review) error {
	const query = `
INSERT INTO reviews
       (rating, text, authored_on, author_id)
VALUES ($1, $2, $3, $4)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		r.Rating, r.Text, r.AuthoredOn, r.AuthorID,
	).Scan(&r.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// GetByIDs is the second step of the two-step association protocol. The
// placeholder list is built per id so the query stays parameterized without
// relying on driver-side array encoding.
func (repo *ReviewRepo) GetByIDs(ctx context.Context, ids []int64) ([]*entity.Review, error) {
	if len(ids) == 0 {
		return []*entity.Review{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`
SELECT id, rating, text, authored_on, author_id
FROM reviews
WHERE id IN (%s)`, strings.Join(placeholders, ", "))

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("GetByIDs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reviews := make([]*entity.Review, 0, len(ids))
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("GetByIDs: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func (repo *ReviewRepo) List(ctx context.Context) ([]*entity.Review, error) {
	const query = `
SELECT id, rating, text, authored_on, author_id
FROM reviews
ORDER BY id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reviews := make([]*entity.Review, 0, 100)
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func (repo *ReviewRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM reviews WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", sql.ErrNoRows)
	}
	return nil
}

func scanReview(rows *sql.Rows) (*entity.Review, error) {
	var r entity.Review
	var authorID sql.NullInt64
	if err := rows.Scan(&r.ID, &r.Rating, &r.Text, &r.AuthoredOn, &authorID); err != nil {
		return nil, fmt.Errorf("Scan: %w", err)
	}
	if authorID.Valid {
		r.AuthorID = &authorID.Int64
	}
	return &r, nil
}

// Package postgres implements the repository interfaces against the hosted
// PostgreSQL backend using database/sql over the pgx driver.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"turismo-api/internal/domain/entity"
	"turismo-api/internal/repository"
)

type VenueRepo struct {
	db Querier
}

func NewVenueRepo(db Querier) repository.VenueRepository {
	return &VenueRepo{db: db}
}

func (repo *VenueRepo) List(ctx context.Context, filter repository.VenueFilter) ([]*entity.Venue, error) {
	query := `
SELECT id, kind, name, category, description, schedule
FROM venues`
	args := make([]any, 0, 2)
	where := ""
	if filter.Kind != nil {
		args = append(args, string(*filter.Kind))
		where = fmt.Sprintf(" WHERE kind = $%d", len(args))
	}
	if filter.Text != "" {
		args = append(args, "%"+filter.Text+"%")
		clause := fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	query += where + " ORDER BY id DESC"

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	venues := make([]*entity.Venue, 0, 50)
	for rows.Next() {
		var v entity.Venue
		var description, schedule sql.NullString
		if err := rows.Scan(&v.ID, &v.Kind, &v.Name, &v.Category, &description, &schedule); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		v.Description = description.String
		v.Schedule = schedule.String
		venues = append(venues, &v)
	}
	return venues, rows.Err()
}

func (repo *VenueRepo) Get(ctx context.Context, id int64) (*entity.Venue, error) {
	const query = `
SELECT id, kind, name, category, description, schedule
FROM venues
WHERE id = $1
LIMIT 1`
	var v entity.Venue
	var description, schedule sql.NullString
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&v.ID, &v.Kind, &v.Name, &v.Category, &description, &schedule)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	v.Description = description.String
	v.Schedule = schedule.String
	return &v, nil
}

func (repo *VenueRepo) Create(ctx context.Context, v *entity.Venue) error {
	const query = `
INSERT INTO venues
       (kind, name, category, description, schedule)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		string(v.Kind), v.Name, v.Category, v.Description, v.Schedule,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *VenueRepo) Update(ctx context.Context, v *entity.Venue) error {
	const query = `
UPDATE venues SET
       name        = $1,
       category    = $2,
       description = $3,
       schedule    = $4
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		v.Name, v.Category, v.Description, v.Schedule, v.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *VenueRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM venues WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

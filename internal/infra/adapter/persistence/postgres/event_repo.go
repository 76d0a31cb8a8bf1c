package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"turismo-api/internal/domain/entity"
	"turismo-api/internal/repository"
)

type EventRepo struct {
	db Querier
}

func NewEventRepo(db Querier) repository.EventRepository {
	return &EventRepo{db: db}
}

const eventColumns = `
SELECT e.id, e.destination_id, e.name, e.event_type, e.starts_at,
       d.id, d.city, d.country
FROM events e
INNER JOIN destinations d ON e.destination_id = d.id`

func (repo *EventRepo) ListWithDestination(ctx context.Context) ([]repository.EventWithDestination, error) {
	query := eventColumns + `
ORDER BY e.starts_at ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListWithDestination: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectEvents(rows, "ListWithDestination")
}

func (repo *EventRepo) Search(ctx context.Context, q string) ([]repository.EventWithDestination, error) {
	query := eventColumns + `
WHERE e.name ILIKE $1
   OR e.event_type ILIKE $1
   OR d.city ILIKE $1
ORDER BY e.starts_at ASC`
	rows, err := repo.db.QueryContext(ctx, query, "%"+q+"%")
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectEvents(rows, "Search")
}

func collectEvents(rows *sql.Rows, op string) ([]repository.EventWithDestination, error) {
	result := make([]repository.EventWithDestination, 0, 50)
	for rows.Next() {
		var ev entity.Event
		var dest entity.Destination
		var eventType sql.NullString
		var startsAt sql.NullTime
		if err := rows.Scan(&ev.ID, &ev.DestinationID, &ev.Name, &eventType, &startsAt,
			&dest.ID, &dest.City, &dest.Country); err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		ev.EventType = eventType.String
		ev.StartsAt = startsAt.Time
		result = append(result, repository.EventWithDestination{
			Event:       &ev,
			Destination: &dest,
		})
	}
	return result, rows.Err()
}

package db

import (
	"database/sql"
)

// MigrateUp creates the canonical schema. Every table name here is the
// single canonical spelling; nothing outside this package and entity.Kind
// may introduce another.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS venues (
    id          SERIAL PRIMARY KEY,
    kind        VARCHAR(20) NOT NULL,
    name        TEXT NOT NULL,
    category    TEXT NOT NULL,
    description TEXT,
    schedule    TEXT
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS reviews (
    id          SERIAL PRIMARY KEY,
    rating      INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
    text        TEXT NOT NULL,
    authored_on DATE NOT NULL,
    author_id   INTEGER
)`); err != nil {
		return err
	}

	// One junction table per venue kind. The composite primary key is what
	// makes ReviewLinkRepo.Link idempotent: a second identical link hits
	// ON CONFLICT DO NOTHING instead of inserting a duplicate row.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS place_reviews (
    place_id  INTEGER NOT NULL,
    review_id INTEGER NOT NULL,
    PRIMARY KEY (place_id, review_id)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS restaurant_reviews (
    restaurant_id INTEGER NOT NULL,
    review_id     INTEGER NOT NULL,
    PRIMARY KEY (restaurant_id, review_id)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS destinations (
    id      SERIAL PRIMARY KEY,
    city    TEXT NOT NULL,
    country TEXT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS events (
    id             SERIAL PRIMARY KEY,
    destination_id INTEGER REFERENCES destinations(id),
    name           TEXT NOT NULL,
    event_type     TEXT,
    starts_at      DATE
)`); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_venues_kind ON venues(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_place_reviews_review_id ON place_reviews(review_id)`,
		`CREATE INDEX IF NOT EXISTS idx_restaurant_reviews_review_id ON restaurant_reviews(review_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_starts_at ON events(starts_at)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE listing filters. Errors are ignored: the
	// extension may already exist or the role may lack the privilege, and
	// the queries work without the indexes.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_venues_name_gin ON venues USING gin(name gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_venues_description_gin ON venues USING gin(description gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = db.Exec(idx)
	}

	return nil
}

package postgres

import (
	"context"
	"database/sql"
)

// Querier is the subset of *sql.DB the repositories use. It is also
// satisfied by circuitbreaker.DBCircuitBreaker, so callers choose whether
// store access goes through a breaker.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

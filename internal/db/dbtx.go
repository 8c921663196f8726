package db

import (
	"context"
	"database/sql"
)

// DBTX is the query surface shared by *sql.DB, *sql.Conn and *sql.Tx.
// Repositories accept it so tests can hand them a transaction or a pinned
// connection instead of the pool.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Conn)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

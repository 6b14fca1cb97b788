package database

import (
	"context"
	"database/sql"
)

// DB is the single access point to the relational store. Repositories depend
// on this interface rather than on a concrete driver, which also keeps them
// trivially fakeable in tests.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	// Exec returns the number of rows affected. Upsert-style repositories
	// rely on that count to tell insert from no-op.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Begin(ctx context.Context) (Tx, error)

	// SQLDB exposes a database/sql handle over the same pool for callers
	// that need one, like the migration runner.
	SQLDB() *sql.DB
}

type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}

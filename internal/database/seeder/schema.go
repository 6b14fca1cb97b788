package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

// EnsureTableColumns fails fast when the schema a seeder is about to write
// into does not carry the columns it expects, which beats a half-applied
// seed with opaque SQL errors.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	existing, err := tableColumns(ctx, db, table)
	if err != nil {
		return err
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}

func tableColumns(ctx context.Context, db database.DB, table string) (map[string]struct{}, error) {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out[c] = struct{}{}
	}
	return out, rows.Err()
}

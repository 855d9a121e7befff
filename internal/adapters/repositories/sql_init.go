package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitSchemaSQL(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		route_id INTEGER PRIMARY KEY,
		raw_geo TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		name TEXT NOT NULL,
		salesperson TEXT NOT NULL DEFAULT '',
		supervisor TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		visit_days TEXT NOT NULL DEFAULT ''
	);
	`

	createGeoErrorsQuery := `
	CREATE TABLE IF NOT EXISTS geo_errors (
		id BIGSERIAL PRIMARY KEY,
		raw_geo TEXT NOT NULL,
		reason TEXT NOT NULL
	);
	`

	createSearchLogQuery := `
	CREATE TABLE IF NOT EXISTS search_log (
		id BIGSERIAL PRIMARY KEY,
		searched_at TIMESTAMPTZ NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		k INTEGER NOT NULL,
		result_count INTEGER NOT NULL
	);
	`

	statements := []string{
		createRoutesQuery,
		createGeoErrorsQuery,
		createSearchLogQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

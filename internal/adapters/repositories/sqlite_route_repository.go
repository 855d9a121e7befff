package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"nearest-route-service/internal/domain"
)

// SQLite-backed implementation of the RouteRepository port.
type SqliteRouteRepository struct{ DB *sql.DB }

func NewSqliteRouteRepository(db *sql.DB) *SqliteRouteRepository {
	return &SqliteRouteRepository{DB: db}
}

// Return all routes stored in the database, in source row order.
func (s *SqliteRouteRepository) ListRoutes(ctx context.Context) ([]*domain.Route, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite route repository: DB is nil")
	}

	query := `
	SELECT
		route_id,
		raw_geo,
		lat,
		lon,
		name,
		salesperson,
		supervisor,
		status,
		visit_days
	FROM routes
	ORDER BY route_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]*domain.Route, 0, 64)
	for rows.Next() {
		var r domain.Route
		err := rows.Scan(
			&r.RouteID,
			&r.RawGeo,
			&r.Point.Lat,
			&r.Point.Lon,
			&r.Name,
			&r.Salesperson,
			&r.Supervisor,
			&r.Status,
			&r.VisitDays,
		)
		if err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		routes = append(routes, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

// Replace the stored dataset and its drop report in one transaction.
func (s *SqliteRouteRepository) ReplaceRoutes(
	ctx context.Context,
	routes []*domain.Route,
	dropped []*domain.GeoParseError,
) error {
	if s.DB == nil {
		return errors.New("sqlite route repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace routes: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM routes;`); err != nil {
		return fmt.Errorf("replace routes: clear routes table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM geo_errors;`); err != nil {
		return fmt.Errorf("replace routes: clear geo_errors table: %w", err)
	}

	insertRoute, err := tx.PrepareContext(ctx, `
	INSERT INTO routes (
		route_id,
		raw_geo,
		lat,
		lon,
		name,
		salesperson,
		supervisor,
		status,
		visit_days
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("replace routes: prepare route insert: %w", err)
	}
	defer insertRoute.Close()

	for _, r := range routes {
		_, err := insertRoute.ExecContext(
			ctx,
			r.RouteID, r.RawGeo, r.Point.Lat, r.Point.Lon,
			r.Name, r.Salesperson, r.Supervisor, r.Status, r.VisitDays,
		)
		if err != nil {
			return fmt.Errorf("replace routes: insert route_id=%d: %w", r.RouteID, err)
		}
	}

	insertErr, err := tx.PrepareContext(ctx, `
	INSERT INTO geo_errors (raw_geo, reason)
	VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("replace routes: prepare error insert: %w", err)
	}
	defer insertErr.Close()

	for _, d := range dropped {
		if _, err := insertErr.ExecContext(ctx, d.Raw, d.Reason); err != nil {
			return fmt.Errorf("replace routes: insert geo error raw=%q: %w", d.Raw, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace routes: commit tx: %w", err)
	}

	return nil
}

// Return the rows dropped by the most recent import.
func (s *SqliteRouteRepository) ListGeoErrors(ctx context.Context) ([]*domain.GeoParseError, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite route repository: DB is nil")
	}

	query := `
	SELECT
		raw_geo,
		reason
	FROM geo_errors
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list geo errors: query geo_errors table: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.GeoParseError, 0, 16)
	for rows.Next() {
		var e domain.GeoParseError
		if err := rows.Scan(&e.Raw, &e.Reason); err != nil {
			return nil, fmt.Errorf("list geo errors: scan row: %w", err)
		}
		out = append(out, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list geo errors: row iteration: %w", err)
	}

	return out, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"nearest-route-service/internal/domain"
	"nearest-route-service/internal/platform/obs"
)

// SQLRouteRepository is the Postgres-backed implementation of the
// RouteRepository port ($n placeholders, upsert via ON CONFLICT).
type SQLRouteRepository struct{ DB *sql.DB }

func NewSQLRouteRepository(db *sql.DB) *SQLRouteRepository {
	return &SQLRouteRepository{DB: db}
}

// Return all routes stored in the database, in source row order.
func (s *SQLRouteRepository) ListRoutes(ctx context.Context) (_ []*domain.Route, err error) {
	defer obs.Time(ctx, "routes.repo.ListRoutes")(&err)

	if s.DB == nil {
		return nil, errors.New("sql route repository: DB is nil")
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
func (s *SQLRouteRepository) ReplaceRoutes(
	ctx context.Context,
	routes []*domain.Route,
	dropped []*domain.GeoParseError,
) (err error) {
	defer obs.Time(ctx, "routes.repo.ReplaceRoutes")(&err)

	if s.DB == nil {
		return errors.New("sql route repository: DB is nil")
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

	insertRouteQuery := `
	INSERT INTO routes (
		route_id, raw_geo, lat, lon,
		name, salesperson, supervisor, status, visit_days
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (route_id) DO UPDATE
	SET raw_geo = EXCLUDED.raw_geo,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		name = EXCLUDED.name,
		salesperson = EXCLUDED.salesperson,
		supervisor = EXCLUDED.supervisor,
		status = EXCLUDED.status,
		visit_days = EXCLUDED.visit_days;
	`
	for _, r := range routes {
		_, err := tx.ExecContext(
			ctx,
			insertRouteQuery,
			r.RouteID, r.RawGeo, r.Point.Lat, r.Point.Lon,
			r.Name, r.Salesperson, r.Supervisor, r.Status, r.VisitDays,
		)
		if err != nil {
			return fmt.Errorf("replace routes: insert route_id=%d: %w", r.RouteID, err)
		}
	}

	insertErrQuery := `
	INSERT INTO geo_errors (raw_geo, reason)
	VALUES ($1, $2);
	`
	for _, d := range dropped {
		if _, err := tx.ExecContext(ctx, insertErrQuery, d.Raw, d.Reason); err != nil {
			return fmt.Errorf("replace routes: insert geo error raw=%q: %w", d.Raw, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace routes: commit tx: %w", err)
	}

	return nil
}

// Return the rows dropped by the most recent import.
func (s *SQLRouteRepository) ListGeoErrors(ctx context.Context) (_ []*domain.GeoParseError, err error) {
	defer obs.Time(ctx, "routes.repo.ListGeoErrors")(&err)

	if s.DB == nil {
		return nil, errors.New("sql route repository: DB is nil")
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

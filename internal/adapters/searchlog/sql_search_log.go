package searchlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"nearest-route-service/internal/domain"
	"nearest-route-service/internal/platform/obs"
	"time"
)

// SQLSearchLog is the Postgres-backed implementation of the SearchLogger port.
type SQLSearchLog struct{ DB *sql.DB }

func NewSQLSearchLog(db *sql.DB) *SQLSearchLog {
	return &SQLSearchLog{DB: db}
}

func (s *SQLSearchLog) LogSearch(
	ctx context.Context,
	at time.Time,
	target domain.GeoPoint,
	k int,
	resultCount int,
) (err error) {
	defer obs.Time(ctx, "searchlog.LogSearch")(&err)

	if s.DB == nil {
		return errors.New("search log: DB is nil")
	}

	query := `
	INSERT INTO search_log (searched_at, lat, lon, k, result_count)
	VALUES ($1, $2, $3, $4, $5);
	`
	_, err = s.DB.ExecContext(ctx, query, at.UTC(), target.Lat, target.Lon, k, resultCount)
	if err != nil {
		return fmt.Errorf("log search: insert search_log row: %w", err)
	}

	return nil
}

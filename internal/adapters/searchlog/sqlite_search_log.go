package searchlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"nearest-route-service/internal/domain"
	"time"
)

// SQLite-backed implementation of the SearchLogger port. Append-only;
// never read on the query path, so it cannot turn into a result cache.
type SqliteSearchLog struct{ DB *sql.DB }

func NewSqliteSearchLog(db *sql.DB) *SqliteSearchLog {
	return &SqliteSearchLog{DB: db}
}

func (s *SqliteSearchLog) LogSearch(
	ctx context.Context,
	at time.Time,
	target domain.GeoPoint,
	k int,
	resultCount int,
) error {
	if s.DB == nil {
		return errors.New("search log: DB is nil")
	}

	query := `
	INSERT INTO search_log (searched_at, lat, lon, k, result_count)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err := s.DB.ExecContext(
		ctx,
		query,
		at.UTC().Format(time.RFC3339),
		target.Lat, target.Lon, k, resultCount,
	)
	if err != nil {
		return fmt.Errorf("log search: insert search_log row: %w", err)
	}

	return nil
}

package ports

import (
	"context"
	"nearest-route-service/internal/domain"
	"time"
)

// Port: an append-only audit trail of nearest-route queries.
// It is a log, not a cache; every query is still computed fresh.
type SearchLogger interface {
	LogSearch(ctx context.Context, at time.Time, target domain.GeoPoint, k int, resultCount int) error
}

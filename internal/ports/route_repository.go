package ports

import (
	"context"
	"nearest-route-service/internal/domain"
)

// Port: a boundary for storing and retrieving Route entities.
type RouteRepository interface {
	// Retrieve all routes with valid coordinates, in source row order.
	ListRoutes(ctx context.Context) ([]*domain.Route, error)

	// Replace the stored dataset with a freshly imported one, recording the
	// rows dropped during coordinate parsing. The swap is atomic: readers
	// never observe a half-imported dataset.
	ReplaceRoutes(ctx context.Context, routes []*domain.Route, dropped []*domain.GeoParseError) error

	// Retrieve the rows dropped by the most recent import.
	ListGeoErrors(ctx context.Context) ([]*domain.GeoParseError, error)
}

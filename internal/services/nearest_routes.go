package services

import (
	"math"
	"nearest-route-service/internal/domain"
	"slices"
)

// NearestRoutes ranks routes by great-circle distance from the target and
// returns the k closest.
//
// Records whose distance is undefined (non-finite coordinates) are dropped.
// The sort is stable: on exact distance ties, original input order is kept,
// so downstream display indices stay deterministic for identical input.
// Output length is min(k, valid records); fewer than k valid records is not
// an error. The input slice is never mutated, so repeated calls with
// different targets over the same records are safe, including concurrently.
func NearestRoutes(target domain.GeoPoint, routes []*domain.Route, k int) []domain.RouteDistance {
	if k < 0 {
		k = 0
	}

	ranked := make([]domain.RouteDistance, 0, len(routes))
	for _, r := range routes {
		d := HaversineKm(target, r.Point)
		if math.IsNaN(d) {
			continue
		}
		ranked = append(ranked, domain.RouteDistance{Route: r, DistanceKm: d})
	}

	slices.SortStableFunc(ranked, func(a, b domain.RouteDistance) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		}
		return 0
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

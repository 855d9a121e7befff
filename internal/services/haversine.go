package services

import (
	"math"
	"nearest-route-service/internal/domain"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in
// kilometers on an idealized spherical Earth.
//
// Non-finite input yields NaN, the "undefined distance" sentinel. NaN must
// never participate in an ordering; the ranker drops such records.
func HaversineKm(a, b domain.GeoPoint) float64 {
	if !a.IsFinite() || !b.IsFinite() {
		return math.NaN()
	}
	if a == b {
		return 0
	}

	dlat := radians(b.Lat - a.Lat)
	dlon := radians(b.Lon - a.Lon)

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dlon/2)*math.Sin(dlon/2)

	// Rounding can push h just outside [0,1] for near-identical or
	// near-antipodal points, which would take Sqrt out of its domain.
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

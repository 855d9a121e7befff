package domain

import "math"

// Immutable geographic coordinates (latitude, longitude) in decimal degrees.
// The core does not clamp components to [-90,90]/[-180,180]: out-of-range
// values stay representable and are only rejected where finiteness matters.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// IsFinite reports whether both components are real numbers
// (neither NaN nor infinite).
func (p GeoPoint) IsFinite() bool {
	return !math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0) &&
		!math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0)
}

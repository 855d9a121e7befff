package domain

// Represents a single sales route record from the source dataset.
// The coordinate pair is derived once, at import time, from the raw GEO
// field. All remaining fields are opaque metadata: the ranking core never
// inspects them, it only carries them through to the output unchanged.
type Route struct {
	RouteID     int
	RawGeo      string
	Point       GeoPoint
	Name        string
	Salesperson string
	Supervisor  string
	Status      string
	VisitDays   string
}

// A route paired with its great-circle distance from a query target,
// in kilometers. Produced by the ranker; immutable result data.
type RouteDistance struct {
	Route      *Route
	DistanceKm float64
}

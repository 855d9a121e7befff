package domain

import "fmt"

// GeoParseError records one raw GEO field that could not be turned into a
// coordinate pair. It is non-fatal: the row is dropped from ranking and the
// error is kept so callers can surface the count and reasons for drops.
type GeoParseError struct {
	Raw    string
	Reason string
}

func (e *GeoParseError) Error() string {
	return fmt.Sprintf("parse coordinate %q: %s", e.Raw, e.Reason)
}

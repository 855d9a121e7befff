package services

import (
	"errors"
	"nearest-route-service/internal/domain"
)

// One raw row from the source dataset, before coordinate parsing.
// Loaders (Excel, JSON seed) produce these; only Geo is interpreted here.
type RawRouteRow struct {
	Geo         string
	Name        string
	Salesperson string
	Supervisor  string
	Status      string
	VisitDays   string
}

// BuildRoutes parses the GEO field of every raw row, row-wise and
// independently. Rows whose field cannot be parsed are dropped and reported;
// a parse failure never aborts the batch. RouteIDs follow source row order
// (1-based), so dropped rows leave gaps that point back at the dataset.
func BuildRoutes(rows []RawRouteRow) ([]*domain.Route, []*domain.GeoParseError) {
	routes := make([]*domain.Route, 0, len(rows))
	var dropped []*domain.GeoParseError

	for i, row := range rows {
		point, err := ParseCoordinate(row.Geo)
		if err != nil {
			var pe *domain.GeoParseError
			if !errors.As(err, &pe) {
				pe = &domain.GeoParseError{Raw: row.Geo, Reason: err.Error()}
			}
			dropped = append(dropped, pe)
			continue
		}

		routes = append(routes, &domain.Route{
			RouteID:     i + 1,
			RawGeo:      row.Geo,
			Point:       point,
			Name:        row.Name,
			Salesperson: row.Salesperson,
			Supervisor:  row.Supervisor,
			Status:      row.Status,
			VisitDays:   row.VisitDays,
		})
	}

	return routes, dropped
}

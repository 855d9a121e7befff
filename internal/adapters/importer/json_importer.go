package importer

import (
	"encoding/json"
	"fmt"
	"nearest-route-service/internal/services"
	"os"
)

type routeSeed struct {
	Geo         string `json:"geo"`
	Name        string `json:"name"`
	Salesperson string `json:"salesperson"`
	Supervisor  string `json:"supervisor"`
	Status      string `json:"status"`
	VisitDays   string `json:"visit_days"`
}

// ReadSeed loads raw route rows from a JSON seed file (fixtures, demos).
func ReadSeed(path string) ([]services.RawRouteRow, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: read %q: %w", path, err)
	}

	var seeds []routeSeed
	if err := json.Unmarshal(bytes, &seeds); err != nil {
		return nil, fmt.Errorf("read seed: parse json: %w", err)
	}

	out := make([]services.RawRouteRow, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, services.RawRouteRow{
			Geo:         s.Geo,
			Name:        s.Name,
			Salesperson: s.Salesperson,
			Supervisor:  s.Supervisor,
			Status:      s.Status,
			VisitDays:   s.VisitDays,
		})
	}

	return out, nil
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"nearest-route-service/internal/api/dto"
	"nearest-route-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func toRouteResponse(route *domain.Route) dto.RouteResponse {
	return dto.RouteResponse{
		RouteID:     route.RouteID,
		Geo:         route.RawGeo,
		Latitude:    route.Point.Lat,
		Longitude:   route.Point.Lon,
		Name:        route.Name,
		Salesperson: route.Salesperson,
		Supervisor:  route.Supervisor,
		Status:      route.Status,
		VisitDays:   route.VisitDays,
	}
}

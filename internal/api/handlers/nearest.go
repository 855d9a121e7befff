package handlers

import (
	"encoding/json"
	"io"
	"log"
	"math"
	"net/http"
	"nearest-route-service/internal/api/dto"
	"nearest-route-service/internal/domain"
	"nearest-route-service/internal/ports"
	"nearest-route-service/internal/services"
	"strconv"
	"strings"
	"time"
)

type NearestHandler struct {
	Repo     ports.RouteRepository
	Searches ports.SearchLogger
	DefaultK int
}

// Nearest ranks the stored routes by distance from the requested target and
// returns the k closest. The target arrives as two decimal strings; parsing
// and validating them is this boundary's job, not the core's. An empty match
// list is a valid answer, never an error.
func (h *NearestHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.NearestRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	lat, ok := parseTargetFloat(req.Latitude)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "latitude must be a decimal number")
		return
	}
	lon, ok := parseTargetFloat(req.Longitude)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "longitude must be a decimal number")
		return
	}

	k := req.K
	if k == 0 {
		k = h.DefaultK
	}
	if k < 1 || k > 50 {
		writeError(w, r, http.StatusBadRequest, "k must be between 1 and 50")
		return
	}

	routes, err := h.Repo.ListRoutes(r.Context())
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	dropped, err := h.Repo.ListGeoErrors(r.Context())
	if err != nil {
		log.Printf("list geo errors failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	target := domain.GeoPoint{Lat: lat, Lon: lon}
	matches := services.NearestRoutes(target, routes, k)

	// Audit only; a failed write never fails the query.
	if h.Searches != nil {
		if err := h.Searches.LogSearch(r.Context(), time.Now(), target, k, len(matches)); err != nil {
			log.Printf("log search failed: %v", err)
		}
	}

	res := dto.NearestResponse{
		TargetLatitude:  lat,
		TargetLongitude: lon,
		K:               k,
		Matches:         make([]dto.NearestMatchResponse, 0, len(matches)),
		DroppedRows:     len(dropped),
	}
	for _, m := range matches {
		res.Matches = append(res.Matches, dto.NearestMatchResponse{
			RouteResponse: toRouteResponse(m.Route),
			DistanceKm:    m.DistanceKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func parseTargetFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

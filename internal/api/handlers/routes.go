package handlers

import (
	"log"
	"net/http"
	"nearest-route-service/internal/api/dto"
	"nearest-route-service/internal/ports"
)

// RouteHandler exposes read-only route dataset endpoints.
type RouteHandler struct {
	Repo ports.RouteRepository
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	routes, err := h.Repo.ListRoutes(r.Context())
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{
		Routes: make([]dto.RouteResponse, 0, len(routes)),
	}
	for _, route := range routes {
		res.Routes = append(res.Routes, toRouteResponse(route))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// ListErrors reports the rows dropped during the last import: the raw GEO
// string and the reason each one failed to parse.
func (h *RouteHandler) ListErrors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	dropped, err := h.Repo.ListGeoErrors(r.Context())
	if err != nil {
		log.Printf("list geo errors failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListGeoErrorsResponse{
		Count:  len(dropped),
		Errors: make([]dto.GeoErrorResponse, 0, len(dropped)),
	}
	for _, d := range dropped {
		res.Errors = append(res.Errors, dto.GeoErrorResponse{Geo: d.Raw, Reason: d.Reason})
	}

	writeJSON(w, r, http.StatusOK, res)
}

package api

import (
	"net/http"
	"nearest-route-service/internal/api/handlers"
	"nearest-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.RouteRepository, searches ports.SearchLogger, defaultK int) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Repo: repo}
	nearestHandler := &handlers.NearestHandler{
		Repo:     repo,
		Searches: searches,
		DefaultK: defaultK,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.List)
	mux.HandleFunc("/routes/errors", routeHandler.ListErrors)
	mux.HandleFunc("/nearest", nearestHandler.Nearest)

	return requestIDMiddleware(loggingMiddleware(mux))
}

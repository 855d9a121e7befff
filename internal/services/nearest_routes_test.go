package services

import (
	"math"
	"nearest-route-service/internal/domain"
	"testing"
)

// Routes placed on the equator at increasing longitude offsets from the
// target, so distance order is exactly longitude order.
func routeAt(id int, lon float64) *domain.Route {
	return &domain.Route{
		RouteID: id,
		Point:   domain.GeoPoint{Lat: 0, Lon: lon},
	}
}

func TestNearestRoutesTopKOrdering(t *testing.T) {
	target := domain.GeoPoint{Lat: 0, Lon: 0}

	// Input deliberately out of distance order.
	routes := []*domain.Route{
		routeAt(1, 0.05),
		routeAt(2, 0.01),
		routeAt(3, 0.03),
		routeAt(4, 0.02),
		routeAt(5, 0.04),
	}

	got := NearestRoutes(target, routes, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}

	wantIDs := []int{2, 4, 3}
	for i, want := range wantIDs {
		if got[i].Route.RouteID != want {
			t.Fatalf("result[%d] = route %d, want route %d", i, got[i].Route.RouteID, want)
		}
	}

	for i := 1; i < len(got); i++ {
		if got[i].DistanceKm < got[i-1].DistanceKm {
			t.Fatalf("distances not non-decreasing: %v then %v", got[i-1].DistanceKm, got[i].DistanceKm)
		}
	}
}

func TestNearestRoutesKExceedsAvailable(t *testing.T) {
	target := domain.GeoPoint{Lat: 0, Lon: 0}
	routes := []*domain.Route{
		routeAt(1, 0.01),
		routeAt(2, 0.02),
	}

	got := NearestRoutes(target, routes, 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
}

func TestNearestRoutesTieStability(t *testing.T) {
	target := domain.GeoPoint{Lat: 0, Lon: 0}

	// Routes 2 and 3 sit at the exact same point: identical distance.
	routes := []*domain.Route{
		routeAt(1, 0.05),
		routeAt(2, 0.02),
		routeAt(3, 0.02),
		routeAt(4, 0.01),
	}

	got := NearestRoutes(target, routes, 4)
	if len(got) != 4 {
		t.Fatalf("expected 4 results, got %d", len(got))
	}

	wantIDs := []int{4, 2, 3, 1}
	for i, want := range wantIDs {
		if got[i].Route.RouteID != want {
			t.Fatalf("result[%d] = route %d, want route %d", i, got[i].Route.RouteID, want)
		}
	}
}

func TestNearestRoutesDropsUndefinedDistance(t *testing.T) {
	target := domain.GeoPoint{Lat: 0, Lon: 0}
	routes := []*domain.Route{
		routeAt(1, 0.02),
		{RouteID: 2, Point: domain.GeoPoint{Lat: math.NaN(), Lon: 0.01}},
		{RouteID: 3, Point: domain.GeoPoint{Lat: 0, Lon: math.Inf(1)}},
		routeAt(4, 0.01),
	}

	got := NearestRoutes(target, routes, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Route.RouteID != 4 || got[1].Route.RouteID != 1 {
		t.Fatalf("got routes %d, %d; want 4, 1", got[0].Route.RouteID, got[1].Route.RouteID)
	}
}

func TestNearestRoutesDoesNotMutateInput(t *testing.T) {
	target := domain.GeoPoint{Lat: 0, Lon: 0}
	routes := []*domain.Route{
		routeAt(1, 0.05),
		routeAt(2, 0.01),
		routeAt(3, 0.03),
	}

	NearestRoutes(target, routes, 2)

	for i, want := range []int{1, 2, 3} {
		if routes[i].RouteID != want {
			t.Fatalf("input slice mutated: routes[%d] = %d, want %d", i, routes[i].RouteID, want)
		}
	}
}

func TestNearestRoutesEmptyAndZeroK(t *testing.T) {
	target := domain.GeoPoint{Lat: 0, Lon: 0}

	if got := NearestRoutes(target, nil, 5); len(got) != 0 {
		t.Fatalf("expected empty result for no records, got %d", len(got))
	}

	routes := []*domain.Route{routeAt(1, 0.01)}
	if got := NearestRoutes(target, routes, 0); len(got) != 0 {
		t.Fatalf("expected empty result for k=0, got %d", len(got))
	}
	if got := NearestRoutes(target, routes, -3); len(got) != 0 {
		t.Fatalf("expected empty result for negative k, got %d", len(got))
	}
}

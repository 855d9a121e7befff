package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nearest-route-service/internal/api/dto"
	"nearest-route-service/internal/domain"
)

type stubRepo struct {
	routes  []*domain.Route
	dropped []*domain.GeoParseError
}

func (s *stubRepo) ListRoutes(ctx context.Context) ([]*domain.Route, error) {
	return s.routes, nil
}

func (s *stubRepo) ReplaceRoutes(ctx context.Context, routes []*domain.Route, dropped []*domain.GeoParseError) error {
	return nil
}

func (s *stubRepo) ListGeoErrors(ctx context.Context) ([]*domain.GeoParseError, error) {
	return s.dropped, nil
}

type stubSearchLog struct {
	calls int
}

func (s *stubSearchLog) LogSearch(ctx context.Context, at time.Time, target domain.GeoPoint, k int, resultCount int) error {
	s.calls++
	return nil
}

func TestNearestHandlerRanksAndReports(t *testing.T) {
	repo := &stubRepo{
		routes: []*domain.Route{
			{RouteID: 1, Name: "Far", Point: domain.GeoPoint{Lat: 0, Lon: 0.05}},
			{RouteID: 2, Name: "Near", Point: domain.GeoPoint{Lat: 0, Lon: 0.01}},
			{RouteID: 3, Name: "Mid", Point: domain.GeoPoint{Lat: 0, Lon: 0.03}},
		},
		dropped: []*domain.GeoParseError{{Raw: "garbage", Reason: "no recognizable delimiter"}},
	}
	searches := &stubSearchLog{}
	h := &NearestHandler{Repo: repo, Searches: searches, DefaultK: 5}

	body := `{"latitude": "0", "longitude": "0", "k": 2}`
	req := httptest.NewRequest(http.MethodPost, "/nearest", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Nearest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res dto.NearestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Matches))
	}
	if res.Matches[0].RouteID != 2 || res.Matches[1].RouteID != 3 {
		t.Fatalf("matches = %d, %d; want 2, 3", res.Matches[0].RouteID, res.Matches[1].RouteID)
	}
	if res.Matches[0].DistanceKm >= res.Matches[1].DistanceKm {
		t.Fatalf("distances not ascending: %v, %v", res.Matches[0].DistanceKm, res.Matches[1].DistanceKm)
	}
	if res.DroppedRows != 1 {
		t.Fatalf("dropped_rows = %d, want 1", res.DroppedRows)
	}
	if searches.calls != 1 {
		t.Fatalf("search log calls = %d, want 1", searches.calls)
	}
}

func TestNearestHandlerValidatesTarget(t *testing.T) {
	h := &NearestHandler{Repo: &stubRepo{}, DefaultK: 5}

	bad := []string{
		`{"latitude": "abc", "longitude": "0"}`,
		`{"latitude": "0", "longitude": ""}`,
		`{"latitude": "NaN", "longitude": "0"}`,
		`{"latitude": "0", "longitude": "0", "k": 51}`,
		`{"latitude": "0", "longitude": "0", "k": -1}`,
	}

	for _, body := range bad {
		req := httptest.NewRequest(http.MethodPost, "/nearest", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Nearest(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestNearestHandlerEmptyDatasetIsNotAnError(t *testing.T) {
	h := &NearestHandler{Repo: &stubRepo{}, DefaultK: 5}

	req := httptest.NewRequest(http.MethodPost, "/nearest", strings.NewReader(`{"latitude": "-17.8572415", "longitude": "-63.1895311"}`))
	rec := httptest.NewRecorder()

	h.Nearest(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.NearestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(res.Matches))
	}
	if res.K != 5 {
		t.Fatalf("k = %d, want default 5", res.K)
	}
}

func TestNearestHandlerMethodGuard(t *testing.T) {
	h := &NearestHandler{Repo: &stubRepo{}, DefaultK: 5}

	req := httptest.NewRequest(http.MethodGet, "/nearest", nil)
	rec := httptest.NewRecorder()

	h.Nearest(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

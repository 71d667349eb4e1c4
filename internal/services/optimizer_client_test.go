package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"gujtrip/pkg/utils"
)

func newTestClient(serverURL string, cache RouteCache) *OptimizerClient {
	return &OptimizerClient{
		HTTP:       &http.Client{Timeout: 5 * time.Second},
		BaseURL:    serverURL,
		Cache:      cache,
		DefaultTTL: time.Minute,
		Logger:     zap.NewNop(),
	}
}

func sampleRequest() OptimizeRouteRequest {
	return OptimizeRouteRequest{
		Places: []Waypoint{
			{Name: "Gandhi Ashram", Latitude: 23.06, Longitude: 72.6, Duration: 60},
		},
		InitialPoint: Waypoint{Name: "start", Latitude: 22.28, Longitude: 70.77},
	}
}

func TestOptimizeRoute(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/optimize-route" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"path":                []string{"start", "Gandhi Ashram"},
			"coordinates":         [][]float64{{22.28, 70.77}, {23.06, 72.6}},
			"geometry":            [][]float64{{70.77, 22.28}, {72.6, 23.06}},
			"round_trip_distance": 210.4,
			"round_trip_time":     500.0,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	route, err := client.OptimizeRoute(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := gotBody["places"]; !ok {
		t.Fatal("request body missing places")
	}
	if _, ok := gotBody["initial_point"]; !ok {
		t.Fatal("request body missing initial_point")
	}

	if len(route.Path) != 2 || route.Path[0] != "start" {
		t.Fatalf("unexpected path: %v", route.Path)
	}
	if route.RoundTripTime != 500 {
		t.Fatalf("round trip time = %v, want 500", route.RoundTripTime)
	}
}

func TestOptimizeRouteErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "Too many locations (max 8 supported)"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.OptimizeRoute(context.Background(), sampleRequest())

	var optErr *utils.OptimizerError
	if !errors.As(err, &optErr) {
		t.Fatalf("error = %v, want OptimizerError", err)
	}
	if optErr.Message != "Too many locations (max 8 supported)" {
		t.Fatalf("upstream message not preserved: %q", optErr.Message)
	}
}

func TestOptimizeRouteBadStatusWithErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "No places provided"})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.OptimizeRoute(context.Background(), sampleRequest())

	var optErr *utils.OptimizerError
	if !errors.As(err, &optErr) {
		t.Fatalf("error = %v, want OptimizerError", err)
	}
}

func TestOptimizeRouteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.OptimizeRoute(context.Background(), sampleRequest())
	if !errors.Is(err, utils.ErrOptimizerUnreachable) {
		t.Fatalf("error = %v, want ErrOptimizerUnreachable", err)
	}
}

func TestOptimizeRouteUnreachable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1", nil)
	_, err := client.OptimizeRoute(context.Background(), sampleRequest())
	if !errors.Is(err, utils.ErrOptimizerUnreachable) {
		t.Fatalf("error = %v, want ErrOptimizerUnreachable", err)
	}
}

func TestOptimizeRouteRejectsMismatchedRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"path":            []string{"start", "Gandhi Ashram"},
			"coordinates":     [][]float64{{22.28, 70.77}},
			"round_trip_time": 500.0,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.OptimizeRoute(context.Background(), sampleRequest())
	if !errors.Is(err, utils.ErrMalformedRoute) {
		t.Fatalf("error = %v, want ErrMalformedRoute", err)
	}
}

func TestOptimizeRouteContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(server.URL, nil)
	_, err := client.OptimizeRoute(ctx, sampleRequest())
	if err == nil {
		t.Fatal("expected an error after cancellation")
	}
}

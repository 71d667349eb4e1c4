package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"gujtrip/pkg/utils"
)

// Waypoint is a named stop with an expected visit duration, in the shape the
// optimizer wire format uses.
type Waypoint struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Duration  int     `json:"duration"`
}

type OptimizeRouteRequest struct {
	Places       []Waypoint `json:"places"`
	InitialPoint Waypoint   `json:"initial_point"`
}

// OptimizedRoute is the optimizer's answer. Coordinate order differs by
// field and must stay that way: Coordinates are [lat, lng] per named stop,
// Geometry is a [lng, lat] polyline (GeoJSON order). Do not normalize.
type OptimizedRoute struct {
	Path              []string        `json:"path"`
	Coordinates       [][]float64     `json:"coordinates"`
	Geometry          [][]float64     `json:"geometry"`
	RoundTripDistance float64         `json:"round_trip_distance"`
	RoundTripTime     float64         `json:"round_trip_time"`
	OutwardDistance   float64         `json:"outward_distance"`
	OutwardTime       float64         `json:"outward_time"`
	TotalVisitTime    float64         `json:"total_visit_time"`
	Waypoints         []RouteWaypoint `json:"waypoints"`
}

type RouteWaypoint struct {
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"` // [lat, lng]
	Duration    int       `json:"duration"`
}

type RouteOptimizerService interface {
	OptimizeRoute(ctx context.Context, req OptimizeRouteRequest) (*OptimizedRoute, error)
}

type OptimizerClient struct {
	HTTP       *http.Client
	BaseURL    string
	Cache      RouteCache
	DefaultTTL time.Duration
	Logger     *zap.Logger
}

func NewOptimizerClient(cache RouteCache, logger *zap.Logger) *OptimizerClient {
	baseURL := os.Getenv("OPTIMIZER_URL")
	if baseURL == "" {
		panic("OPTIMIZER_URL is empty")
	}
	return &OptimizerClient{
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		BaseURL:    baseURL,
		Cache:      cache,
		DefaultTTL: 6 * time.Hour,
		Logger:     logger,
	}
}

// optimizerErrorBody matches both the {error} and {error, details} shapes
// the backend emits.
type optimizerErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (c *OptimizerClient) OptimizeRoute(ctx context.Context, req OptimizeRouteRequest) (*OptimizedRoute, error) {
	key := requestDigest(req)

	if c.Cache != nil {
		if route, ok := c.Cache.Get(ctx, key); ok {
			c.Logger.Debug("optimizer cache hit", zap.String("key", key))
			return route, nil
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal optimize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/optimize-route", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build optimize request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrOptimizerUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var errBody optimizerErrorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return nil, &utils.OptimizerError{Message: errBody.Error}
		}
		return nil, fmt.Errorf("%w: status %s", utils.ErrOptimizerUnreachable, resp.Status)
	}

	// The 200 body is either a route or an {error} payload; decode into a
	// superset and decide afterwards.
	var payload struct {
		OptimizedRoute
		optimizerErrorBody
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", utils.ErrMalformedRoute, err)
	}
	if payload.Error != "" {
		return nil, &utils.OptimizerError{Message: payload.Error}
	}

	route := payload.OptimizedRoute
	if err := validateRoute(&route); err != nil {
		return nil, err
	}

	if c.Cache != nil {
		c.Cache.Set(ctx, key, &route, c.DefaultTTL)
	}
	return &route, nil
}

// validateRoute enforces the response schema instead of trusting field
// presence: a named path entry without a matching coordinate pair cannot be
// rendered.
func validateRoute(route *OptimizedRoute) error {
	if len(route.Path) == 0 {
		return fmt.Errorf("%w: empty path", utils.ErrMalformedRoute)
	}
	if len(route.Path) != len(route.Coordinates) {
		return fmt.Errorf("%w: %d path entries, %d coordinate pairs",
			utils.ErrMalformedRoute, len(route.Path), len(route.Coordinates))
	}
	for i, pair := range route.Coordinates {
		if len(pair) != 2 {
			return fmt.Errorf("%w: coordinate %d has %d components", utils.ErrMalformedRoute, i, len(pair))
		}
	}
	return nil
}

// requestDigest keys the route cache by the canonical JSON of the request:
// the same places in the same order with the same origin hit the same entry.
func requestDigest(req OptimizeRouteRequest) string {
	raw, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return "route:" + hex.EncodeToString(sum[:])
}

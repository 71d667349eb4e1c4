package services

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gujtrip/internal/models/request_models"
	"gujtrip/pkg/utils"
)

// Default visit durations in minutes. The plan form suggests a longer stay
// than a quick map selection does.
const (
	DefaultVisitMinutes  = 30
	PlanFormVisitMinutes = 60
)

// DefaultOrigin is the fixed start point every round trip anchors to unless
// the caller picks their own "from" location (Rajkot).
var DefaultOrigin = Waypoint{
	Name:      "start",
	Latitude:  22.2824,
	Longitude: 70.7678,
	Duration:  0,
}

// BuildWaypoints shapes raw place selections into optimizer waypoints.
// Coordinates stored upstream are untrustworthy: strings, nulls and garbage
// all coerce to 0 rather than failing the whole itinerary. That data-quality
// gap is inherited from the place catalog and deliberately not "fixed" here.
func BuildWaypoints(raw []request_models.RawPlace, defaultDuration int) []Waypoint {
	waypoints := make([]Waypoint, 0, len(raw))
	for _, p := range raw {
		waypoints = append(waypoints, Waypoint{
			Name:      p.Name,
			Latitude:  coerceCoordinate(p.Latitude),
			Longitude: coerceCoordinate(p.Longitude),
			Duration:  coerceMinutes(p.Duration, defaultDuration),
		})
	}
	return waypoints
}

// BuildRequest produces the exact payload the optimizer expects. An empty
// waypoint list is refused before any network call is made.
func BuildRequest(waypoints []Waypoint, origin Waypoint) (OptimizeRouteRequest, error) {
	if len(waypoints) == 0 {
		return OptimizeRouteRequest{}, utils.ErrEmptyItinerary
	}
	return OptimizeRouteRequest{
		Places:       waypoints,
		InitialPoint: origin,
	}, nil
}

// coerceCoordinate accepts the value shapes seen in stored plans: JSON
// numbers, numeric strings, json.Number, or nothing. Anything else, and
// anything non-finite, becomes 0.
func coerceCoordinate(v interface{}) float64 {
	f := coerceFloat(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func coerceFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceMinutes(v interface{}, fallback int) int {
	switch t := v.(type) {
	case float64:
		if t > 0 {
			return int(t)
		}
	case int:
		if t > 0 {
			return t
		}
	case int64:
		if t > 0 {
			return int(t)
		}
	case json.Number:
		if n, err := t.Int64(); err == nil && n > 0 {
			return int(n)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

package services

import (
	"gujtrip/internal/models/response_models"
	"gujtrip/pkg/utils"
)

// ToDisplayWaypoints zips the optimizer's path with its per-stop coordinates
// into ordered display stops. Index 0 is the start point; every later stop
// is numbered 1..N-1. Visit minutes come from the optimizer's waypoint echo
// when present, otherwise from the caller's request durations by name.
//
// Callers must pass a route that went through validateRoute, so path and
// coordinates are the same length and every pair has two components.
func ToDisplayWaypoints(route *OptimizedRoute, visitMinutes map[string]int) []response_models.DisplayWaypoint {
	out := make([]response_models.DisplayWaypoint, 0, len(route.Path))
	for i, name := range route.Path {
		minutes := 0
		if i < len(route.Waypoints) && route.Waypoints[i].Duration > 0 {
			minutes = route.Waypoints[i].Duration
		} else if m, ok := visitMinutes[name]; ok {
			minutes = m
		}

		role := "stop"
		if i == 0 {
			role = "start"
			minutes = 0
		}

		out = append(out, response_models.DisplayWaypoint{
			Name:          name,
			Latitude:      route.Coordinates[i][0],
			Longitude:     route.Coordinates[i][1],
			Role:          role,
			StopNumber:    i,
			VisitMinutes:  minutes,
			VisitDuration: utils.FormatMinutes(float64(minutes)),
		})
	}
	return out
}

// BuildMapCommands turns a route into the draw instructions the embedded map
// replays. The list always starts with a clear so a retry or a mode switch
// redraws from scratch on the same surface. Absent geometry means markers
// only: the polyline and the bounds fit are skipped, never errored on.
func BuildMapCommands(waypoints []response_models.DisplayWaypoint, route *OptimizedRoute) []response_models.MapCommand {
	commands := []response_models.MapCommand{{Op: "clear"}}

	for _, wp := range waypoints {
		marker := &response_models.MarkerSpec{
			Latitude:  wp.Latitude,
			Longitude: wp.Longitude,
			Label:     wp.Name,
			Kind:      "numbered",
			Number:    wp.StopNumber,
		}
		if wp.Role == "start" {
			marker.Kind = "start"
			marker.Number = 0
		}
		commands = append(commands, response_models.MapCommand{Op: "add_marker", Marker: marker})
	}

	if len(route.Geometry) == 0 {
		return commands
	}

	// Geometry arrives as [lng, lat] (GeoJSON order); the map surface wants
	// [lat, lng]. The flip happens here and only here.
	polyline := make([][2]float64, 0, len(route.Geometry))
	for _, pair := range route.Geometry {
		if len(pair) < 2 {
			continue
		}
		polyline = append(polyline, [2]float64{pair[1], pair[0]})
	}
	if len(polyline) == 0 {
		return commands
	}

	commands = append(commands, response_models.MapCommand{Op: "add_polyline", Polyline: polyline})

	bounds := &response_models.BoundsSpec{
		MinLat: polyline[0][0], MaxLat: polyline[0][0],
		MinLng: polyline[0][1], MaxLng: polyline[0][1],
	}
	for _, p := range polyline[1:] {
		if p[0] < bounds.MinLat {
			bounds.MinLat = p[0]
		}
		if p[0] > bounds.MaxLat {
			bounds.MaxLat = p[0]
		}
		if p[1] < bounds.MinLng {
			bounds.MinLng = p[1]
		}
		if p[1] > bounds.MaxLng {
			bounds.MaxLng = p[1]
		}
	}
	commands = append(commands, response_models.MapCommand{Op: "fit_bounds", Bounds: bounds})

	return commands
}

// RenderRoute assembles the full route view: totals, ordered stops and map
// draw commands.
func RenderRoute(route *OptimizedRoute, visitMinutes map[string]int) response_models.RouteResponse {
	waypoints := ToDisplayWaypoints(route, visitMinutes)
	return response_models.RouteResponse{
		TotalDistanceKm:  route.RoundTripDistance,
		TotalTimeMinutes: route.RoundTripTime,
		TotalTime:        utils.FormatMinutes(route.RoundTripTime),
		Waypoints:        waypoints,
		MapCommands:      BuildMapCommands(waypoints, route),
	}
}

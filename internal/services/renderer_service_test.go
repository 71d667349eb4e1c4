package services

import (
	"testing"
)

func sampleRoute() *OptimizedRoute {
	return &OptimizedRoute{
		Path: []string{"start", "Gandhi Ashram", "Kankaria Lake"},
		Coordinates: [][]float64{
			{22.2824, 70.7678},
			{23.06, 72.6},
			{22.55, 72.6},
		},
		Geometry: [][]float64{
			{70.7678, 22.2824},
			{72.6, 23.06},
			{72.6, 22.55},
		},
		RoundTripDistance: 412.5,
		RoundTripTime:     500,
	}
}

func TestToDisplayWaypoints(t *testing.T) {
	route := sampleRoute()
	visit := map[string]int{"Gandhi Ashram": 60, "Kankaria Lake": 90}

	got := ToDisplayWaypoints(route, visit)

	if len(got) != len(route.Path) {
		t.Fatalf("length = %d, want %d", len(got), len(route.Path))
	}
	for i, wp := range got {
		if wp.Name != route.Path[i] {
			t.Fatalf("order broken at %d: got %q, want %q", i, wp.Name, route.Path[i])
		}
		if wp.StopNumber != i {
			t.Fatalf("stop %q numbered %d, want %d", wp.Name, wp.StopNumber, i)
		}
	}

	if got[0].Role != "start" || got[0].VisitMinutes != 0 {
		t.Fatalf("first waypoint must be the start with no visit time, got %+v", got[0])
	}
	if got[1].Role != "stop" || got[1].VisitMinutes != 60 {
		t.Fatalf("unexpected second waypoint: %+v", got[1])
	}
	if got[1].VisitDuration != "1 hrs 0 mins" {
		t.Fatalf("visit duration = %q", got[1].VisitDuration)
	}
	if got[2].VisitDuration != "1 hrs 30 mins" {
		t.Fatalf("visit duration = %q", got[2].VisitDuration)
	}
}

func TestToDisplayWaypointsPrefersOptimizerDurations(t *testing.T) {
	route := sampleRoute()
	route.Waypoints = []RouteWaypoint{
		{Name: "start", Duration: 0},
		{Name: "Gandhi Ashram", Duration: 45},
		{Name: "Kankaria Lake", Duration: 30},
	}

	got := ToDisplayWaypoints(route, map[string]int{"Gandhi Ashram": 60})
	if got[1].VisitMinutes != 45 {
		t.Fatalf("visit minutes = %d, want the optimizer's 45", got[1].VisitMinutes)
	}
}

func TestBuildMapCommandsRedrawsFromScratch(t *testing.T) {
	route := sampleRoute()
	waypoints := ToDisplayWaypoints(route, nil)

	commands := BuildMapCommands(waypoints, route)

	if commands[0].Op != "clear" {
		t.Fatalf("first command = %q, want clear", commands[0].Op)
	}

	var markers, polylines, fits int
	for _, cmd := range commands {
		switch cmd.Op {
		case "add_marker":
			markers++
		case "add_polyline":
			polylines++
		case "fit_bounds":
			fits++
		}
	}
	if markers != 3 || polylines != 1 || fits != 1 {
		t.Fatalf("markers=%d polylines=%d fits=%d", markers, polylines, fits)
	}
}

func TestBuildMapCommandsGeometryFlip(t *testing.T) {
	route := sampleRoute()
	waypoints := ToDisplayWaypoints(route, nil)

	commands := BuildMapCommands(waypoints, route)

	for _, cmd := range commands {
		if cmd.Op != "add_polyline" {
			continue
		}
		// Geometry is [lng, lat]; the polyline sent to the map is [lat, lng].
		first := cmd.Polyline[0]
		if first[0] != 22.2824 || first[1] != 70.7678 {
			t.Fatalf("polyline not flipped: %v", first)
		}
		return
	}
	t.Fatal("no polyline command found")
}

func TestBuildMapCommandsMarkersOnlyWithoutGeometry(t *testing.T) {
	route := sampleRoute()
	route.Geometry = nil
	waypoints := ToDisplayWaypoints(route, nil)

	commands := BuildMapCommands(waypoints, route)

	for _, cmd := range commands {
		if cmd.Op == "add_polyline" || cmd.Op == "fit_bounds" {
			t.Fatalf("unexpected %q command without geometry", cmd.Op)
		}
	}
	if commands[0].Op != "clear" || len(commands) != 4 {
		t.Fatalf("expected clear plus 3 markers, got %d commands", len(commands))
	}
}

func TestBuildMapCommandsStartMarkerDistinct(t *testing.T) {
	route := sampleRoute()
	waypoints := ToDisplayWaypoints(route, nil)

	commands := BuildMapCommands(waypoints, route)

	if commands[1].Marker == nil || commands[1].Marker.Kind != "start" {
		t.Fatalf("first marker should be the start marker, got %+v", commands[1].Marker)
	}
	if commands[2].Marker.Kind != "numbered" || commands[2].Marker.Number != 1 {
		t.Fatalf("second marker should be numbered 1, got %+v", commands[2].Marker)
	}
}

func TestRenderRouteTotals(t *testing.T) {
	resp := RenderRoute(sampleRoute(), nil)
	if resp.TotalDistanceKm != 412.5 {
		t.Fatalf("distance = %v", resp.TotalDistanceKm)
	}
	if resp.TotalTime != "8 hrs 20 mins" {
		t.Fatalf("total time = %q", resp.TotalTime)
	}
}

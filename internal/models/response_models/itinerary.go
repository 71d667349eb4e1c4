package response_models

// DisplayWaypoint is one stop of the rendered itinerary. The start point is
// role "start" with stop number 0; every later stop is numbered 1..N-1 in
// route order.
type DisplayWaypoint struct {
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Role          string  `json:"role"` // "start" | "stop"
	StopNumber    int     `json:"stop_number"`
	VisitMinutes  int     `json:"visit_minutes"`
	VisitDuration string  `json:"visit_duration"` // formatted, e.g. "1 hrs 30 mins"
}

// MapCommand is a single draw instruction for the embedded map surface.
// The map is treated as a sink: the client replays the commands in order,
// and every redraw starts from a clear.
type MapCommand struct {
	Op       string       `json:"op"` // "clear" | "add_marker" | "add_polyline" | "fit_bounds"
	Marker   *MarkerSpec  `json:"marker,omitempty"`
	Polyline [][2]float64 `json:"polyline,omitempty"` // [lat, lng] pairs
	Bounds   *BoundsSpec  `json:"bounds,omitempty"`
}

type MarkerSpec struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
	Kind      string  `json:"kind"`   // "start" | "numbered"
	Number    int     `json:"number"` // shown inside numbered markers
}

type BoundsSpec struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

type RouteResponse struct {
	TotalDistanceKm  float64           `json:"total_distance_km"`
	TotalTimeMinutes float64           `json:"total_time_minutes"`
	TotalTime        string            `json:"total_time"`
	Waypoints        []DisplayWaypoint `json:"waypoints"`
	MapCommands      []MapCommand      `json:"map_commands"`
}

type ItineraryResponse struct {
	City             string `json:"city"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	AvailableMinutes int    `json:"available_minutes"`
	RouteResponse
}

// FeasibilityDetail is the payload of the blocking "Insufficient Time"
// response. The client offers only a go-back path.
type FeasibilityDetail struct {
	RequiredMinutes  float64 `json:"required_minutes"`
	AvailableMinutes int     `json:"available_minutes"`
	ShortfallMinutes float64 `json:"shortfall_minutes"`
	RequiredDays     int     `json:"required_days"`
	RequiredTime     string  `json:"required_time"` // formatted for display
}

package request_models

// RawPlace is a place as it arrives from clients or from the stored plan
// document. Latitude, longitude and duration are deliberately untyped:
// upstream writers have stored them as numbers, numeric strings or left
// them out entirely, and the builder coerces rather than rejects.
type RawPlace struct {
	Name      string      `json:"name"`
	Latitude  interface{} `json:"latitude"`
	Longitude interface{} `json:"longitude"`
	Duration  interface{} `json:"duration"`
}

// SearchRouteRequest is the point-to-point flow: the user picks their own
// "from" location instead of the fixed default start point.
type SearchRouteRequest struct {
	From   *RawPlace  `json:"from"`
	Places []RawPlace `json:"places"`
}

package services

import (
	"fmt"
	"math"
	"time"

	"gujtrip/pkg/utils"
)

// TripWindow is the declared trip date range. End before Start is a caller
// error; validate ordering before computing a budget.
type TripWindow struct {
	Start time.Time
	End   time.Time
}

// FeasibilityResult says whether an optimized route fits inside the trip
// window. It never mutates the route or the window; an infeasible result is
// surfaced as a blocking response and the user revises their selections.
type FeasibilityResult struct {
	Feasible         bool
	RequiredMinutes  float64
	AvailableMinutes int
	ShortfallMinutes float64
	RequiredDays     int
}

const minutesPerDay = 1440

// AvailableMinutes converts a trip window into a time budget: the day
// difference rounded up, times 1440. A same-day trip still buys one full
// day; a literal zero budget would make every itinerary infeasible, which
// contradicts the single-day use case the plan form allows.
func AvailableMinutes(window TripWindow) int {
	diff := window.End.Sub(window.Start)
	days := int(math.Ceil(diff.Hours() / 24))
	if days == 0 {
		days = 1
	}
	return days * minutesPerDay
}

// CheckFeasible compares the optimized round-trip time against the budget.
// The boundary is inclusive: a route that exactly fills the window passes.
func CheckFeasible(route *OptimizedRoute, availableMinutes int) FeasibilityResult {
	required := route.RoundTripTime
	if required <= float64(availableMinutes) {
		return FeasibilityResult{
			Feasible:         true,
			RequiredMinutes:  required,
			AvailableMinutes: availableMinutes,
		}
	}
	return FeasibilityResult{
		Feasible:         false,
		RequiredMinutes:  required,
		AvailableMinutes: availableMinutes,
		ShortfallMinutes: required - float64(availableMinutes),
		RequiredDays:     int(math.Ceil(required / minutesPerDay)),
	}
}

// InfeasibleItineraryError blocks forward navigation when the route does
// not fit the trip window. Controllers translate it into a 409 carrying the
// required-vs-available detail.
type InfeasibleItineraryError struct {
	Result FeasibilityResult
}

func (e *InfeasibleItineraryError) Error() string {
	return e.Result.BlockingMessage()
}

// BlockingMessage is the text of the infeasibility dialog; the only
// affordance offered with it is going back.
func (r FeasibilityResult) BlockingMessage() string {
	return fmt.Sprintf(
		"Your trip requires approximately %s but you only have %d day(s) available. Please reduce places or extend your trip.",
		utils.FormatMinutes(r.RequiredMinutes),
		r.AvailableMinutes/minutesPerDay,
	)
}

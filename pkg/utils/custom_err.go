package utils

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrEmptyItinerary       = errors.New("itinerary has no places")
	ErrInvalidTripWindow    = errors.New("trip end date is before start date")
	ErrMissingCoordinates   = errors.New("destination coordinates missing")
	ErrMalformedRoute       = errors.New("optimizer returned a malformed route")
	ErrOptimizerUnreachable = errors.New("route optimizer unreachable")
	ErrDatabaseError        = errors.New("database error")
	ErrInvalidInput         = errors.New("invalid input")
)

// OptimizerError carries the error payload the remote optimizer returned
// in a response body. The upstream message is surfaced to the user verbatim.
type OptimizerError struct {
	Message string
}

func (e *OptimizerError) Error() string {
	return fmt.Sprintf("optimizer error: %s", e.Message)
}

package db_models

import (
	"gorm.io/datatypes"
)

// TripPlan is the plan record the mobile plan form writes. This service only
// reads it: the itinerary flow consumes city, dates and the places document,
// it never mutates the plan.
type TripPlan struct {
	BaseModel
	PlanKey   string `gorm:"uniqueIndex"` // "plan" + phone digits
	City      string
	StartDate string
	EndDate   string
	Status    string `gorm:"default:draft"` // "draft" | "confirmed"

	// Places is kept as a jsonb document, mirroring the shape the form
	// stores. Coordinates and durations in here are not trustworthy and
	// are coerced on read.
	Places datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}

package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Date layouts the plan form has been known to write.
var planDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

// ParsePlanDate parses a plan start/end date as stored by the plan form.
func ParsePlanDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range planDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatMinutes renders a duration in minutes the way every screen shows it:
// "0 mins" for non-positive input, "H hrs M mins" when there is at least a
// full hour, "M mins" otherwise. Fractional minutes are floored.
func FormatMinutes(minutes float64) string {
	if minutes <= 0 || math.IsNaN(minutes) {
		return "0 mins"
	}
	hrs := int(minutes) / 60
	mins := int(minutes) % 60
	if hrs > 0 {
		return fmt.Sprintf("%d hrs %d mins", hrs, mins)
	}
	return fmt.Sprintf("%d mins", mins)
}

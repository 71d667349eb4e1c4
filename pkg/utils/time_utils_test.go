package utils

import (
	"math"
	"testing"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0 mins"},
		{-10, "0 mins"},
		{math.NaN(), "0 mins"},
		{45, "45 mins"},
		{59.9, "59 mins"},
		{60, "1 hrs 0 mins"},
		{90, "1 hrs 30 mins"},
		{500, "8 hrs 20 mins"},
		{1440, "24 hrs 0 mins"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParsePlanDate(t *testing.T) {
	for _, s := range []string{"2024-01-01", "2024-01-01T00:00:00Z", "2024-01-01T10:30:00.000Z"} {
		if _, ok := ParsePlanDate(s); !ok {
			t.Errorf("ParsePlanDate(%q) failed", s)
		}
	}
	if _, ok := ParsePlanDate("yesterday"); ok {
		t.Error("ParsePlanDate accepted garbage")
	}
}

func TestPlanKeyFromPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+919104558700", "plan9104558700"},
		{"9104558700", "plan9104558700"},
		{"", "plan_default"},
	}
	for _, tt := range tests {
		if got := PlanKeyFromPhone(tt.phone); got != tt.want {
			t.Errorf("PlanKeyFromPhone(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}
}

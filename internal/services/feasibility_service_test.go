package services

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailableMinutes(t *testing.T) {
	tests := []struct {
		name   string
		window TripWindow
		want   int
	}{
		{
			name:   "two day window",
			window: TripWindow{Start: date(2024, 1, 1), End: date(2024, 1, 3)},
			want:   2880,
		},
		{
			name:   "single night",
			window: TripWindow{Start: date(2024, 1, 1), End: date(2024, 1, 2)},
			want:   1440,
		},
		{
			// Same start and end still buys one full day; a zero budget
			// would reject every single-day trip the plan form allows.
			name:   "same day window rounds up to one day",
			window: TripWindow{Start: date(2024, 1, 1), End: date(2024, 1, 1)},
			want:   1440,
		},
		{
			// Partial days round up via ceil.
			name:   "day and a half rounds up to two days",
			window: TripWindow{Start: date(2024, 1, 1), End: date(2024, 1, 2).Add(12 * time.Hour)},
			want:   2880,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AvailableMinutes(tt.window); got != tt.want {
				t.Fatalf("AvailableMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAvailableMinutesMonotonic(t *testing.T) {
	start := date(2024, 1, 1)
	prev := 0
	for days := 0; days <= 14; days++ {
		window := TripWindow{Start: start, End: start.AddDate(0, 0, days)}
		got := AvailableMinutes(window)
		if got < prev {
			t.Fatalf("budget shrank when window grew: %d days = %d, %d days = %d", days-1, prev, days, got)
		}
		prev = got
	}
}

func TestCheckFeasible(t *testing.T) {
	route := func(roundTripTime float64) *OptimizedRoute {
		return &OptimizedRoute{RoundTripTime: roundTripTime}
	}

	t.Run("under budget", func(t *testing.T) {
		result := CheckFeasible(route(500), 1440)
		if !result.Feasible {
			t.Fatal("expected feasible")
		}
		if result.RequiredMinutes != 500 || result.AvailableMinutes != 1440 {
			t.Fatalf("unexpected result: %+v", result)
		}
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		if result := CheckFeasible(route(1440), 1440); !result.Feasible {
			t.Fatal("a route that exactly fills the window must pass")
		}
	})

	t.Run("over budget", func(t *testing.T) {
		result := CheckFeasible(route(2000), 1440)
		if result.Feasible {
			t.Fatal("expected infeasible")
		}
		if result.ShortfallMinutes != 560 {
			t.Fatalf("shortfall = %v, want 560", result.ShortfallMinutes)
		}
		if result.RequiredDays != 2 {
			t.Fatalf("required days = %d, want 2", result.RequiredDays)
		}
	})
}

func TestBlockingMessage(t *testing.T) {
	result := CheckFeasible(&OptimizedRoute{RoundTripTime: 2000}, 1440)
	msg := result.BlockingMessage()
	want := "Your trip requires approximately 33 hrs 20 mins but you only have 1 day(s) available. Please reduce places or extend your trip."
	if msg != want {
		t.Fatalf("message = %q, want %q", msg, want)
	}
}

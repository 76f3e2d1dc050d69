package models

import (
	"testing"
	"time"
)

func TestDayName(t *testing.T) {
	tests := []struct {
		date string
		want DayOfWeek
	}{
		{"2025-11-24", Monday},
		{"2025-11-27", Thursday},
		{"2025-11-29", Saturday},
		{"2025-11-30", Sunday},
		{"not-a-date", ""},
	}

	for _, tt := range tests {
		if got := DayName(tt.date); got != tt.want {
			t.Errorf("DayName(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestWeekStartDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"monday stays", "2025-11-24", "2025-11-24"},
		{"wednesday aligns back", "2025-11-26", "2025-11-24"},
		{"sunday aligns back six days", "2025-11-30", "2025-11-24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := time.Parse(DateLayout, tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := WeekStartDate(day); got != tt.want {
				t.Errorf("WeekStartDate(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates("2025-11-24")
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if dates[0] != "2025-11-24" {
		t.Errorf("first date = %q, want 2025-11-24", dates[0])
	}
	if dates[6] != "2025-11-30" {
		t.Errorf("last date = %q, want 2025-11-30", dates[6])
	}

	// Month boundary.
	dates = WeekDates("2025-12-29")
	if dates[6] != "2026-01-04" {
		t.Errorf("last date across year boundary = %q, want 2026-01-04", dates[6])
	}
}

func TestAvailabilityDays(t *testing.T) {
	avail := Availability{
		Monday: true, Wednesday: true, Sunday: true,
	}
	days := avail.Days()
	want := []DayOfWeek{Monday, Wednesday, Sunday}
	if len(days) != len(want) {
		t.Fatalf("Days() = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("Days()[%d] = %q, want %q", i, days[i], want[i])
		}
	}
}

func TestImpactForMultiplier(t *testing.T) {
	tests := []struct {
		multiplier float64
		want       EventImpact
	}{
		{3.0, ImpactVeryHigh},
		{2.0, ImpactVeryHigh},
		{1.8, ImpactHigh},
		{1.3, ImpactModerate},
		{0.3, ImpactLow},
	}
	for _, tt := range tests {
		if got := ImpactForMultiplier(tt.multiplier); got != tt.want {
			t.Errorf("ImpactForMultiplier(%v) = %q, want %q", tt.multiplier, got, tt.want)
		}
	}
}

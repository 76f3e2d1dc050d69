package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a time of day stored as minutes since midnight. Shift start
// and end times travel as "HH:MM" strings on the wire; parsing them into a
// value type keeps the hour arithmetic away from string handling.
type ClockTime int

// ParseClock converts an "HH:MM" string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in clock time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in clock time %q: %w", s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}

	return ClockTime(hour*60 + minute), nil
}

// String renders the time back to "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// HoursUntil returns the elapsed hours from c to end. An end time numerically
// earlier than the start is treated as crossing midnight, so a shift from
// 20:00 to 00:00 is 4 hours, never negative.
func (c ClockTime) HoursUntil(end ClockTime) float64 {
	delta := int(end) - int(c)
	if delta < 0 {
		delta += 24 * 60
	}
	return float64(delta) / 60.0
}

// ShiftHours computes the duration in hours between two "HH:MM" strings,
// wrapping past midnight when needed.
func ShiftHours(startTime, endTime string) (float64, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, err
	}
	return start.HoursUntil(end), nil
}

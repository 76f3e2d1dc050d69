package models

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    ClockTime
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 8*60 + 30, false},
		{"23:59", 23*60 + 59, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
		{"12", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClockTimeString(t *testing.T) {
	for _, input := range []string{"00:00", "09:05", "16:00", "23:59"} {
		c, err := ParseClock(input)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", input, err)
		}
		if got := c.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func TestShiftHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"evening shift", "16:00", "22:00", 6.0},
		{"overnight wrap", "20:00", "00:00", 4.0},
		{"past midnight", "22:00", "02:30", 4.5},
		{"half hours", "11:30", "15:00", 3.5},
		{"zero length", "10:00", "10:00", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShiftHours(tt.start, tt.end)
			if err != nil {
				t.Fatalf("ShiftHours(%q, %q): %v", tt.start, tt.end, err)
			}
			if got != tt.want {
				t.Errorf("ShiftHours(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
			if got < 0 {
				t.Errorf("ShiftHours(%q, %q) = %v, must never be negative", tt.start, tt.end, got)
			}
		})
	}

	if _, err := ShiftHours("26:00", "22:00"); err == nil {
		t.Error("expected error for out-of-range start time")
	}
}

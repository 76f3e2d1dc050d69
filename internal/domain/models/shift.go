package models

import "github.com/lucsky/cuid"

// ShiftType labels the time block a shift covers.
type ShiftType string

const (
	ShiftMorningPrep ShiftType = "morning_prep"
	ShiftLunch       ShiftType = "lunch"
	ShiftDinner      ShiftType = "dinner"
	ShiftLateNight   ShiftType = "late_night"
	ShiftFullDay     ShiftType = "full_day"
)

// ShiftTypes lists every valid shift type.
var ShiftTypes = []ShiftType{ShiftMorningPrep, ShiftLunch, ShiftDinner, ShiftLateNight, ShiftFullDay}

// Valid reports whether the shift type is known.
func (t ShiftType) Valid() bool {
	for _, known := range ShiftTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Shift is a single assignment of an employee to a time block on a date.
// Shifts are created by a schedule generator and never mutated afterwards;
// regenerating a week replaces the whole set.
type Shift struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Role       Role      `json:"role"`
	ShiftType  ShiftType `json:"shift_type"`
	Notes      string    `json:"notes,omitempty"`
}

// Hours returns the shift duration, wrapping overnight end times.
func (s Shift) Hours() (float64, error) {
	return ShiftHours(s.StartTime, s.EndTime)
}

// ShiftTemplate is a fixed start/end pair used as a default time block.
type ShiftTemplate struct {
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Duration float64 `json:"duration"`
}

// ShiftTemplates is the library of default time blocks offered to generators
// and to the shift proposer.
var ShiftTemplates = map[ShiftType]ShiftTemplate{
	ShiftMorningPrep: {Start: "08:00", End: "12:00", Duration: 4},
	ShiftLunch:       {Start: "11:00", End: "15:00", Duration: 4},
	ShiftDinner:      {Start: "16:00", End: "22:00", Duration: 6},
	ShiftLateNight:   {Start: "20:00", End: "00:00", Duration: 4},
	ShiftFullDay:     {Start: "10:00", End: "18:00", Duration: 8},
}

// RoleRequirements maps each shift type to the roles normally staffed on it.
var RoleRequirements = map[ShiftType][]Role{
	ShiftMorningPrep: {RolePrep, RoleCook},
	ShiftLunch:       {RoleCook, RoleServer, RoleDelivery},
	ShiftDinner:      {RoleCook, RoleServer, RoleDelivery, RoleManager},
	ShiftLateNight:   {RoleCook, RoleServer, RoleDelivery},
	ShiftFullDay:     {RoleManager},
}

// NewShiftID mints a collision-resistant shift identifier.
func NewShiftID() string {
	return "shift_" + cuid.New()
}

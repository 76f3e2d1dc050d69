package models

// Role enumerates the staff positions the restaurant schedules.
type Role string

const (
	RoleCook     Role = "cook"
	RoleServer   Role = "server"
	RoleDelivery Role = "delivery"
	RolePrep     Role = "prep"
	RoleManager  Role = "manager"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RoleCook, RoleServer, RoleDelivery, RolePrep, RoleManager}

// Valid reports whether the role is one of the known positions.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// DayOfWeek is a lowercase weekday name, the key used for availability maps.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Weekdays lists the seven days in calendar order starting Monday, matching
// the layout of a schedule week.
var Weekdays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Availability maps each weekday to whether the employee can work it.
type Availability map[DayOfWeek]bool

// Days returns the weekdays marked available, in calendar order.
func (a Availability) Days() []DayOfWeek {
	var days []DayOfWeek
	for _, day := range Weekdays {
		if a[day] {
			days = append(days, day)
		}
	}
	return days
}

// Employee is a roster entry. The scheduler reads employees but never writes
// them back; roster management lives elsewhere.
type Employee struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Role            Role         `json:"role"`
	HourlyRate      float64      `json:"hourly_rate"`
	Availability    Availability `json:"availability"`
	MaxHoursPerWeek float64      `json:"max_hours_per_week"`
	Skills          []string     `json:"skills"`
	HireDate        string       `json:"hire_date"`
	Active          bool         `json:"active"`
}

// AvailableOn reports whether an active employee can work the given weekday.
func (e Employee) AvailableOn(day DayOfWeek) bool {
	return e.Active && e.Availability[day]
}

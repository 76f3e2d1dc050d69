package models

import (
	"time"

	"github.com/lucsky/cuid"
)

// DateLayout is the ISO date format used for every calendar date in the
// scheduling core.
const DateLayout = "2006-01-02"

// ScheduleStatus tracks the simple publication lifecycle of a schedule.
type ScheduleStatus string

const (
	StatusDraft     ScheduleStatus = "draft"
	StatusPublished ScheduleStatus = "published"
	StatusArchived  ScheduleStatus = "archived"
)

// Schedule is a week of shifts plus labor metrics derived from them. The
// four numeric fields always mirror a labor analysis over Shifts; they are
// never edited independently.
type Schedule struct {
	ID               string         `bson:"id" json:"id"`
	WeekStartDate    string         `bson:"week_start_date" json:"week_start_date"`
	Shifts           []Shift        `bson:"shifts" json:"shifts"`
	TotalLaborHours  float64        `bson:"total_labor_hours" json:"total_labor_hours"`
	TotalLaborCost   float64        `bson:"total_labor_cost" json:"total_labor_cost"`
	ProjectedRevenue float64        `bson:"projected_revenue" json:"projected_revenue"`
	LaborPercentage  float64        `bson:"labor_percentage" json:"labor_percentage"`
	Status           ScheduleStatus `bson:"status" json:"status"`
	CreatedAt        time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `bson:"updated_at" json:"updated_at"`
}

// NewScheduleID mints a collision-resistant schedule identifier.
func NewScheduleID() string {
	return "schedule_" + cuid.New()
}

// DayName returns the lowercase weekday for an ISO date, or "" when the date
// does not parse.
func DayName(date string) DayOfWeek {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// WeekStartDate returns the ISO date of the Monday on or before t.
func WeekStartDate(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset).Format(DateLayout)
}

// WeekDates expands a Monday start date into the seven dates of that week.
// The input is returned as the sole entry when it does not parse.
func WeekDates(weekStartDate string) []string {
	start, err := time.Parse(DateLayout, weekStartDate)
	if err != nil {
		return []string{weekStartDate}
	}

	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}

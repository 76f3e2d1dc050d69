package models

// RoleBreakdown aggregates labor hours and cost for one role.
type RoleBreakdown struct {
	Role  Role    `json:"role"`
	Hours float64 `json:"hours"`
	Cost  float64 `json:"cost"`
}

// DayBreakdown aggregates labor hours, cost and distinct headcount for one date.
type DayBreakdown struct {
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Cost       float64 `json:"cost"`
	StaffCount int     `json:"staff_count"`
}

// LaborAnalysis is the full labor metric set derived from a shift collection.
// It is the single source of truth for every labor figure surfaced anywhere:
// schedule aggregates, exports and dashboards all read from here.
type LaborAnalysis struct {
	TotalCost       float64         `json:"total_cost"`
	TotalHours      float64         `json:"total_hours"`
	LaborPercentage float64         `json:"labor_percentage"`
	ByRole          []RoleBreakdown `json:"by_role"`
	ByDay           []DayBreakdown  `json:"by_day"`
}

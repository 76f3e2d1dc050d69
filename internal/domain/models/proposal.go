package models

// DayContext is the per-day slice of the planning context sent to the shift
// proposer: forecast, event-adjusted demand and staffing guidance for one date.
type DayContext struct {
	Date                    string         `json:"date"`
	DayOfWeek               DayOfWeek      `json:"day_of_week"`
	BasePredictedOrders     int            `json:"base_predicted_orders"`
	AdjustedPredictedOrders int            `json:"adjusted_predicted_orders"`
	RevenueEstimate         float64        `json:"revenue_estimate"`
	PeakWindow              string         `json:"peak_window"`
	SpecialEvents           []EventSummary `json:"special_events"`
	EventRecommendations    []string       `json:"event_recommendations"`
}

// EventSummary is the compact event view embedded in a day context.
type EventSummary struct {
	Name       string      `json:"name"`
	Impact     EventImpact `json:"impact"`
	Multiplier float64     `json:"multiplier"`
}

// AvailableEmployee is the roster projection the proposer plans with: active
// employees only, availability flattened to the days they can work.
type AvailableEmployee struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Role            Role        `json:"role"`
	HourlyRate      float64     `json:"hourly_rate"`
	MaxHoursPerWeek float64     `json:"max_hours_per_week"`
	AvailableDays   []DayOfWeek `json:"available_days"`
	Skills          []string    `json:"skills"`
}

// PlanningContext is the complete structured payload handed to a shift
// proposer for one schedule week.
type PlanningContext struct {
	WeekStart          string                      `json:"week_start"`
	DailyForecasts     []DayContext                `json:"daily_forecasts"`
	AvailableEmployees []AvailableEmployee         `json:"available_employees"`
	Constraints        PlanningConstraints         `json:"constraints"`
	ShiftTemplates     map[ShiftType]ShiftTemplate `json:"shift_templates"`
}

// PlanningConstraints restates Constraints in the proposer wire vocabulary.
type PlanningConstraints struct {
	TargetLaborPercentage float64          `json:"target_labor_percentage"`
	MinimumCoverage       map[Role]int     `json:"minimum_coverage"`
	ShiftLengthRange      ShiftLengthRange `json:"shift_length_range"`
}

// ProposedShift is one assignment in a proposer response. The ID is always
// reissued locally; an externally supplied one is never trusted.
type ProposedShift struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Role       Role   `json:"role"`
	ShiftType  string `json:"shift_type"`
	Notes      string `json:"notes,omitempty"`
}

// ShiftProposal is the full response contract owed by a shift proposer.
type ShiftProposal struct {
	Shifts          []ProposedShift `json:"shifts"`
	Recommendations []string        `json:"recommendations"`
	Warnings        []string        `json:"warnings"`
}

// GenerationRequest bundles everything a schedule generator needs for one week.
type GenerationRequest struct {
	WeekStartDate string         `json:"week_start_date"`
	Employees     []Employee     `json:"employees"`
	Forecasts     WeekForecast   `json:"forecasts"`
	SpecialEvents []SpecialEvent `json:"special_events"`
	Constraints   Constraints    `json:"constraints"`
}

// GenerationResult is what a schedule generator returns: the schedule itself
// plus advisory strings and the labor analysis backing its aggregates.
type GenerationResult struct {
	Schedule        Schedule      `json:"schedule"`
	Recommendations []string      `json:"recommendations"`
	Warnings        []string      `json:"warnings"`
	LaborAnalysis   LaborAnalysis `json:"labor_analysis"`
}

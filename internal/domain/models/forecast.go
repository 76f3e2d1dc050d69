package models

// DailyForecast is one day's demand estimate from the forecast provider.
type DailyForecast struct {
	Date            string  `json:"date"`
	PredictedOrders int     `json:"predicted_orders"`
	RevenueEstimate float64 `json:"revenue_estimate"`
	PeakWindow      string  `json:"peak_window"`
}

// WeekForecast holds the seven daily forecasts for a schedule week.
type WeekForecast struct {
	WeekStartDate string          `json:"week_start_date"`
	Daily         []DailyForecast `json:"daily"`
}

// TotalRevenue sums the revenue estimates across the week.
func (f WeekForecast) TotalRevenue() float64 {
	var total float64
	for _, day := range f.Daily {
		total += day.RevenueEstimate
	}
	return total
}

// ShiftLengthRange bounds preferred shift durations in hours. Advisory only.
type ShiftLengthRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Constraints are the scheduling targets handed to a generator. The labor
// percent ceiling and shift lengths are advisory; minimum coverage is
// verified after generation and surfaced as warnings.
type Constraints struct {
	MaxLaborCostPercent   float64          `json:"max_labor_cost_percent"`
	MinCoverage           map[Role]int     `json:"min_coverage"`
	PreferredShiftLengths ShiftLengthRange `json:"preferred_shift_lengths"`
}

// DefaultConstraints are the house targets used when a caller supplies none.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxLaborCostPercent: 30,
		MinCoverage: map[Role]int{
			RoleCook:     1,
			RoleServer:   1,
			RoleDelivery: 1,
			RolePrep:     0,
			RoleManager:  0,
		},
		PreferredShiftLengths: ShiftLengthRange{Min: 4, Max: 8},
	}
}

package labor

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// Analyzer computes labor metrics from a concrete shift set. It is pure and
// order-independent: shuffling the input shifts never changes the output.
type Analyzer struct {
	logger *zap.Logger
}

// NewAnalyzer wires a labor analyzer.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

type roleTotals struct {
	hours float64
	cost  float64
}

type dayTotals struct {
	hours float64
	cost  float64
	staff map[string]struct{}
}

// Analyze aggregates hours, cost and headcount over the given shifts.
// Shifts referencing an employee missing from the roster are skipped, not
// errors: the roster and shift set may be supplied independently. Costs are
// rounded to 2 decimals, hours to 1, percentages to 1.
func (a *Analyzer) Analyze(shifts []models.Shift, employees []models.Employee, forecasts []models.DailyForecast) models.LaborAnalysis {
	byID := make(map[string]models.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	var totalHours, totalCost float64
	byRole := make(map[models.Role]*roleTotals)
	byDay := make(map[string]*dayTotals)

	for _, shift := range shifts {
		emp, ok := byID[shift.EmployeeID]
		if !ok {
			a.logger.Debug("skipping shift for unknown employee",
				zap.String("shift_id", shift.ID),
				zap.String("employee_id", shift.EmployeeID))
			continue
		}

		hours, err := shift.Hours()
		if err != nil {
			a.logger.Debug("skipping shift with unparseable times",
				zap.String("shift_id", shift.ID), zap.Error(err))
			continue
		}
		cost := hours * emp.HourlyRate

		totalHours += hours
		totalCost += cost

		role, ok := byRole[shift.Role]
		if !ok {
			role = &roleTotals{}
			byRole[shift.Role] = role
		}
		role.hours += hours
		role.cost += cost

		day, ok := byDay[shift.Date]
		if !ok {
			day = &dayTotals{staff: make(map[string]struct{})}
			byDay[shift.Date] = day
		}
		day.hours += hours
		day.cost += cost
		day.staff[shift.EmployeeID] = struct{}{}
	}

	var totalRevenue float64
	for _, forecast := range forecasts {
		totalRevenue += forecast.RevenueEstimate
	}

	laborPercentage := 0.0
	if totalRevenue > 0 {
		laborPercentage = totalCost / totalRevenue * 100
	}

	analysis := models.LaborAnalysis{
		TotalCost:       roundCost(totalCost),
		TotalHours:      roundHours(totalHours),
		LaborPercentage: roundPercent(laborPercentage),
		ByRole:          make([]models.RoleBreakdown, 0, len(byRole)),
		ByDay:           make([]models.DayBreakdown, 0, len(byDay)),
	}

	for role, totals := range byRole {
		analysis.ByRole = append(analysis.ByRole, models.RoleBreakdown{
			Role:  role,
			Hours: roundHours(totals.hours),
			Cost:  roundCost(totals.cost),
		})
	}
	sort.Slice(analysis.ByRole, func(i, j int) bool { return analysis.ByRole[i].Role < analysis.ByRole[j].Role })

	for date, totals := range byDay {
		analysis.ByDay = append(analysis.ByDay, models.DayBreakdown{
			Date:       date,
			Hours:      roundHours(totals.hours),
			Cost:       roundCost(totals.cost),
			StaffCount: len(totals.staff),
		})
	}
	sort.Slice(analysis.ByDay, func(i, j int) bool { return analysis.ByDay[i].Date < analysis.ByDay[j].Date })

	return analysis
}

func roundCost(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundHours(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}

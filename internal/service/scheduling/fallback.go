package scheduling

import (
	"math"

	"go.uber.org/zap"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// Fallback result strings let callers tell a rule-based schedule from an
// optimized one.
const (
	fallbackRecommendation = "Fallback schedule generated. Connect AI for optimized scheduling."
	fallbackWarning        = "AI scheduling unavailable - using basic rule-based schedule"
)

// generateFallback builds a schedule without the proposer: headcount sized
// from demand, available employees taken in roster order, one fixed template
// per day. Everyone keeps their own role.
func (s *Service) generateFallback(req models.GenerationRequest) models.GenerationResult {
	var shifts []models.Shift

	for _, day := range req.Forecasts.Daily {
		weekday := models.DayName(day.Date)

		var available []models.Employee
		for _, emp := range req.Employees {
			if emp.AvailableOn(weekday) {
				available = append(available, emp)
			}
		}

		staffNeeded := int(math.Ceil(float64(day.PredictedOrders) / float64(s.opts.OrdersPerStaff)))
		if staffNeeded > len(available) {
			staffNeeded = len(available)
		}

		shiftType := models.ShiftLunch
		if day.PredictedOrders > s.opts.DinnerOrderThreshold {
			shiftType = models.ShiftDinner
		}
		template := models.ShiftTemplates[shiftType]

		for _, emp := range available[:staffNeeded] {
			shifts = append(shifts, models.Shift{
				ID:         models.NewShiftID(),
				EmployeeID: emp.ID,
				Date:       day.Date,
				StartTime:  template.Start,
				EndTime:    template.End,
				Role:       emp.Role,
				ShiftType:  shiftType,
			})
		}
	}

	analysis := s.analyzer.Analyze(shifts, req.Employees, req.Forecasts.Daily)
	schedule := s.assembleSchedule(req, shifts, analysis)

	s.logger.Info("fallback schedule generated",
		zap.String("week_start", req.WeekStartDate),
		zap.Int("shifts", len(shifts)))

	return models.GenerationResult{
		Schedule:        schedule,
		Recommendations: []string{fallbackRecommendation},
		Warnings:        []string{fallbackWarning},
		LaborAnalysis:   analysis,
	}
}

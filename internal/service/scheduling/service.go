package scheduling

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/service/events"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/service/labor"
)

// ShiftProposer is the external collaborator asked to propose a week of
// shift assignments from a planning context. Implementations may fail or
// return unusable plans; the service always degrades to the rule-based
// fallback in that case.
type ShiftProposer interface {
	ProposeSchedule(ctx context.Context, planning models.PlanningContext) (*models.ShiftProposal, error)
}

// Options are the named scheduling heuristics, overridable through config.
type Options struct {
	// OrdersPerStaff sizes fallback headcount: one staff member per this
	// many predicted orders.
	OrdersPerStaff int
	// DinnerOrderThreshold selects the dinner template over lunch when a
	// day's predicted orders exceed it.
	DinnerOrderThreshold int
}

// DefaultOptions returns the house heuristics.
func DefaultOptions() Options {
	return Options{OrdersPerStaff: 30, DinnerOrderThreshold: 100}
}

// Service generates weekly staff schedules. The primary path delegates the
// assignment decision to the shift proposer and validates its output; the
// fallback path is deterministic and local. Either way the caller receives
// a complete schedule.
type Service struct {
	proposer ShiftProposer
	events   *events.Service
	analyzer *labor.Analyzer
	opts     Options
	logger   *zap.Logger
}

// NewService wires a schedule generator. A nil proposer disables the
// primary path so every request takes the fallback.
func NewService(proposer ShiftProposer, eventsSvc *events.Service, analyzer *labor.Analyzer, opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.OrdersPerStaff <= 0 {
		opts.OrdersPerStaff = DefaultOptions().OrdersPerStaff
	}
	if opts.DinnerOrderThreshold <= 0 {
		opts.DinnerOrderThreshold = DefaultOptions().DinnerOrderThreshold
	}
	return &Service{
		proposer: proposer,
		events:   eventsSvc,
		analyzer: analyzer,
		opts:     opts,
		logger:   logger,
	}
}

// Generate produces a schedule for the requested week. Collaborator failure
// never surfaces as an error: the deterministic fallback takes over and the
// result carries a warning instead.
func (s *Service) Generate(ctx context.Context, req models.GenerationRequest) models.GenerationResult {
	if s.proposer == nil {
		s.logger.Warn("no shift proposer configured, using fallback generator")
		return s.generateFallback(req)
	}

	planning := s.buildPlanningContext(req)

	proposal, err := s.proposer.ProposeSchedule(ctx, planning)
	if err != nil {
		s.logger.Warn("shift proposer failed, using fallback generator", zap.Error(err))
		return s.generateFallback(req)
	}
	if proposal == nil || proposal.Shifts == nil {
		s.logger.Warn("shift proposer returned no shifts field, using fallback generator")
		return s.generateFallback(req)
	}

	shifts, err := convertProposedShifts(proposal.Shifts)
	if err != nil {
		s.logger.Warn("unusable shift proposal, using fallback generator", zap.Error(err))
		return s.generateFallback(req)
	}

	analysis := s.analyzer.Analyze(shifts, req.Employees, req.Forecasts.Daily)
	schedule := s.assembleSchedule(req, shifts, analysis)

	recommendations := proposal.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	warnings := proposal.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	warnings = append(warnings, s.coverageWarnings(shifts, req.Constraints)...)

	s.logger.Info("schedule generated",
		zap.String("week_start", req.WeekStartDate),
		zap.Int("shifts", len(shifts)),
		zap.Float64("labor_percentage", analysis.LaborPercentage))

	return models.GenerationResult{
		Schedule:        schedule,
		Recommendations: recommendations,
		Warnings:        warnings,
		LaborAnalysis:   analysis,
	}
}

// buildPlanningContext assembles the structured payload the proposer plans
// against: per-day adjusted demand with event guidance, the active-employee
// view and the constraint targets.
func (s *Service) buildPlanningContext(req models.GenerationRequest) models.PlanningContext {
	daily := make([]models.DayContext, 0, len(req.Forecasts.Daily))
	for _, day := range req.Forecasts.Daily {
		adjusted := s.events.AdjustedDemand(day.PredictedOrders, day.Date)

		summaries := make([]models.EventSummary, 0, len(adjusted.Events))
		for _, event := range adjusted.Events {
			summaries = append(summaries, models.EventSummary{
				Name:       event.Name,
				Impact:     event.Impact,
				Multiplier: event.ImpactMultiplier,
			})
		}

		daily = append(daily, models.DayContext{
			Date:                    day.Date,
			DayOfWeek:               models.DayName(day.Date),
			BasePredictedOrders:     day.PredictedOrders,
			AdjustedPredictedOrders: adjusted.AdjustedOrders,
			RevenueEstimate:         day.RevenueEstimate,
			PeakWindow:              day.PeakWindow,
			SpecialEvents:           summaries,
			EventRecommendations:    s.events.StaffingRecommendations(day.Date),
		})
	}

	available := make([]models.AvailableEmployee, 0, len(req.Employees))
	for _, emp := range req.Employees {
		if !emp.Active {
			continue
		}
		available = append(available, models.AvailableEmployee{
			ID:              emp.ID,
			Name:            emp.Name,
			Role:            emp.Role,
			HourlyRate:      emp.HourlyRate,
			MaxHoursPerWeek: emp.MaxHoursPerWeek,
			AvailableDays:   emp.Availability.Days(),
			Skills:          emp.Skills,
		})
	}

	return models.PlanningContext{
		WeekStart:          req.WeekStartDate,
		DailyForecasts:     daily,
		AvailableEmployees: available,
		Constraints: models.PlanningConstraints{
			TargetLaborPercentage: req.Constraints.MaxLaborCostPercent,
			MinimumCoverage:       req.Constraints.MinCoverage,
			ShiftLengthRange:      req.Constraints.PreferredShiftLengths,
		},
		ShiftTemplates: models.ShiftTemplates,
	}
}

// convertProposedShifts turns a proposal into concrete shifts with locally
// minted IDs. Any malformed entry makes the whole proposal unusable; a
// partial plan is never merged with fallback output.
func convertProposedShifts(proposed []models.ProposedShift) ([]models.Shift, error) {
	shifts := make([]models.Shift, 0, len(proposed))
	for i, p := range proposed {
		if p.EmployeeID == "" || p.Date == "" {
			return nil, fmt.Errorf("proposed shift %d missing employee_id or date", i)
		}
		if _, err := models.ShiftHours(p.StartTime, p.EndTime); err != nil {
			return nil, fmt.Errorf("proposed shift %d: %w", i, err)
		}
		if !p.Role.Valid() {
			return nil, fmt.Errorf("proposed shift %d has unknown role %q", i, p.Role)
		}
		shiftType := models.ShiftType(p.ShiftType)
		if !shiftType.Valid() {
			return nil, fmt.Errorf("proposed shift %d has unknown shift type %q", i, p.ShiftType)
		}

		shifts = append(shifts, models.Shift{
			ID:         models.NewShiftID(),
			EmployeeID: p.EmployeeID,
			Date:       p.Date,
			StartTime:  p.StartTime,
			EndTime:    p.EndTime,
			Role:       p.Role,
			ShiftType:  shiftType,
			Notes:      p.Notes,
		})
	}
	return shifts, nil
}

// assembleSchedule builds the draft schedule carrying the analyzer's metrics.
func (s *Service) assembleSchedule(req models.GenerationRequest, shifts []models.Shift, analysis models.LaborAnalysis) models.Schedule {
	now := time.Now().UTC()
	return models.Schedule{
		ID:               models.NewScheduleID(),
		WeekStartDate:    req.WeekStartDate,
		Shifts:           shifts,
		TotalLaborHours:  analysis.TotalHours,
		TotalLaborCost:   analysis.TotalCost,
		ProjectedRevenue: req.Forecasts.TotalRevenue(),
		LaborPercentage:  analysis.LaborPercentage,
		Status:           models.StatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// coverageWarnings reports days where the scheduled headcount for a role
// falls short of the requested minimum. Coverage is advisory: shortfalls are
// surfaced, never repaired or rejected.
func (s *Service) coverageWarnings(shifts []models.Shift, constraints models.Constraints) []string {
	if len(constraints.MinCoverage) == 0 {
		return nil
	}

	staffed := make(map[string]map[models.Role]map[string]struct{})
	dates := make(map[string]struct{})
	for _, shift := range shifts {
		dates[shift.Date] = struct{}{}
		if staffed[shift.Date] == nil {
			staffed[shift.Date] = make(map[models.Role]map[string]struct{})
		}
		if staffed[shift.Date][shift.Role] == nil {
			staffed[shift.Date][shift.Role] = make(map[string]struct{})
		}
		staffed[shift.Date][shift.Role][shift.EmployeeID] = struct{}{}
	}

	sortedDates := make([]string, 0, len(dates))
	for date := range dates {
		sortedDates = append(sortedDates, date)
	}
	sort.Strings(sortedDates)

	var warnings []string
	for _, date := range sortedDates {
		for _, role := range models.Roles {
			required := constraints.MinCoverage[role]
			if required <= 0 {
				continue
			}
			if got := len(staffed[date][role]); got < required {
				warnings = append(warnings, fmt.Sprintf("Coverage below minimum for %s on %s: %d scheduled, %d required", role, date, got, required))
			}
		}
	}
	return warnings
}

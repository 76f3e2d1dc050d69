package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/config"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/repository/mongodb"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/repository/roster"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/service/events"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/service/forecast"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/service/scheduling"
)

// Scheduler runs the weekly auto-generation job: each run drafts next
// week's schedule ahead of time so a plan exists even when nobody asks.
type Scheduler struct {
	cron        *cron.Cron
	generator   *scheduling.Service
	repo        mongodb.Repository
	roster      roster.Provider
	forecasts   forecast.Provider
	calendar    events.Calendar
	constraints models.Constraints
	cfg         config.SchedulingConfig
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(
	cfg config.SchedulingConfig,
	generator *scheduling.Service,
	repo mongodb.Repository,
	rosterProvider roster.Provider,
	forecastProvider forecast.Provider,
	calendar events.Calendar,
	constraints models.Constraints,
	logger *zap.Logger,
) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:        cron.New(),
		generator:   generator,
		repo:        repo,
		roster:      rosterProvider,
		forecasts:   forecastProvider,
		calendar:    calendar,
		constraints: constraints,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers and starts the weekly generation job.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("cron", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.generateNextWeek); err != nil {
		s.logger.Error("failed to schedule weekly generation", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) generateNextWeek() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	weekStart := models.WeekStartDate(time.Now().AddDate(0, 0, 7))
	s.logger.Info("auto-generating schedule", zap.String("week_start", weekStart))

	employees, err := s.roster.ListEmployees(ctx)
	if err != nil {
		s.logger.Error("failed loading roster", zap.Error(err))
		return
	}

	forecasts, err := s.forecasts.WeekForecast(ctx, weekStart)
	if err != nil {
		s.logger.Error("failed loading forecast", zap.Error(err))
		return
	}

	dates := models.WeekDates(weekStart)
	result := s.generator.Generate(ctx, models.GenerationRequest{
		WeekStartDate: weekStart,
		Employees:     employees,
		Forecasts:     forecasts,
		SpecialEvents: s.calendar.EventsForRange(dates[0], dates[len(dates)-1]),
		Constraints:   s.constraints,
	})

	if err := s.repo.SaveSchedule(ctx, result.Schedule); err != nil {
		s.logger.Error("failed saving auto-generated schedule", zap.Error(err))
		return
	}

	s.logger.Info("schedule auto-generated",
		zap.String("week_start", weekStart),
		zap.Int("shifts", len(result.Schedule.Shifts)),
		zap.Int("warnings", len(result.Warnings)))
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/repository/mongodb"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/repository/roster"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/service/events"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/service/forecast"
	"github.com/DylanJDombrowski/pizzai-dashboard/internal/service/scheduling"
)

// Generator is the slice of the scheduling service the HTTP layer invokes.
type Generator interface {
	Generate(ctx context.Context, req models.GenerationRequest) models.GenerationResult
}

// EventStore accepts ad-hoc custom events alongside the annual calendar.
type EventStore interface {
	AddCustomEvent(event models.SpecialEvent)
}

// ScheduleHandler exposes schedule generation, retrieval and export over HTTP.
type ScheduleHandler struct {
	generator   Generator
	repo        mongodb.Repository
	roster      roster.Provider
	forecasts   forecast.Provider
	calendar    events.Calendar
	eventStore  EventStore
	constraints models.Constraints
	logger      *zap.Logger
}

// NewScheduleHandler constructs the HTTP handler adapter.
func NewScheduleHandler(
	generator Generator,
	repo mongodb.Repository,
	rosterProvider roster.Provider,
	forecastProvider forecast.Provider,
	calendar events.Calendar,
	eventStore EventStore,
	constraints models.Constraints,
	logger *zap.Logger,
) *ScheduleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleHandler{
		generator:   generator,
		repo:        repo,
		roster:      rosterProvider,
		forecasts:   forecastProvider,
		calendar:    calendar,
		eventStore:  eventStore,
		constraints: constraints,
		logger:      logger,
	}
}

type generateRequest struct {
	WeekStartDate string              `json:"week_start_date"`
	Constraints   *models.Constraints `json:"constraints,omitempty"`
}

// Generate builds and persists the schedule for a week. The week start date
// is normalized to its Monday; omitting it schedules the upcoming week.
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	weekStart, err := normalizeWeekStart(req.WeekStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employees, err := h.roster.ListEmployees(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading roster", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load employee roster"})
		return
	}

	forecasts, err := h.forecasts.WeekForecast(c.Request.Context(), weekStart)
	if err != nil {
		h.logger.Error("failed loading forecast", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load demand forecast"})
		return
	}

	constraints := h.constraints
	if req.Constraints != nil {
		constraints = *req.Constraints
	}

	dates := models.WeekDates(weekStart)
	result := h.generator.Generate(c.Request.Context(), models.GenerationRequest{
		WeekStartDate: weekStart,
		Employees:     employees,
		Forecasts:     forecasts,
		SpecialEvents: h.calendar.EventsForRange(dates[0], dates[len(dates)-1]),
		Constraints:   constraints,
	})

	if err := h.repo.SaveSchedule(c.Request.Context(), result.Schedule); err != nil {
		h.logger.Error("failed saving schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to persist schedule"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// List returns every stored schedule.
func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.repo.ListSchedules(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing schedules", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to list schedules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// Get returns the schedule for a week start date.
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, ok := h.loadSchedule(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// ExportCSV renders the week's schedule as a CSV attachment.
func (h *ScheduleHandler) ExportCSV(c *gin.Context) {
	schedule, ok := h.loadSchedule(c)
	if !ok {
		return
	}

	employees, err := h.roster.ListEmployees(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading roster for export", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load employee roster"})
		return
	}

	csv := scheduling.ExportCSV(schedule, employees)
	c.Header("Content-Disposition", `attachment; filename="schedule_`+schedule.WeekStartDate+`.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

// ListEvents returns calendar events, optionally bounded by start/end query
// parameters. Without bounds it covers the next 30 days.
func (h *ScheduleHandler) ListEvents(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		now := time.Now()
		start = now.Format(models.DateLayout)
		end = now.AddDate(0, 0, 30).Format(models.DateLayout)
	}

	c.JSON(http.StatusOK, gin.H{"events": h.calendar.EventsForRange(start, end)})
}

type customEventRequest struct {
	Name             string           `json:"name" binding:"required"`
	Date             string           `json:"date" binding:"required"`
	Type             models.EventType `json:"type" binding:"required"`
	ImpactMultiplier float64          `json:"impact_multiplier" binding:"required"`
	Description      string           `json:"description"`
}

// CreateEvent registers an ad-hoc custom event on the calendar.
func (h *ScheduleHandler) CreateEvent(c *gin.Context) {
	var req customEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid event payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if req.ImpactMultiplier <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "impact_multiplier must be positive"})
		return
	}

	event := models.NewCustomEvent(req.Name, req.Date, req.Type, req.ImpactMultiplier, req.Description)
	h.eventStore.AddCustomEvent(event)

	c.JSON(http.StatusCreated, event)
}

func (h *ScheduleHandler) loadSchedule(c *gin.Context) (models.Schedule, bool) {
	week := c.Param("week")
	if _, err := time.Parse(models.DateLayout, week); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be YYYY-MM-DD"})
		return models.Schedule{}, false
	}

	schedule, err := h.repo.ScheduleForWeek(c.Request.Context(), week)
	if errors.Is(err, mongodb.ErrScheduleNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no schedule for week " + week})
		return models.Schedule{}, false
	}
	if err != nil {
		h.logger.Error("failed loading schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to load schedule"})
		return models.Schedule{}, false
	}
	return schedule, true
}

// normalizeWeekStart aligns the requested date to its Monday. An empty date
// targets the week after the current one.
func normalizeWeekStart(date string) (string, error) {
	if date == "" {
		return models.WeekStartDate(time.Now().AddDate(0, 0, 7)), nil
	}

	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return "", errors.New("week_start_date must be YYYY-MM-DD")
	}
	return models.WeekStartDate(t), nil
}

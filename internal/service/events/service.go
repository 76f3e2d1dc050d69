package events

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// AdjustedDemand is the result of applying special events to a base forecast.
type AdjustedDemand struct {
	AdjustedOrders  int                   `json:"adjusted_orders"`
	Events          []models.SpecialEvent `json:"events"`
	TotalMultiplier float64               `json:"total_multiplier"`
}

// Service applies the special-events calendar to baseline demand forecasts
// and produces staffing guidance.
type Service struct {
	calendar Calendar
	logger   *zap.Logger
}

// NewService wires an event adjustment service over the given calendar.
func NewService(calendar Calendar, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{calendar: calendar, logger: logger}
}

// AdjustedDemand scales baseOrders by the events on the given date. When
// several events land on one date only the highest multiplier applies; the
// effects never stack.
func (s *Service) AdjustedDemand(baseOrders int, date string) AdjustedDemand {
	matched := s.calendar.EventsForDate(date)
	if len(matched) == 0 {
		return AdjustedDemand{
			AdjustedOrders:  baseOrders,
			Events:          []models.SpecialEvent{},
			TotalMultiplier: 1.0,
		}
	}

	maxMultiplier := matched[0].ImpactMultiplier
	for _, event := range matched[1:] {
		if event.ImpactMultiplier > maxMultiplier {
			maxMultiplier = event.ImpactMultiplier
		}
	}

	return AdjustedDemand{
		AdjustedOrders:  int(math.Round(float64(baseOrders) * maxMultiplier)),
		Events:          matched,
		TotalMultiplier: maxMultiplier,
	}
}

// StaffingRecommendations renders advisory strings for the events on a date,
// in event match order.
func (s *Service) StaffingRecommendations(date string) []string {
	var recommendations []string

	for _, event := range s.calendar.EventsForDate(date) {
		if event.Customizations != nil && event.Customizations.StaffingNotes != "" {
			recommendations = append(recommendations, fmt.Sprintf("%s: %s", event.Name, event.Customizations.StaffingNotes))
		}

		increase := int(math.Round((event.ImpactMultiplier - 1) * 100))
		if event.ImpactMultiplier > 2.0 {
			recommendations = append(recommendations, fmt.Sprintf("CRITICAL: %s expects %d%% increase in orders", event.Name, increase))
		} else if event.ImpactMultiplier > 1.5 {
			recommendations = append(recommendations, fmt.Sprintf("HIGH: %s expects %d%% increase in orders", event.Name, increase))
		}

		if event.Customizations != nil && event.Customizations.ExtendedHours {
			recommendations = append(recommendations, fmt.Sprintf("Consider extended hours for %s", event.Name))
		}

		if event.Customizations != nil && len(event.Customizations.RecommendedRoles) > 0 {
			names := make([]string, 0, len(event.Customizations.RecommendedRoles))
			for _, role := range event.Customizations.RecommendedRoles {
				names = append(names, string(role))
			}
			recommendations = append(recommendations, fmt.Sprintf("Priority roles for %s: %s", event.Name, strings.Join(names, ", ")))
		}
	}

	return recommendations
}

// NextUpcomingEvent finds the earliest event on or after the given time, or
// nil when nothing is scheduled within the next year.
func (s *Service) NextUpcomingEvent(from time.Time) *models.SpecialEvent {
	start := from.Format(models.DateLayout)
	end := from.AddDate(1, 0, 0).Format(models.DateLayout)

	upcoming := s.calendar.EventsForRange(start, end)
	if len(upcoming) == 0 {
		return nil
	}

	sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })
	next := upcoming[0]
	return &next
}

// HighImpactWithin lists high and very-high impact events in the next N days.
func (s *Service) HighImpactWithin(from time.Time, days int) []models.SpecialEvent {
	start := from.Format(models.DateLayout)
	end := from.AddDate(0, 0, days).Format(models.DateLayout)

	var highImpact []models.SpecialEvent
	for _, event := range s.calendar.EventsForRange(start, end) {
		if event.Impact == models.ImpactVeryHigh || event.Impact == models.ImpactHigh {
			highImpact = append(highImpact, event)
		}
	}
	return highImpact
}

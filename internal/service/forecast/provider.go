package forecast

import (
	"context"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// Provider supplies the demand forecast for a schedule week. The scheduling
// core treats forecasting as opaque; anything honoring this contract works.
type Provider interface {
	WeekForecast(ctx context.Context, weekStartDate string) (models.WeekForecast, error)
}

// baselineOrders is the house demand curve: expected order volume per
// weekday with no events or weather effects. Weekend dinner traffic
// dominates a pizza restaurant's week.
var baselineOrders = map[models.DayOfWeek]int{
	models.Monday:    60,
	models.Tuesday:   65,
	models.Wednesday: 70,
	models.Thursday:  80,
	models.Friday:    140,
	models.Saturday:  150,
	models.Sunday:    110,
}

// baselinePeakWindow estimates the busiest service window per weekday.
var baselinePeakWindow = map[models.DayOfWeek]string{
	models.Monday:    "17:00-19:00",
	models.Tuesday:   "17:00-19:00",
	models.Wednesday: "17:00-19:30",
	models.Thursday:  "17:30-20:00",
	models.Friday:    "17:30-21:00",
	models.Saturday:  "17:00-21:00",
	models.Sunday:    "16:00-19:00",
}

// averageOrderValue converts predicted orders into a revenue estimate.
const averageOrderValue = 28.50

// StaticProvider produces the baseline curve with no external inputs. It
// backs tests and deployments without a weather API key.
type StaticProvider struct{}

// NewStaticProvider returns a deterministic forecast provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// WeekForecast expands the baseline curve over the seven dates of the week.
func (p *StaticProvider) WeekForecast(_ context.Context, weekStartDate string) (models.WeekForecast, error) {
	daily := make([]models.DailyForecast, 0, 7)
	for _, date := range models.WeekDates(weekStartDate) {
		weekday := models.DayName(date)
		orders := baselineOrders[weekday]
		daily = append(daily, models.DailyForecast{
			Date:            date,
			PredictedOrders: orders,
			RevenueEstimate: float64(orders) * averageOrderValue,
			PeakWindow:      baselinePeakWindow[weekday],
		})
	}

	return models.WeekForecast{WeekStartDate: weekStartDate, Daily: daily}, nil
}

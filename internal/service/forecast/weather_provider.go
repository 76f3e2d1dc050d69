package forecast

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
	"github.com/DylanJDombrowski/pizzai-dashboard/pkg/clients/weather"
)

// WeatherClient is the slice of the weather API the provider consumes.
type WeatherClient interface {
	DailyForecast(ctx context.Context) (map[string]weather.DailyOutlook, error)
}

// WeatherProvider adjusts the baseline demand curve with the weather
// outlook: bad weather pushes people toward delivery, heavy snow keeps
// drivers off the road. When the weather API is unreachable it serves the
// plain baseline rather than failing the forecast.
type WeatherProvider struct {
	client WeatherClient
	static *StaticProvider
	logger *zap.Logger
}

// NewWeatherProvider wires a weather-aware forecast provider.
func NewWeatherProvider(client WeatherClient, logger *zap.Logger) *WeatherProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherProvider{client: client, static: NewStaticProvider(), logger: logger}
}

// WeekForecast produces seven daily forecasts for the week, weather-adjusted
// where an outlook is available. The 5-day API horizon means later days of
// the week may stay at baseline.
func (p *WeatherProvider) WeekForecast(ctx context.Context, weekStartDate string) (models.WeekForecast, error) {
	base, err := p.static.WeekForecast(ctx, weekStartDate)
	if err != nil {
		return models.WeekForecast{}, err
	}

	outlooks, err := p.client.DailyForecast(ctx)
	if err != nil {
		p.logger.Warn("weather lookup failed, serving baseline forecast", zap.Error(err))
		return base, nil
	}

	for i, day := range base.Daily {
		outlook, ok := outlooks[day.Date]
		if !ok {
			continue
		}

		multiplier := demandMultiplier(outlook)
		adjusted := int(math.Round(float64(day.PredictedOrders) * multiplier))
		base.Daily[i].PredictedOrders = adjusted
		base.Daily[i].RevenueEstimate = float64(adjusted) * averageOrderValue
	}

	return base, nil
}

// demandMultiplier estimates how an outlook moves order volume. Rain is a
// net positive for a delivery-heavy restaurant; severe snow suppresses
// everything.
func demandMultiplier(outlook weather.DailyOutlook) float64 {
	switch outlook.Condition {
	case "Snow":
		return 0.8
	case "Thunderstorm":
		return 1.1
	case "Rain", "Light Rain", "Drizzle":
		return 1.15
	}

	if outlook.PrecipChance >= 70 {
		return 1.1
	}
	return 1.0
}

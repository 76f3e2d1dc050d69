package forecast

import (
	"context"
	"errors"
	"testing"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
	"github.com/DylanJDombrowski/pizzai-dashboard/pkg/clients/weather"
)

func TestStaticWeekForecast(t *testing.T) {
	provider := NewStaticProvider()

	got, err := provider.WeekForecast(context.Background(), "2025-11-24")
	if err != nil {
		t.Fatalf("WeekForecast: %v", err)
	}

	if got.WeekStartDate != "2025-11-24" {
		t.Errorf("WeekStartDate = %q", got.WeekStartDate)
	}
	if len(got.Daily) != 7 {
		t.Fatalf("got %d daily forecasts, want 7", len(got.Daily))
	}

	// Monday first, Sunday last, matching the schedule week.
	monday := got.Daily[0]
	if monday.Date != "2025-11-24" || monday.PredictedOrders != baselineOrders[models.Monday] {
		t.Errorf("Monday forecast = %+v", monday)
	}
	sunday := got.Daily[6]
	if sunday.Date != "2025-11-30" || sunday.PredictedOrders != baselineOrders[models.Sunday] {
		t.Errorf("Sunday forecast = %+v", sunday)
	}

	for _, day := range got.Daily {
		wantRevenue := float64(day.PredictedOrders) * averageOrderValue
		if day.RevenueEstimate != wantRevenue {
			t.Errorf("%s revenue = %v, want %v", day.Date, day.RevenueEstimate, wantRevenue)
		}
		if day.PeakWindow == "" {
			t.Errorf("%s has no peak window", day.Date)
		}
	}
}

type fakeWeather struct {
	outlooks map[string]weather.DailyOutlook
	err      error
}

func (f *fakeWeather) DailyForecast(_ context.Context) (map[string]weather.DailyOutlook, error) {
	return f.outlooks, f.err
}

func TestWeatherProviderAdjustsDemand(t *testing.T) {
	client := &fakeWeather{outlooks: map[string]weather.DailyOutlook{
		"2025-11-24": {Date: "2025-11-24", Condition: "Rain", PrecipChance: 90},
		"2025-11-25": {Date: "2025-11-25", Condition: "Snow", PrecipChance: 80},
		"2025-11-26": {Date: "2025-11-26", Condition: "Clear", PrecipChance: 10},
	}}
	provider := NewWeatherProvider(client, nil)

	got, err := provider.WeekForecast(context.Background(), "2025-11-24")
	if err != nil {
		t.Fatalf("WeekForecast: %v", err)
	}

	// Rain: 60 * 1.15 = 69. Snow: 65 * 0.8 = 52. Clear stays at baseline.
	if got.Daily[0].PredictedOrders != 69 {
		t.Errorf("rainy Monday orders = %d, want 69", got.Daily[0].PredictedOrders)
	}
	if got.Daily[1].PredictedOrders != 52 {
		t.Errorf("snowy Tuesday orders = %d, want 52", got.Daily[1].PredictedOrders)
	}
	if got.Daily[2].PredictedOrders != baselineOrders[models.Wednesday] {
		t.Errorf("clear Wednesday orders = %d, want baseline", got.Daily[2].PredictedOrders)
	}

	// Days past the outlook horizon stay at baseline.
	if got.Daily[6].PredictedOrders != baselineOrders[models.Sunday] {
		t.Errorf("Sunday orders = %d, want baseline", got.Daily[6].PredictedOrders)
	}

	// Revenue tracks the adjusted order count.
	if got.Daily[0].RevenueEstimate != 69*averageOrderValue {
		t.Errorf("rainy Monday revenue = %v", got.Daily[0].RevenueEstimate)
	}
}

func TestWeatherProviderFallsBackOnError(t *testing.T) {
	provider := NewWeatherProvider(&fakeWeather{err: errors.New("api down")}, nil)

	got, err := provider.WeekForecast(context.Background(), "2025-11-24")
	if err != nil {
		t.Fatalf("weather failure must not fail the forecast: %v", err)
	}
	if len(got.Daily) != 7 {
		t.Fatalf("got %d daily forecasts, want 7", len(got.Daily))
	}
	for i, day := range got.Daily {
		weekday := models.DayName(day.Date)
		if day.PredictedOrders != baselineOrders[weekday] {
			t.Errorf("day %d orders = %d, want baseline %d", i, day.PredictedOrders, baselineOrders[weekday])
		}
	}
}

func TestDemandMultiplier(t *testing.T) {
	tests := []struct {
		name    string
		outlook weather.DailyOutlook
		want    float64
	}{
		{"snow suppresses", weather.DailyOutlook{Condition: "Snow"}, 0.8},
		{"thunderstorm boosts", weather.DailyOutlook{Condition: "Thunderstorm"}, 1.1},
		{"rain boosts", weather.DailyOutlook{Condition: "Rain"}, 1.15},
		{"drizzle boosts", weather.DailyOutlook{Condition: "Drizzle"}, 1.15},
		{"high precip chance", weather.DailyOutlook{Condition: "Clouds", PrecipChance: 75}, 1.1},
		{"clear day", weather.DailyOutlook{Condition: "Clear", PrecipChance: 5}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := demandMultiplier(tt.outlook); got != tt.want {
				t.Errorf("demandMultiplier(%+v) = %v, want %v", tt.outlook, got, tt.want)
			}
		})
	}
}

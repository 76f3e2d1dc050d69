package weather

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
)

// apiURL is a var so tests can point the client at an httptest server.
var apiURL = "https://api.openweathermap.org/data/2.5/forecast"

// SetAPIURL overrides the OpenWeatherMap endpoint. Intended for tests only.
func SetAPIURL(u string) { apiURL = u }

// DailyOutlook is a simplified one-day weather summary.
type DailyOutlook struct {
	Date         string `json:"date"`
	TempF        int    `json:"temp_f"`
	Condition    string `json:"condition"`
	PrecipChance int    `json:"precip_chance"`
}

// Client fetches forecasts from the OpenWeatherMap 5-day/3-hour API.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	lat, lon   string
}

// NewClient builds a weather client for a fixed restaurant location.
func NewClient(apiKey, lat, lon string) *Client {
	client := resty.New().SetTimeout(10 * time.Second)
	return &Client{httpClient: client, apiKey: apiKey, lat: lat, lon: lon}
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
		} `json:"weather"`
		Pop float64 `json:"pop"`
	} `json:"list"`
}

// DailyForecast aggregates the 3-hour readings into per-day outlooks, keyed
// by ISO date. The API covers roughly the next five days.
func (c *Client) DailyForecast(ctx context.Context) (map[string]DailyOutlook, error) {
	var respBody forecastResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   c.lat,
			"lon":   c.lon,
			"appid": c.apiKey,
			"units": "metric",
		}).
		SetResult(&respBody).
		Get(apiURL)

	if err != nil {
		return nil, fmt.Errorf("weather api call: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather api error: %s", resp.Status())
	}

	type accumulator struct {
		tempSum   float64
		samples   int
		maxPop    float64
		condition string
	}

	acc := make(map[string]*accumulator)
	for _, item := range respBody.List {
		if len(item.Weather) == 0 {
			continue
		}

		date := time.Unix(item.Dt, 0).UTC().Format("2006-01-02")
		day, ok := acc[date]
		if !ok {
			day = &accumulator{}
			acc[date] = day
		}

		day.tempSum += item.Main.Temp
		day.samples++
		condition := mapCondition(item.Weather[0].ID, item.Weather[0].Description)
		// The worst reading of the day drives the reported condition.
		if item.Pop >= day.maxPop || day.condition == "" {
			day.maxPop = item.Pop
			day.condition = condition
		}
	}

	days := make(map[string]DailyOutlook, len(acc))
	for date, day := range acc {
		days[date] = DailyOutlook{
			Date:         date,
			TempF:        celsiusToFahrenheit(day.tempSum / float64(day.samples)),
			Condition:    day.condition,
			PrecipChance: int(math.Round(day.maxPop * 100)),
		}
	}

	return days, nil
}

// mapCondition reduces OpenWeatherMap condition codes to the handful of
// categories the forecast model cares about.
func mapCondition(weatherID int, description string) string {
	switch {
	case weatherID >= 200 && weatherID < 300:
		return "Thunderstorm"
	case weatherID >= 300 && weatherID < 400:
		return "Drizzle"
	case weatherID == 500 || weatherID == 501:
		return "Light Rain"
	case weatherID >= 500 && weatherID < 600:
		return "Rain"
	case weatherID >= 600 && weatherID < 700:
		return "Snow"
	case weatherID >= 700 && weatherID < 800:
		return "Fog"
	case weatherID == 800:
		return "Sunny"
	case weatherID == 801 || weatherID == 802:
		return "Cloudy"
	case weatherID == 803 || weatherID == 804:
		return "Overcast"
	default:
		return description
	}
}

func celsiusToFahrenheit(celsius float64) int {
	return int(math.Round(celsius*9/5 + 32))
}

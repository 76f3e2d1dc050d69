package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server     ServerConfig
	AI         AIConfig
	Weather    WeatherConfig
	Sheets     SheetsConfig
	MongoDB    MongoDBConfig
	Scheduling SchedulingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// AIConfig holds settings for the LLM shift proposer. An empty key disables
// the primary generation path; the fallback still serves schedules.
type AIConfig struct {
	AnthropicKey string
}

// WeatherConfig holds OpenWeatherMap credentials and the restaurant
// location. An empty key switches forecasting to the static baseline.
type WeatherConfig struct {
	APIKey    string
	Latitude  string
	Longitude string
}

// SheetsConfig contains configuration required to read the employee roster
// from Google Sheets. Both fields empty selects the built-in dev roster.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SchedulingConfig exposes the scheduling heuristics and the weekly
// auto-generation cron expression.
type SchedulingConfig struct {
	OrdersPerStaff       int
	DinnerOrderThreshold int
	TargetLaborPercent   float64
	CronSchedule         string
	Timezone             string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	ordersPerStaff, err := getenvInt("ORDERS_PER_STAFF", 30)
	if err != nil {
		return nil, err
	}
	dinnerThreshold, err := getenvInt("DINNER_ORDER_THRESHOLD", 100)
	if err != nil {
		return nil, err
	}
	targetLaborPercent, err := getenvFloat("TARGET_LABOR_PERCENT", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		AI: AIConfig{
			AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		},
		Weather: WeatherConfig{
			APIKey:    os.Getenv("OPENWEATHER_API_KEY"),
			Latitude:  getenvWithDefault("RESTAURANT_LAT", "40.7128"),
			Longitude: getenvWithDefault("RESTAURANT_LON", "-74.0060"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("ROSTER_SHEET_ID"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "pizzai"),
		},
		Scheduling: SchedulingConfig{
			OrdersPerStaff:       ordersPerStaff,
			DinnerOrderThreshold: dinnerThreshold,
			TargetLaborPercent:   targetLaborPercent,
			CronSchedule:         getenvWithDefault("SCHEDULE_CRON", "0 18 * * 5"),
			Timezone:             getenvWithDefault("TIMEZONE", "America/New_York"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. Most
// integrations degrade gracefully when absent, so only hard requirements
// are enforced here.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.MongoDB.URI == "" {
		return errors.New("MONGODB_URI must be provided")
	}
	if c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.Scheduling.OrdersPerStaff <= 0 {
		return errors.New("ORDERS_PER_STAFF must be positive")
	}
	if c.Scheduling.DinnerOrderThreshold <= 0 {
		return errors.New("DINNER_ORDER_THRESHOLD must be positive")
	}
	if c.Scheduling.TargetLaborPercent <= 0 {
		return errors.New("TARGET_LABOR_PERCENT must be positive")
	}
	if c.Scheduling.CronSchedule == "" {
		return errors.New("SCHEDULE_CRON must be provided")
	}

	// The sheets integration needs both halves or neither.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and ROSTER_SHEET_ID must be set together")
	}

	return nil
}

// SheetsEnabled reports whether a roster spreadsheet is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getenvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return parsed, nil
}

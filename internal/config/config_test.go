package config

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so tests see only what they set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT",
		"ANTHROPIC_API_KEY",
		"OPENWEATHER_API_KEY",
		"RESTAURANT_LAT",
		"RESTAURANT_LON",
		"GOOGLE_SHEETS_CREDENTIALS_PATH",
		"ROSTER_SHEET_ID",
		"MONGODB_URI",
		"MONGODB_DB_NAME",
		"ORDERS_PER_STAFF",
		"DINNER_ORDER_THRESHOLD",
		"TARGET_LABOR_PERCENT",
		"SCHEDULE_CRON",
		"TIMEZONE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("testdata/does-not-exist.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.MongoDB.URI != "mongodb://localhost:27017" {
		t.Errorf("MongoDB URI = %q", cfg.MongoDB.URI)
	}
	if cfg.MongoDB.DBName != "pizzai" {
		t.Errorf("MongoDB DBName = %q", cfg.MongoDB.DBName)
	}
	if cfg.Scheduling.OrdersPerStaff != 30 {
		t.Errorf("OrdersPerStaff = %d, want 30", cfg.Scheduling.OrdersPerStaff)
	}
	if cfg.Scheduling.DinnerOrderThreshold != 100 {
		t.Errorf("DinnerOrderThreshold = %d, want 100", cfg.Scheduling.DinnerOrderThreshold)
	}
	if cfg.Scheduling.TargetLaborPercent != 30 {
		t.Errorf("TargetLaborPercent = %v, want 30", cfg.Scheduling.TargetLaborPercent)
	}
	if cfg.Scheduling.CronSchedule != "0 18 * * 5" {
		t.Errorf("CronSchedule = %q", cfg.Scheduling.CronSchedule)
	}
	if cfg.AI.AnthropicKey != "" {
		t.Errorf("AnthropicKey = %q, want empty", cfg.AI.AnthropicKey)
	}
	if cfg.SheetsEnabled() {
		t.Error("SheetsEnabled() = true with no sheet configured")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("ORDERS_PER_STAFF", "25")
	t.Setenv("TARGET_LABOR_PERCENT", "27.5")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_PATH", "/etc/creds.json")
	t.Setenv("ROSTER_SHEET_ID", "sheet123")

	cfg, err := Load("testdata/does-not-exist.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.AI.AnthropicKey != "sk-test" {
		t.Errorf("AnthropicKey = %q", cfg.AI.AnthropicKey)
	}
	if cfg.MongoDB.URI != "mongodb://db:27017" {
		t.Errorf("MongoDB URI = %q", cfg.MongoDB.URI)
	}
	if cfg.Scheduling.OrdersPerStaff != 25 {
		t.Errorf("OrdersPerStaff = %d, want 25", cfg.Scheduling.OrdersPerStaff)
	}
	if cfg.Scheduling.TargetLaborPercent != 27.5 {
		t.Errorf("TargetLaborPercent = %v, want 27.5", cfg.Scheduling.TargetLaborPercent)
	}
	if !cfg.SheetsEnabled() {
		t.Error("SheetsEnabled() = false with both halves set")
	}
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"ORDERS_PER_STAFF", "thirty"},
		{"DINNER_ORDER_THRESHOLD", "1e"},
		{"TARGET_LABOR_PERCENT", "a lot"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load("testdata/does-not-exist.env"); err == nil {
				t.Fatalf("Load accepted %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8080"},
			MongoDB: MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "pizzai"},
			Scheduling: SchedulingConfig{
				OrdersPerStaff:       30,
				DinnerOrderThreshold: 100,
				TargetLaborPercent:   30,
				CronSchedule:         "0 18 * * 5",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "APP_PORT"},
		{"missing mongo uri", func(c *Config) { c.MongoDB.URI = "" }, "MONGODB_URI"},
		{"missing db name", func(c *Config) { c.MongoDB.DBName = "" }, "MONGODB_DB_NAME"},
		{"zero orders per staff", func(c *Config) { c.Scheduling.OrdersPerStaff = 0 }, "ORDERS_PER_STAFF"},
		{"negative labor target", func(c *Config) { c.Scheduling.TargetLaborPercent = -1 }, "TARGET_LABOR_PERCENT"},
		{"missing cron", func(c *Config) { c.Scheduling.CronSchedule = "" }, "SCHEDULE_CRON"},
		{"half sheets config", func(c *Config) { c.Sheets.SpreadsheetID = "sheet123" }, "ROSTER_SHEET_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %s", err, tt.wantErr)
			}
		})
	}
}

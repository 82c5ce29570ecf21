package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func baseConfig() *Config {
	return &Config{
		Storage: StorageConfig{Driver: DriverMemory},
		Planner: PlannerConfig{
			Timezone:               "UTC",
			WeekStart:              "monday",
			MaxPerDay:              3,
			DefaultDurationMinutes: 30,
			DefaultWindowDays:      7,
		},
		Activity: ActivityConfig{HistogramCount: 7},
		Rollup:   RollupConfig{Enabled: true, Spec: "@every 15m"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mongo" }, wantErr: "storage.driver"},
		{name: "sqlite without dsn", mutate: func(c *Config) { c.Storage.Driver = DriverSQLite }, wantErr: "storage.dsn"},
		{name: "bad timezone", mutate: func(c *Config) { c.Planner.Timezone = "Mars/Olympus" }, wantErr: "planner.timezone"},
		{name: "bad week start", mutate: func(c *Config) { c.Planner.WeekStart = "someday" }, wantErr: "planner.week_start"},
		{name: "negative cap", mutate: func(c *Config) { c.Planner.MaxPerDay = -1 }, wantErr: "max_per_day"},
		{name: "zero cap disables capping", mutate: func(c *Config) { c.Planner.MaxPerDay = 0 }},
		{name: "rollup without spec", mutate: func(c *Config) { c.Rollup.Spec = "" }, wantErr: "rollup.spec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCalendar(t *testing.T) {
	cfg := baseConfig()
	cfg.Planner.WeekStart = "sun"

	cal, err := cfg.Calendar()
	if err != nil {
		t.Fatalf("Calendar() error: %v", err)
	}
	if cal.FirstWeekday() != time.Sunday {
		t.Errorf("FirstWeekday() = %v, want Sunday", cal.FirstWeekday())
	}
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("storage.driver", "SQLite")
	v.Set("storage.dsn", "file:plan.db")
	v.Set("storage.busy_timeout", "2s")
	v.Set("planner.max_per_day", 4)
	v.Set("activity.cache_ttl", "30s")
	v.Set("cors.allowed_origins", "http://a.test, http://b.test")

	cfg := fromViper(v)

	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.BusyTimeout != 2*time.Second {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Planner.MaxPerDay != 4 {
		t.Errorf("MaxPerDay = %d", cfg.Planner.MaxPerDay)
	}
	if cfg.Activity.CacheTTL != 30*time.Second {
		t.Errorf("CacheTTL = %v", cfg.Activity.CacheTTL)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
}

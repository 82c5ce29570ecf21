package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Storage StorageConfig

	// Planning
	Planner  PlannerConfig
	Activity ActivityConfig
	Rollup   RollupConfig

	RateLimit      RateLimitConfig
	CORS           CORSConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig selects the repository backend: memory, sqlite or postgres.
type StorageConfig struct {
	Driver      string
	DSN         string
	BusyTimeout time.Duration
}

type PlannerConfig struct {
	Timezone               string
	WeekStart              string
	MaxPerDay              int
	StrictCap              bool
	DefaultDurationMinutes int
	DefaultWindowDays      int
}

type ActivityConfig struct {
	HistogramCount int
	CacheSize      int
	CacheTTL       time.Duration
}

type RollupConfig struct {
	Enabled bool
	Spec    string
}

type RateLimitConfig struct {
	BreakdownPerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(viper.GetViper())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.DSN = v.GetString("storage.dsn")
	cfg.Storage.BusyTimeout = v.GetDuration("storage.busy_timeout")

	// Planner
	cfg.Planner.Timezone = v.GetString("planner.timezone")
	cfg.Planner.WeekStart = v.GetString("planner.week_start")
	cfg.Planner.MaxPerDay = v.GetInt("planner.max_per_day")
	cfg.Planner.StrictCap = v.GetBool("planner.strict_cap")
	cfg.Planner.DefaultDurationMinutes = v.GetInt("planner.default_duration_minutes")
	cfg.Planner.DefaultWindowDays = v.GetInt("planner.default_window_days")

	cfg.Activity.HistogramCount = v.GetInt("activity.histogram_count")
	cfg.Activity.CacheSize = v.GetInt("activity.cache_size")
	cfg.Activity.CacheTTL = v.GetDuration("activity.cache_ttl")

	cfg.Rollup.Enabled = v.GetBool("rollup.enabled")
	cfg.Rollup.Spec = v.GetString("rollup.spec")

	cfg.RateLimit.BreakdownPerMin = v.GetInt("rate_limit.breakdown_per_min")

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowedOrigins = splitList(v.GetStringSlice("cors.allowed_origins"))

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", DriverMemory)
	viper.SetDefault("storage.busy_timeout", "5s")

	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.week_start", "monday")
	viper.SetDefault("planner.max_per_day", 3)
	viper.SetDefault("planner.strict_cap", false)
	viper.SetDefault("planner.default_duration_minutes", 30)
	viper.SetDefault("planner.default_window_days", 7)

	viper.SetDefault("activity.histogram_count", 7)
	viper.SetDefault("activity.cache_size", 512)
	viper.SetDefault("activity.cache_ttl", "1m")

	viper.SetDefault("rollup.enabled", true)
	viper.SetDefault("rollup.spec", "@every 15m")

	viper.SetDefault("rate_limit.breakdown_per_min", 10)
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// Validate rejects settings the planner can't run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	if _, err := c.Calendar(); err != nil {
		return err
	}
	if c.Planner.MaxPerDay < 0 {
		return fmt.Errorf("planner.max_per_day must not be negative, got %d", c.Planner.MaxPerDay)
	}
	if c.Planner.DefaultDurationMinutes < 0 {
		return fmt.Errorf("planner.default_duration_minutes must not be negative")
	}
	if c.Planner.DefaultWindowDays <= 0 {
		return fmt.Errorf("planner.default_window_days must be positive")
	}
	if c.Activity.HistogramCount <= 0 {
		return fmt.Errorf("activity.histogram_count must be positive")
	}
	if c.Rollup.Enabled && c.Rollup.Spec == "" {
		return fmt.Errorf("rollup.spec is required when rollup is enabled")
	}
	return nil
}

// Calendar builds the planner calendar from the timezone and week start.
func (c *Config) Calendar() (datemath.Calendar, error) {
	ws, err := datemath.ParseWeekday(c.Planner.WeekStart)
	if err != nil {
		return datemath.Calendar{}, fmt.Errorf("planner.week_start: %w", err)
	}
	cal, err := datemath.NewCalendar(c.Planner.Timezone, ws)
	if err != nil {
		return datemath.Calendar{}, fmt.Errorf("planner.timezone: %w", err)
	}
	return cal, nil
}

// Watch reloads the config file on change and hands the new values to
// onChange. Invalid files are reported through onError and ignored. It
// returns false when no config file was loaded.
func Watch(onChange func(*Config), onError func(error)) bool {
	if viper.ConfigFileUsed() == "" {
		return false
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg := fromViper(viper.GetViper())
		if err := cfg.Validate(); err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		onChange(cfg)
	})
	viper.WatchConfig()
	return true
}

func splitList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, s := range strings.Split(r, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

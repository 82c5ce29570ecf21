package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goal-planner/config"
	_ "goal-planner/docs" // Swagger docs
	activityUC "goal-planner/internal/activity/usecase"
	"goal-planner/internal/goal"
	"goal-planner/internal/goal/calendar"
	"goal-planner/internal/goal/repository"
	"goal-planner/internal/goal/repository/memory"
	"goal-planner/internal/goal/repository/sqldb"
	goalUC "goal-planner/internal/goal/usecase"
	"goal-planner/internal/httpserver"
	"goal-planner/internal/rollup"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/gcalendar"
	"goal-planner/pkg/log"
)

// @title       Goal Planner API
// @description Goals broken down into day-capped task plans, with activity analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Goal Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if config.Watch(func(next *config.Config) {
		logger.SetLevel(next.Logger.Level)
		logger.Infof(ctx, "Config reloaded, log level %s", next.Logger.Level)
	}, func(err error) {
		logger.Warnf(ctx, "Config reload ignored: %v", err)
	}) {
		logger.Info(ctx, "Watching config file for changes")
	}

	// 3. Calendar
	cal, err := cfg.Calendar()
	if err != nil {
		logger.Errorf(ctx, "Invalid planner calendar: %v", err)
		return
	}
	logger.Infof(ctx, "Planner calendar: %s, weeks start %s", cal.Location(), cal.FirstWeekday())

	// 4. Storage
	repo, err := openRepository(ctx, cfg.Storage, cal, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open storage: %v", err)
		return
	}
	defer repo.Close()

	// 5. Use cases
	actUC := activityUC.New(logger, repo, cal, activityUC.Config{
		HistogramCount: cfg.Activity.HistogramCount,
		CacheSize:      cfg.Activity.CacheSize,
		CacheTTL:       cfg.Activity.CacheTTL,
	})

	gUC := goalUC.New(logger, repo, datemath.NewParserWithCalendar(cal), goalUC.Config{
		MaxPerDay:              cfg.Planner.MaxPerDay,
		StrictCap:              cfg.Planner.StrictCap,
		DefaultDurationMinutes: cfg.Planner.DefaultDurationMinutes,
		DefaultWindowDays:      cfg.Planner.DefaultWindowDays,
		Exporter:               newCalendarExporter(ctx, cfg.GoogleCalendar, cal, logger),
		Invalidator:            actUC,
	})

	// 6. Rollup job (optional)
	if cfg.Rollup.Enabled {
		job, err := rollup.New(logger, repo, actUC, cal, cfg.Rollup.Spec)
		if err != nil {
			logger.Errorf(ctx, "Failed to create rollup job: %v", err)
			return
		}
		if err := job.Start(ctx); err != nil {
			logger.Errorf(ctx, "Failed to start rollup job: %v", err)
			return
		}
		defer job.Stop()
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		CORSOrigins:     cfg.CORS.AllowedOrigins,
		GoalUseCase:     gUC,
		ActivityUseCase: actUC,
		Calendar:        cal,
		BreakdownPerMin: cfg.RateLimit.BreakdownPerMin,
		Ready: func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return repo.Ping(pingCtx)
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func openRepository(ctx context.Context, cfg config.StorageConfig, cal datemath.Calendar, l log.Logger) (repository.Repository, error) {
	if cfg.Driver == config.DriverMemory {
		l.Warn(ctx, "Using in-memory storage, data is lost on restart")
		return memory.New(l), nil
	}

	repo, err := sqldb.Open(ctx, sqldb.Config{
		Driver:      cfg.Driver,
		DSN:         cfg.DSN,
		BusyTimeout: cfg.BusyTimeout,
	}, cal, l)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "Storage: %s", cfg.Driver)
	return repo, nil
}

// newCalendarExporter returns nil when export is not configured or the
// credentials can't be loaded.
func newCalendarExporter(ctx context.Context, cfg config.GoogleCalendarConfig, cal datemath.Calendar, l log.Logger) goal.CalendarExporter {
	if cfg.CredentialsPath == "" {
		return nil
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return nil
	}

	l.Infof(ctx, "Google Calendar export enabled for calendar %q", cfg.CalendarID)
	return calendar.NewExporter(client, cfg.CalendarID, cal)
}

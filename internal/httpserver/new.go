package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"goal-planner/internal/activity"
	"goal-planner/internal/goal"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/log"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string

	// Domains
	goalUC          goal.UseCase
	activityUC      activity.UseCase
	cal             datemath.Calendar
	breakdownPerMin int

	// ready reports whether dependencies can serve traffic. Nil means always.
	ready func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string

	GoalUseCase     goal.UseCase
	ActivityUseCase activity.UseCase
	Calendar        datemath.Calendar
	BreakdownPerMin int

	Ready func() error
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		corsOrigins:     cfg.CORSOrigins,
		goalUC:          cfg.GoalUseCase,
		activityUC:      cfg.ActivityUseCase,
		cal:             cfg.Calendar,
		breakdownPerMin: cfg.BreakdownPerMin,
		ready:           cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.goalUC == nil || srv.activityUC == nil {
		return errors.New("goal and activity use cases are required")
	}
	return nil
}

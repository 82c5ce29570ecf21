package sqldb

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"goal-planner/internal/goal/repository"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/log"
)

//go:embed migrations.sql
var migrationsFS embed.FS

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config selects the SQL backend.
type Config struct {
	Driver      string
	DSN         string
	BusyTimeout time.Duration
}

type implRepository struct {
	db       *sql.DB
	l        log.Logger
	cal      datemath.Calendar
	postgres bool

	now   func() time.Time
	newID func() string
}

// Open connects to the configured database, applies the schema and returns
// a Repository. Dates are read back as calendar days in cal's zone.
func Open(ctx context.Context, cfg Config, cal datemath.Calendar, l log.Logger) (repository.Repository, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "sqlite3" {
		driver = DriverSQLite
	}
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, errors.New("unknown sql driver: " + cfg.Driver)
	}
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, errors.New("sql dsn is required")
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		// SQLite prefers a single writer.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		applyPragmas(ctx, db, sqlitePragmas(cfg), l)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	r := New(db, driver == DriverPostgres, cal, l)
	if err := r.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

// New wraps an existing connection. postgres switches placeholders to $n.
func New(db *sql.DB, postgres bool, cal datemath.Calendar, l log.Logger) *implRepository {
	if db == nil {
		panic("goal/repository/sqldb: db is required")
	}
	return &implRepository{
		db:       db,
		l:        l,
		cal:      cal,
		postgres: postgres,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (r *implRepository) migrate(ctx context.Context) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, string(b))
	return err
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *implRepository) Close() error {
	return r.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("goal/repository/sqldb.%s", method)
}

// q rewrites ? placeholders for the active driver.
func (r *implRepository) q(query string) string {
	if !r.postgres {
		return query
	}
	return rebind(query)
}

// rebind turns ? placeholders into $1, $2, ... skipping quoted literals.
func rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
			b.WriteByte(ch)
		case ch == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func sqlitePragmas(cfg Config) []string {
	var pragmas []string
	if cfg.BusyTimeout > 0 {
		pragmas = append(pragmas, fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()))
	}
	return append(pragmas, "PRAGMA journal_mode = WAL", "PRAGMA synchronous = NORMAL")
}

// applyPragmas runs each pragma and returns how many failed. Failures are
// logged, not fatal.
func applyPragmas(ctx context.Context, db *sql.DB, pragmas []string, l log.Logger) int {
	failed := 0
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			l.Warnf(ctx, "sqldb.Open: %s: %v", p, err)
			failed++
		}
	}
	return failed
}

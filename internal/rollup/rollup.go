// Package rollup periodically recomputes the stored week/month activity
// counts for every user that owns tasks.
package rollup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
	pkgLog "goal-planner/pkg/log"
)

const DefaultSpec = "@every 15m"

// OwnerLister returns the users that have tasks.
type OwnerLister interface {
	ListTaskOwners(ctx context.Context) ([]string, error)
}

// StatsComputer recomputes and stores one user's rollup.
type StatsComputer interface {
	ComputeStats(ctx context.Context, userID string) (model.ActivityStats, error)
}

// Job runs the rollup on a cron schedule.
type Job struct {
	l      pkgLog.Logger
	owners OwnerLister
	stats  StatsComputer
	spec   string
	cal    datemath.Calendar
	parser cron.Parser

	mu sync.Mutex
	c  *cron.Cron
}

// New validates spec and returns a stopped Job.
func New(l pkgLog.Logger, owners OwnerLister, stats StatsComputer, cal datemath.Calendar, spec string) (*Job, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(spec); err != nil {
		return nil, fmt.Errorf("invalid rollup spec %q: %w", spec, err)
	}

	return &Job{
		l:      l,
		owners: owners,
		stats:  stats,
		spec:   spec,
		cal:    cal,
		parser: parser,
	}, nil
}

// Start schedules the job in the calendar's location. Overlapping runs are skipped.
func (j *Job) Start(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.c != nil {
		return errors.New("rollup already started")
	}

	c := cron.New(
		cron.WithParser(j.parser),
		cron.WithLocation(j.cal.Location()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(j.spec, func() {
		if _, err := j.RunOnce(ctx); err != nil {
			j.l.Warnf(ctx, "rollup.Job: run finished with errors: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule rollup: %w", err)
	}

	c.Start()
	j.c = c
	j.l.Infof(ctx, "rollup.Job: scheduled %q in %s", j.spec, j.cal.Location())
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (j *Job) Stop() {
	j.mu.Lock()
	c := j.c
	j.c = nil
	j.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
}

// RunOnce recomputes the rollup for every task owner. Per-user failures don't
// stop the run; they are returned joined.
func (j *Job) RunOnce(ctx context.Context) (int, error) {
	users, err := j.owners.ListTaskOwners(ctx)
	if err != nil {
		j.l.Errorf(ctx, "rollup.RunOnce ListTaskOwners: %v", err)
		return 0, err
	}

	var errs []error
	updated := 0
	for _, u := range users {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if _, err := j.stats.ComputeStats(ctx, u); err != nil {
			j.l.Errorf(ctx, "rollup.RunOnce ComputeStats %s: %v", u, err)
			errs = append(errs, fmt.Errorf("user %s: %w", u, err))
			continue
		}
		updated++
	}

	j.l.Debugf(ctx, "rollup.RunOnce: updated %d/%d users", updated, len(users))
	return updated, errors.Join(errs...)
}

package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/duration"
	"goal-planner/pkg/gcalendar"
)

// EventCreator is the part of gcalendar.Client the exporter needs.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Exporter publishes normalized tasks as all-day events.
type Exporter struct {
	client     EventCreator
	calendarID string
	cal        datemath.Calendar
}

// NewExporter builds an exporter writing to calendarID (primary when empty).
func NewExporter(client EventCreator, calendarID string, cal datemath.Calendar) *Exporter {
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	return &Exporter{client: client, calendarID: calendarID, cal: cal}
}

// ExportTasks creates one event per dated task. Undated tasks are skipped.
// Every task is attempted and the failures are returned joined.
func (e *Exporter) ExportTasks(ctx context.Context, g model.Goal, tasks []model.Task) error {
	var errs []error
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		day := e.cal.StartOfDay(*t.DueDate)
		_, err := e.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  e.calendarID,
			Summary:     t.Title,
			Description: describeTask(g, t),
			StartTime:   day,
			EndTime:     e.cal.AddDays(day, 1),
			AllDay:      true,
			Timezone:    e.cal.Location().String(),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("task %q: %w", t.Title, err))
		}
	}
	return errors.Join(errs...)
}

func describeTask(g model.Goal, t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s", g.Title)
	if t.EstimatedDuration != nil {
		if m, ok := duration.ParseMinutes(*t.EstimatedDuration); ok {
			fmt.Fprintf(&b, "\nEstimated: %s", duration.FormatMinutes(m))
		} else {
			fmt.Fprintf(&b, "\nEstimated: %s", *t.EstimatedDuration)
		}
	}
	if t.IsBundle() {
		b.WriteString("\nIncludes:")
		for _, part := range strings.Split(strings.TrimPrefix(t.Title, model.BundleTitlePrefix), "; ") {
			b.WriteString("\n- " + part)
		}
	}
	return b.String()
}

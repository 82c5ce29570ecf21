package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"goal-planner/internal/goal"
	"goal-planner/internal/model"
	"goal-planner/internal/schedule"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/duration"
)

var errUsage = errors.New(`usage:
  planctl normalize -in plan.yaml|- -start YYYY-MM-DD -end YYYY-MM-DD [-max 3] [-strict] [-tz UTC] [-week-start monday] [-today YYYY-MM-DD]
  planctl duration TEXT`)

type normalizedTask struct {
	ID                string   `yaml:"id"`
	Title             string   `yaml:"title"`
	DueDate           string   `yaml:"dueDate"`
	EstimatedDuration string   `yaml:"estimatedDuration,omitempty"`
	Minutes           int      `yaml:"minutes,omitempty"`
	BundledFrom       []string `yaml:"bundledFrom,omitempty"`
}

type normalizeOutput struct {
	ChatReply string           `yaml:"chatReply,omitempty"`
	Dropped   int              `yaml:"dropped"`
	Tasks     []normalizedTask `yaml:"tasks"`
}

func runNormalize(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	in := fs.String("in", "-", "plan file (YAML or JSON), - for stdin")
	start := fs.String("start", "", "window start date")
	end := fs.String("end", "", "window end date")
	maxPerDay := fs.Int("max", schedule.DefaultMaxPerDay, "tasks per day")
	strict := fs.Bool("strict", false, "never exceed -max, even when -max is 1")
	tz := fs.String("tz", "UTC", "IANA timezone")
	weekStart := fs.String("week-start", "monday", "first day of the week")
	today := fs.String("today", "", "reference day for relative due dates (default: today)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v\n%w", err, errUsage)
	}

	ws, err := datemath.ParseWeekday(*weekStart)
	if err != nil {
		return err
	}
	cal, err := datemath.NewCalendar(*tz, ws)
	if err != nil {
		return err
	}
	windowStart, err := cal.ParseDate(*start)
	if err != nil {
		return fmt.Errorf("-start: %w", err)
	}
	windowEnd, err := cal.ParseDate(*end)
	if err != nil {
		return fmt.Errorf("-end: %w", err)
	}
	base := time.Now()
	if *today != "" {
		if base, err = cal.ParseDate(*today); err != nil {
			return fmt.Errorf("-today: %w", err)
		}
	}

	data, err := readInput(*in, stdin)
	if err != nil {
		return err
	}
	plan, err := decodePlan(data)
	if err != nil {
		return err
	}

	tasks, dropped := toTasks(plan.Tasks, datemath.NewParserWithCalendar(cal), base)
	opts := []schedule.Option{schedule.WithCalendar(cal), schedule.WithIDGenerator(uuid.NewString)}
	if *strict {
		opts = append(opts, schedule.WithStrictCap())
	}
	normalized := schedule.Normalize(tasks, windowStart, windowEnd, *maxPerDay, opts...)

	out := normalizeOutput{ChatReply: plan.ChatReply, Dropped: dropped, Tasks: make([]normalizedTask, 0, len(normalized))}
	for _, t := range normalized {
		nt := normalizedTask{ID: t.ID, Title: t.Title, BundledFrom: t.BundledFrom}
		if t.DueDate != nil {
			nt.DueDate = cal.FormatDate(*t.DueDate)
		}
		if t.EstimatedDuration != nil {
			nt.EstimatedDuration = *t.EstimatedDuration
			nt.Minutes, _ = duration.ParseMinutes(*t.EstimatedDuration)
		}
		out.Tasks = append(out.Tasks, nt)
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

func runDuration(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	text := strings.Join(args, " ")
	m, ok := duration.ParseMinutes(text)
	if !ok {
		return fmt.Errorf("no duration found in %q", text)
	}
	_, err := fmt.Fprintf(stdout, "%d\t%s\n", m, duration.FormatMinutes(m))
	return err
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// decodePlan accepts a {chatReply, tasks} document or a bare task list.
// JSON input parses as YAML.
func decodePlan(data []byte) (goal.GeneratedPlan, error) {
	var plan goal.GeneratedPlan
	if err := yaml.Unmarshal(data, &plan); err == nil && len(plan.Tasks) > 0 {
		return plan, nil
	}

	var list []goal.GeneratedTask
	if err := yaml.Unmarshal(data, &list); err != nil {
		return goal.GeneratedPlan{}, fmt.Errorf("decode plan: %w", err)
	}
	if len(list) == 0 {
		return goal.GeneratedPlan{}, errors.New("plan has no tasks")
	}
	return goal.GeneratedPlan{ChatReply: plan.ChatReply, Tasks: list}, nil
}

// toTasks drops untitled entries. Unparseable due dates become undated and
// are clamped to the window end by the normalizer.
func toTasks(in []goal.GeneratedTask, p *datemath.Parser, base time.Time) ([]model.Task, int) {
	out := make([]model.Task, 0, len(in))
	dropped := 0
	for _, g := range in {
		title := strings.TrimSpace(g.Title)
		if title == "" {
			dropped++
			continue
		}
		t := model.Task{ID: uuid.NewString(), Title: title}
		if due, err := p.ParseDue(g.DueDate, base); err == nil && strings.TrimSpace(g.DueDate) != "" {
			t.DueDate = &due
		}
		if d := strings.TrimSpace(g.EstimatedDuration); d != "" {
			t.EstimatedDuration = &d
		}
		out = append(out, t)
	}
	return out, dropped
}

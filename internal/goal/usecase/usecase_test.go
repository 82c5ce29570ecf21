package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"goal-planner/internal/goal"
	"goal-planner/internal/goal/repository/memory"
	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/log"
)

type fakeExporter struct {
	calls int
	err   error
}

func (f *fakeExporter) ExportTasks(ctx context.Context, g model.Goal, tasks []model.Task) error {
	f.calls++
	return f.err
}

type fakeInvalidator struct {
	users []string
}

func (f *fakeInvalidator) Invalidate(userID string) {
	f.users = append(f.users, userID)
}

var (
	sc    = model.Scope{UserID: "user-1"}
	clock = time.Date(2025, 10, 20, 14, 30, 0, 0, time.UTC)
)

func d(m time.Month, day int) time.Time {
	return time.Date(2025, m, day, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	uc  *implUseCase
	exp *fakeExporter
	inv *fakeInvalidator
}

func newFixture(t *testing.T, mutate ...func(*Config)) fixture {
	t.Helper()
	exp := &fakeExporter{}
	inv := &fakeInvalidator{}
	cfg := Config{
		MaxPerDay:   3,
		Exporter:    exp,
		Invalidator: inv,
		Clock:       func() time.Time { return clock },
	}
	for _, m := range mutate {
		m(&cfg)
	}
	l := log.NewNop()
	uc := New(l, memory.New(l), datemath.NewParserWithCalendar(datemath.DefaultCalendar), cfg)
	return fixture{uc: uc, exp: exp, inv: inv}
}

func (f fixture) createGoal(t *testing.T, start, deadline *time.Time) model.Goal {
	t.Helper()
	out, err := f.uc.CreateGoal(context.Background(), sc, goal.CreateGoalInput{Title: "Write thesis", StartDate: start, Deadline: deadline})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	return out.Goal
}

func TestCreateGoal(t *testing.T) {
	tests := []struct {
		name         string
		input        goal.CreateGoalInput
		wantStart    time.Time
		wantDeadline time.Time
		wantErr      error
	}{
		{
			name:    "empty title",
			input:   goal.CreateGoalInput{Title: "   "},
			wantErr: goal.ErrEmptyTitle,
		},
		{
			name:         "defaults to a week from today",
			input:        goal.CreateGoalInput{Title: "Run 5k"},
			wantStart:    d(10, 20),
			wantDeadline: d(10, 27),
		},
		{
			name:         "deadline before start is pushed out",
			input:        goal.CreateGoalInput{Title: "Run 5k", StartDate: model.TimePtr(d(11, 1)), Deadline: model.TimePtr(d(10, 25))},
			wantStart:    d(11, 1),
			wantDeadline: d(11, 8),
		},
		{
			name:         "explicit window kept",
			input:        goal.CreateGoalInput{Title: "Run 5k", Deadline: model.TimePtr(d(12, 1).Add(15 * time.Hour))},
			wantStart:    d(10, 20),
			wantDeadline: d(12, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			out, err := f.uc.CreateGoal(context.Background(), sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			g := out.Goal
			if !g.StartDate.Equal(tt.wantStart) || !g.Deadline.Equal(tt.wantDeadline) {
				t.Errorf("window = %v..%v, want %v..%v", g.StartDate, g.Deadline, tt.wantStart, tt.wantDeadline)
			}
			if g.UserID != sc.UserID || g.Icon != DefaultIcon || g.ColorHex != DefaultColorHex {
				t.Errorf("unexpected goal fields: %+v", g)
			}
		})
	}
}

func TestBreakdownRaw(t *testing.T) {
	f := newFixture(t)
	g := f.createGoal(t, nil, model.TimePtr(d(10, 24)))

	raw := "Here you go!\n```json\n" + `{
  "chatReply": "Nice goal!",
  "tasks": [
    {"title": "Pick topic", "dueDate": "2025-10-01", "estimatedDuration": "20 min"},
    {"title": "Outline", "dueDate": "2025-10-21"},
    {"title": "Read 1", "dueDate": "2025-10-22", "estimatedDuration": "25-35 minutes"},
    {"title": "Read 2", "dueDate": "2025-10-22"},
    {"title": "Read 3", "dueDate": "2025-10-22", "estimatedDuration": "1 hour"},
    {"title": "Read 4", "dueDate": "2025-10-22", "estimatedDuration": "45 min"},
    {"title": "Draft", "dueDate": "whenever"},
    {"title": "Submit", "dueDate": "tomorrow"},
    {"title": "  "}
  ]
}` + "\n```"

	out, err := f.uc.Breakdown(context.Background(), sc, goal.BreakdownInput{GoalID: g.ID, Raw: raw})
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	if out.ChatReply != "Nice goal!" || out.Dropped != 1 {
		t.Errorf("chatReply=%q dropped=%d", out.ChatReply, out.Dropped)
	}

	perDay := map[string][]model.Task{}
	for _, tk := range out.Tasks {
		perDay[tk.DueDate.Format(datemath.DateLayout)] = append(perDay[tk.DueDate.Format(datemath.DateLayout)], tk)
		if tk.ID == "" || tk.GoalID != g.ID {
			t.Errorf("task not stored: %+v", tk)
		}
	}

	// past date clamps to today, relative phrase resolves, bad date lands on the deadline
	if len(perDay["2025-10-20"]) != 1 || perDay["2025-10-20"][0].Title != "Pick topic" {
		t.Errorf("today = %+v", perDay["2025-10-20"])
	}
	if len(perDay["2025-10-21"]) != 2 {
		t.Errorf("2025-10-21 = %+v", perDay["2025-10-21"])
	}
	if len(perDay["2025-10-24"]) != 1 || perDay["2025-10-24"][0].Title != "Draft" {
		t.Errorf("deadline day = %+v", perDay["2025-10-24"])
	}

	busy := perDay["2025-10-22"]
	if len(busy) != 3 {
		t.Fatalf("2025-10-22 has %d tasks, want 3", len(busy))
	}
	var bundle *model.Task
	for i := range busy {
		if busy[i].IsBundle() {
			bundle = &busy[i]
		}
	}
	if bundle == nil || bundle.Title != "Bundle: Read 3; Read 4" || *bundle.EstimatedDuration != "1 hour 45 minutes" {
		t.Fatalf("bundle = %+v", bundle)
	}
	if len(bundle.BundledFrom) != 2 {
		t.Errorf("BundledFrom = %v", bundle.BundledFrom)
	}

	if f.exp.calls != 1 {
		t.Errorf("exporter calls = %d", f.exp.calls)
	}
	if len(f.inv.users) != 1 || f.inv.users[0] != sc.UserID {
		t.Errorf("invalidations = %v", f.inv.users)
	}

	detail, err := f.uc.DetailGoal(context.Background(), sc, g.ID)
	if err != nil || len(detail.Goal.Tasks) != len(out.Tasks) {
		t.Fatalf("DetailGoal = %d tasks, %v", len(detail.Goal.Tasks), err)
	}
}

func TestBreakdownReplacesTasks(t *testing.T) {
	f := newFixture(t)
	g := f.createGoal(t, nil, nil)
	ctx := context.Background()

	first := goal.BreakdownInput{GoalID: g.ID, Tasks: []goal.GeneratedTask{{Title: "a"}, {Title: "b"}}}
	if _, err := f.uc.Breakdown(ctx, sc, first); err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	second := goal.BreakdownInput{GoalID: g.ID, Raw: `[{"title": "c", "dueDate": "2025-10-21"}]`}
	if _, err := f.uc.Breakdown(ctx, sc, second); err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	detail, _ := f.uc.DetailGoal(ctx, sc, g.ID)
	if len(detail.Goal.Tasks) != 1 || detail.Goal.Tasks[0].Title != "c" {
		t.Errorf("tasks = %+v", detail.Goal.Tasks)
	}
}

func TestBreakdownErrors(t *testing.T) {
	f := newFixture(t)
	g := f.createGoal(t, nil, nil)

	tests := []struct {
		name    string
		input   goal.BreakdownInput
		wantErr error
	}{
		{"empty", goal.BreakdownInput{GoalID: g.ID}, goal.ErrEmptyInput},
		{"unknown goal", goal.BreakdownInput{GoalID: "nope", Raw: "[]"}, goal.ErrGoalNotFound},
		{"not json", goal.BreakdownInput{GoalID: g.ID, Raw: "sorry, I can't help"}, goal.ErrInvalidPayload},
		{"object without tasks", goal.BreakdownInput{GoalID: g.ID, Raw: `{"chatReply": "hi"}`}, goal.ErrInvalidPayload},
		{"only blank titles", goal.BreakdownInput{GoalID: g.ID, Tasks: []goal.GeneratedTask{{Title: " "}}}, goal.ErrNoTasksParsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Breakdown(context.Background(), sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBreakdownExportFailureIsNonFatal(t *testing.T) {
	f := newFixture(t)
	f.exp.err = errors.New("calendar down")
	g := f.createGoal(t, nil, nil)

	if _, err := f.uc.Breakdown(context.Background(), sc, goal.BreakdownInput{GoalID: g.ID, Tasks: []goal.GeneratedTask{{Title: "a"}}}); err != nil {
		t.Fatalf("Breakdown should ignore export errors: %v", err)
	}
}

func TestBreakdownStrictCap(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.MaxPerDay = 1; c.StrictCap = true })
	g := f.createGoal(t, nil, nil)

	out, err := f.uc.Breakdown(context.Background(), sc, goal.BreakdownInput{GoalID: g.ID, Tasks: []goal.GeneratedTask{
		{Title: "a", DueDate: "2025-10-21"},
		{Title: "b", DueDate: "2025-10-21"},
	}})
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if len(out.Tasks) != 1 || !out.Tasks[0].IsBundle() {
		t.Errorf("tasks = %+v", out.Tasks)
	}
}

func TestToggleTaskAndToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.createGoal(t, nil, nil)

	out, err := f.uc.Breakdown(ctx, sc, goal.BreakdownInput{GoalID: g.ID, Tasks: []goal.GeneratedTask{
		{Title: "today task", DueDate: "today"},
		{Title: "later", DueDate: "in 3 days"},
	}})
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	today, err := f.uc.TasksForDay(ctx, sc, goal.TasksForDayInput{})
	if err != nil || len(today.Tasks) != 1 || today.Tasks[0].Title != "today task" {
		t.Fatalf("TasksForDay = %+v, %v", today.Tasks, err)
	}

	id := today.Tasks[0].ID
	toggled, err := f.uc.ToggleTask(ctx, sc, id)
	if err != nil || !toggled.Task.IsCompleted {
		t.Fatalf("ToggleTask = %+v, %v", toggled, err)
	}
	toggled, _ = f.uc.ToggleTask(ctx, sc, id)
	if toggled.Task.IsCompleted {
		t.Errorf("second toggle should clear completion")
	}

	if _, err := f.uc.ToggleTask(ctx, model.Scope{UserID: "someone-else"}, id); !errors.Is(err, goal.ErrTaskNotFound) {
		t.Errorf("foreign toggle err = %v", err)
	}

	later, _ := f.uc.TasksForDay(ctx, sc, goal.TasksForDayInput{Day: model.TimePtr(d(10, 23))})
	if len(later.Tasks) != 1 || later.Tasks[0].ID == id || len(out.Tasks) != 2 {
		t.Errorf("later = %+v", later.Tasks)
	}
}

func TestListAndDeleteGoal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.createGoal(t, nil, nil)
	f.createGoal(t, nil, nil)

	if _, err := f.uc.Breakdown(ctx, sc, goal.BreakdownInput{GoalID: g.ID, Tasks: []goal.GeneratedTask{{Title: "a"}}}); err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	list, err := f.uc.ListGoals(ctx, sc)
	if err != nil || len(list.Goals) != 2 {
		t.Fatalf("ListGoals = %+v, %v", list, err)
	}
	withTasks := 0
	for _, lg := range list.Goals {
		withTasks += len(lg.Tasks)
	}
	if withTasks != 1 {
		t.Errorf("tasks attached = %d, want 1", withTasks)
	}

	if err := f.uc.DeleteGoal(ctx, sc, g.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if _, err := f.uc.DetailGoal(ctx, sc, g.ID); !errors.Is(err, goal.ErrGoalNotFound) {
		t.Errorf("DetailGoal after delete err = %v", err)
	}
	if err := f.uc.DeleteGoal(ctx, sc, g.ID); !errors.Is(err, goal.ErrGoalNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"fenced", "```json\n[1]\n```", "[1]"},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"prose around", "Sure! {\"a\": [1]} hope it helps", `{"a": [1]}`},
		{"nothing", "no json here", "no json here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodePlanBareArray(t *testing.T) {
	plan, err := decodePlan(`[{"title": "x", "estimatedDuration": "30 minutes"}]`)
	if err != nil || len(plan.Tasks) != 1 || !strings.EqualFold(plan.Tasks[0].EstimatedDuration, "30 minutes") {
		t.Fatalf("decodePlan = %+v, %v", plan, err)
	}
}

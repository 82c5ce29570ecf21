package schedule

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("bundle-%d", n)
	}
}

func task(id, title string, due *time.Time, est *string) model.Task {
	return model.Task{ID: id, Title: title, DueDate: due, EstimatedDuration: est}
}

func TestNormalizeClamp(t *testing.T) {
	start, end := day(5), day(10)
	in := []model.Task{
		task("1", "early", model.TimePtr(day(1)), nil),
		task("2", "late", model.TimePtr(day(20)), nil),
		task("3", "none", nil, nil),
		task("4", "inside", model.TimePtr(day(7).Add(15*time.Hour)), nil),
	}
	in[0].IsCompleted = true

	out := Normalize(in, start, end, 0)

	want := map[string]time.Time{
		"early":  start,
		"late":   end,
		"none":   end,
		"inside": day(7),
	}
	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	for _, tk := range out {
		if !tk.DueDate.Equal(want[tk.Title]) {
			t.Errorf("%s: due = %v, want %v", tk.Title, tk.DueDate, want[tk.Title])
		}
		if tk.IsCompleted {
			t.Errorf("%s: IsCompleted should be reset", tk.Title)
		}
	}
}

func TestNormalizeInvertedWindow(t *testing.T) {
	out := Normalize([]model.Task{
		task("1", "a", model.TimePtr(day(1)), nil),
		task("2", "b", model.TimePtr(day(30)), nil),
	}, day(10), day(5), 0)

	for _, tk := range out {
		if !tk.DueDate.Equal(day(5)) {
			t.Errorf("%s: due = %v, want window end", tk.Title, tk.DueDate)
		}
	}
}

func TestNormalizeCapacity(t *testing.T) {
	var in []model.Task
	for i, title := range []string{"e", "d", "c", "b", "a"} {
		in = append(in, task(fmt.Sprint(i), title, model.TimePtr(day(3)), model.StringPtr("10 min")))
	}

	out := Normalize(in, day(1), day(10), 3, WithIDGenerator(seqIDs()))

	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}

	var bundle *model.Task
	kept := map[string]bool{}
	for i := range out {
		if out[i].IsBundle() {
			bundle = &out[i]
			continue
		}
		kept[out[i].Title] = true
	}
	if !kept["e"] || !kept["d"] || len(kept) != 2 {
		t.Fatalf("kept = %v, want the first two inputs", kept)
	}
	if bundle == nil {
		t.Fatal("no bundle produced")
	}
	if bundle.Title != "Bundle: c; b; a" {
		t.Errorf("bundle title = %q", bundle.Title)
	}
	if bundle.ID != "bundle-1" {
		t.Errorf("bundle ID = %q", bundle.ID)
	}
	if got := strings.Join(bundle.BundledFrom, ","); got != "2,3,4" {
		t.Errorf("BundledFrom = %q", got)
	}
	if *bundle.EstimatedDuration != "30 minutes" {
		t.Errorf("bundle duration = %q", *bundle.EstimatedDuration)
	}
	if !bundle.DueDate.Equal(day(3)) {
		t.Errorf("bundle due = %v", bundle.DueDate)
	}
}

func TestNormalizeBundleDuration(t *testing.T) {
	in := []model.Task{
		task("1", "keep", model.TimePtr(day(2)), nil),
		task("2", "range", model.TimePtr(day(2)), model.StringPtr("25-35 minutes")),
		task("3", "unknown", model.TimePtr(day(2)), nil),
	}

	out := Normalize(in, day(1), day(5), 2)

	for _, tk := range out {
		if !tk.IsBundle() {
			continue
		}
		if got := *tk.EstimatedDuration; got != "1 hour 5 minutes" {
			t.Errorf("bundle duration = %q, want %q", got, "1 hour 5 minutes")
		}
		return
	}
	t.Fatal("no bundle produced")
}

func TestNormalizeMaxPerDayOne(t *testing.T) {
	in := []model.Task{
		task("1", "a", model.TimePtr(day(2)), nil),
		task("2", "b", model.TimePtr(day(2)), nil),
		task("3", "c", model.TimePtr(day(2)), nil),
	}

	tests := []struct {
		name string
		opts []Option
		want int
	}{
		{name: "default keeps one plus bundle", want: 2},
		{name: "strict cap bundles everything", opts: []Option{WithStrictCap()}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(in, day(1), day(5), 1, tt.opts...)
			if len(out) != tt.want {
				t.Fatalf("len(out) = %d, want %d", len(out), tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	var in []model.Task
	for i := 0; i < 7; i++ {
		in = append(in, task(fmt.Sprint(i), fmt.Sprintf("t%d", i), model.TimePtr(day(1+i%2)), model.StringPtr("20 min")))
	}

	first := Normalize(in, day(1), day(3), 3, WithIDGenerator(seqIDs()))
	second := Normalize(first, day(1), day(3), 3, WithIDGenerator(seqIDs()))

	if len(first) != len(second) {
		t.Fatalf("len changed: %d -> %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Title != b.Title || !a.DueDate.Equal(*b.DueDate) || *a.EstimatedDuration != *b.EstimatedDuration {
			t.Errorf("item %d changed: %+v -> %+v", i, a, b)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	due := day(1)
	in := []model.Task{
		{ID: "1", Title: "x", DueDate: &due, IsCompleted: true},
	}

	Normalize(in, day(5), day(10), 3)

	if !in[0].DueDate.Equal(day(1)) || !in[0].IsCompleted {
		t.Errorf("input was modified: %+v", in[0])
	}
}

func TestNormalizeSortOrder(t *testing.T) {
	in := []model.Task{
		task("1", "zeta", model.TimePtr(day(3)), nil),
		task("2", "beta", model.TimePtr(day(2)), nil),
		task("3", "alpha", model.TimePtr(day(3)), nil),
	}

	out := Normalize(in, day(1), day(5), 0)

	var got []string
	for _, tk := range out {
		got = append(got, tk.Title)
	}
	if strings.Join(got, ",") != "beta,alpha,zeta" {
		t.Errorf("order = %v", got)
	}
}

func TestNormalizeCalendarZone(t *testing.T) {
	cal, err := datemath.NewCalendar("Asia/Ho_Chi_Minh", time.Monday)
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 20:00 UTC on Jan 2 is already Jan 3 in UTC+7.
	due := time.Date(2025, 1, 2, 20, 0, 0, 0, time.UTC)
	start := cal.Date(2025, 1, 1)
	end := cal.Date(2025, 1, 10)

	out := Normalize([]model.Task{task("1", "x", &due, nil)}, start, end, 3, WithCalendar(cal))

	if want := cal.Date(2025, 1, 3); !out[0].DueDate.Equal(want) {
		t.Errorf("due = %v, want %v", out[0].DueDate, want)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	out := Normalize(nil, day(1), day(2), 3)
	if out == nil || len(out) != 0 {
		t.Errorf("Normalize(nil) = %#v, want empty slice", out)
	}
}

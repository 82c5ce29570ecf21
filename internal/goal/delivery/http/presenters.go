package http

import (
	"strings"
	"time"

	"goal-planner/internal/goal"
	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/duration"
	"goal-planner/pkg/response"
)

// --- Request DTOs ---

type createGoalReq struct {
	Title     string `json:"title"      binding:"required,max=255"`
	Icon      string `json:"icon"       binding:"max=64"`
	ColorHex  string `json:"color_hex"  binding:"omitempty,hexcolor"`
	StartDate string `json:"start_date"`
	Deadline  string `json:"deadline"`
}

func (r createGoalReq) toInput(cal datemath.Calendar) (goal.CreateGoalInput, error) {
	start, err := parseOptionalDate(cal, r.StartDate)
	if err != nil {
		return goal.CreateGoalInput{}, err
	}
	deadline, err := parseOptionalDate(cal, r.Deadline)
	if err != nil {
		return goal.CreateGoalInput{}, err
	}
	return goal.CreateGoalInput{
		Title:     strings.TrimSpace(r.Title),
		Icon:      r.Icon,
		ColorHex:  r.ColorHex,
		StartDate: start,
		Deadline:  deadline,
	}, nil
}

// ---

type breakdownReq struct {
	GoalID string               `json:"-"` // populated from URI param
	Raw    string               `json:"raw"`
	Tasks  []goal.GeneratedTask `json:"tasks"`
}

func (r breakdownReq) validate() error {
	if strings.TrimSpace(r.Raw) == "" && len(r.Tasks) == 0 {
		return goal.ErrEmptyInput
	}
	return nil
}

func (r breakdownReq) toInput() goal.BreakdownInput {
	return goal.BreakdownInput{
		GoalID: r.GoalID,
		Raw:    r.Raw,
		Tasks:  r.Tasks,
	}
}

// ---

type tasksForDayReq struct {
	Date string `form:"date"`
}

func (r tasksForDayReq) toInput(cal datemath.Calendar) (goal.TasksForDayInput, error) {
	day, err := parseOptionalDate(cal, r.Date)
	if err != nil {
		return goal.TasksForDayInput{}, err
	}
	return goal.TasksForDayInput{Day: day}, nil
}

type parseDurationReq struct {
	Text string `form:"text" binding:"required"`
}

func parseOptionalDate(cal datemath.Calendar, s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := cal.ParseDate(s)
	if err != nil {
		return nil, goal.ErrInvalidDate
	}
	return &t, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID                string         `json:"id"`
	GoalID            string         `json:"goal_id"`
	Title             string         `json:"title"`
	DueDate           *response.Date `json:"due_date,omitempty"`
	IsCompleted       bool           `json:"is_completed"`
	EstimatedDuration *string        `json:"estimated_duration,omitempty"`
	EstimatedMinutes  *int           `json:"estimated_minutes,omitempty"`
	IsBundle          bool           `json:"is_bundle"`
	BundledFrom       []string       `json:"bundled_from,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:                t.ID,
		GoalID:            t.GoalID,
		Title:             t.Title,
		IsCompleted:       t.IsCompleted,
		EstimatedDuration: t.EstimatedDuration,
		IsBundle:          t.IsBundle(),
		BundledFrom:       t.BundledFrom,
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if m, ok := duration.ParsePtr(t.EstimatedDuration); ok {
		resp.EstimatedMinutes = &m
	}
	return resp
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type goalResp struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Icon           string            `json:"icon"`
	ColorHex       string            `json:"color_hex"`
	StartDate      *response.Date    `json:"start_date,omitempty"`
	Deadline       *response.Date    `json:"deadline,omitempty"`
	CompletionRate float64           `json:"completion_rate"`
	Tasks          []taskResp        `json:"tasks"`
	CreatedAt      response.DateTime `json:"created_at"`
}

func newGoalResp(g model.Goal) goalResp {
	resp := goalResp{
		ID:             g.ID,
		Title:          g.Title,
		Icon:           g.Icon,
		ColorHex:       g.ColorHex,
		CompletionRate: g.CompletionRate(),
		Tasks:          newTaskResps(g.Tasks),
		CreatedAt:      response.DateTime(g.CreatedAt),
	}
	if g.StartDate != nil {
		d := response.Date(*g.StartDate)
		resp.StartDate = &d
	}
	if g.Deadline != nil {
		d := response.Date(*g.Deadline)
		resp.Deadline = &d
	}
	return resp
}

type goalDetailResp struct {
	Goal goalResp `json:"goal"`
}

func (h *handler) newCreateGoalResp(out goal.CreateGoalOutput) goalDetailResp {
	return goalDetailResp{Goal: newGoalResp(out.Goal)}
}

func (h *handler) newDetailGoalResp(out goal.DetailGoalOutput) goalDetailResp {
	return goalDetailResp{Goal: newGoalResp(out.Goal)}
}

type listGoalsResp struct {
	Goals []goalResp `json:"goals"`
}

func (h *handler) newListGoalsResp(out goal.ListGoalsOutput) listGoalsResp {
	goals := make([]goalResp, len(out.Goals))
	for i, g := range out.Goals {
		goals[i] = newGoalResp(g)
	}
	return listGoalsResp{Goals: goals}
}

type breakdownResp struct {
	Goal      goalResp   `json:"goal"`
	Tasks     []taskResp `json:"tasks"`
	ChatReply string     `json:"chat_reply"`
	Dropped   int        `json:"dropped"`
}

func (h *handler) newBreakdownResp(out goal.BreakdownOutput) breakdownResp {
	return breakdownResp{
		Goal:      newGoalResp(out.Goal),
		Tasks:     newTaskResps(out.Tasks),
		ChatReply: out.ChatReply,
		Dropped:   out.Dropped,
	}
}

type toggleTaskResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleTaskResp(out goal.ToggleTaskOutput) toggleTaskResp {
	return toggleTaskResp{Task: newTaskResp(out.Task)}
}

type tasksForDayResp struct {
	Date  response.Date `json:"date"`
	Tasks []taskResp    `json:"tasks"`
}

func (h *handler) newTasksForDayResp(out goal.TasksForDayOutput) tasksForDayResp {
	return tasksForDayResp{
		Date:  response.Date(out.Day),
		Tasks: newTaskResps(out.Tasks),
	}
}

type parseDurationResp struct {
	Minutes   int    `json:"minutes"`
	OK        bool   `json:"ok"`
	Formatted string `json:"formatted,omitempty"`
}

func newParseDurationResp(text string) parseDurationResp {
	m, ok := duration.ParseMinutes(text)
	if !ok {
		return parseDurationResp{}
	}
	return parseDurationResp{Minutes: m, OK: true, Formatted: duration.FormatMinutes(m)}
}

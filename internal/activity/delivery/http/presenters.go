package http

import (
	"strings"

	"goal-planner/internal/activity"
	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/response"
)

// --- Request DTOs ---

type summaryReq struct {
	Period string `form:"period"`
	Offset int    `form:"offset"`
}

func (r summaryReq) toInput() (activity.SummaryInput, error) {
	p, err := parsePeriod(r.Period)
	if err != nil {
		return activity.SummaryInput{}, err
	}
	return activity.SummaryInput{Period: p, Offset: r.Offset}, nil
}

type histogramReq struct {
	Period string `form:"period"`
	Count  int    `form:"count" binding:"gte=0"`
}

func (r histogramReq) toInput() (activity.HistogramInput, error) {
	p, err := parsePeriod(r.Period)
	if err != nil {
		return activity.HistogramInput{}, err
	}
	return activity.HistogramInput{Period: p, Count: r.Count}, nil
}

type addMoodReq struct {
	Score int    `json:"score" binding:"required"`
	Note  string `json:"note"  binding:"max=1000"`
	Date  string `json:"date"`
}

func (r addMoodReq) toInput(cal datemath.Calendar) (activity.AddMoodInput, error) {
	input := activity.AddMoodInput{Score: r.Score, Note: r.Note}
	if s := strings.TrimSpace(r.Date); s != "" {
		t, err := cal.ParseDate(s)
		if err != nil {
			return activity.AddMoodInput{}, activity.ErrInvalidDate
		}
		input.Date = &t
	}
	return input, nil
}

// parsePeriod defaults to week.
func parsePeriod(s string) (datemath.PeriodType, error) {
	if strings.TrimSpace(s) == "" {
		return datemath.PeriodWeek, nil
	}
	p, err := datemath.ParsePeriodType(s)
	if err != nil {
		return "", activity.ErrInvalidPeriod
	}
	return p, nil
}

// --- Response DTOs ---

type metricsResp struct {
	Completed      int     `json:"completed"`
	Failed         int     `json:"failed"`
	SuccessRate    float64 `json:"success_rate"`
	BestStreakDays int     `json:"best_streak_days"`
}

type moodResp struct {
	ID    string        `json:"id"`
	Date  response.Date `json:"date"`
	Score int           `json:"score"`
	Note  string        `json:"note,omitempty"`
}

func newMoodResp(m model.MoodRecord) moodResp {
	return moodResp{
		ID:    m.ID,
		Date:  response.Date(m.Date),
		Score: m.Score,
		Note:  m.Note,
	}
}

type summaryResp struct {
	Period  string        `json:"period"`
	From    response.Date `json:"from"`
	To      response.Date `json:"to"`
	Metrics metricsResp   `json:"metrics"`
	Moods   []moodResp    `json:"moods"`
}

func (h *handler) newSummaryResp(out activity.SummaryOutput) summaryResp {
	moods := make([]moodResp, len(out.Moods))
	for i, m := range out.Moods {
		moods[i] = newMoodResp(m)
	}
	return summaryResp{
		Period: string(out.Period),
		From:   response.Date(out.Range.Start),
		To:     response.Date(out.Range.End),
		Metrics: metricsResp{
			Completed:      out.Metrics.Completed,
			Failed:         out.Metrics.Failed,
			SuccessRate:    out.Metrics.SuccessRate,
			BestStreakDays: out.Metrics.BestStreakDays,
		},
		Moods: moods,
	}
}

type histogramResp struct {
	Period string   `json:"period"`
	Counts []int    `json:"counts"`
	Labels []string `json:"labels"`
	Max    int      `json:"max"`
}

func (h *handler) newHistogramResp(out activity.HistogramOutput) histogramResp {
	return histogramResp{
		Period: string(out.Period),
		Counts: out.Histogram.Counts,
		Labels: out.Histogram.Labels,
		Max:    out.Histogram.Max(),
	}
}

type statsResp struct {
	WeekCompletedCount  int               `json:"week_completed_count"`
	MonthCompletedCount int               `json:"month_completed_count"`
	ComputedAt          response.DateTime `json:"computed_at"`
}

func (h *handler) newStatsResp(out activity.StatsOutput) statsResp {
	return statsResp{
		WeekCompletedCount:  out.Stats.WeekCompletedCount,
		MonthCompletedCount: out.Stats.MonthCompletedCount,
		ComputedAt:          response.DateTime(out.Stats.ComputedAt),
	}
}

type addMoodResp struct {
	Mood moodResp `json:"mood"`
}

func (h *handler) newAddMoodResp(out activity.AddMoodOutput) addMoodResp {
	return addMoodResp{Mood: newMoodResp(out.Mood)}
}

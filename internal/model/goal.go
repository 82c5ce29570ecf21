package model

import "time"

// Goal groups the tasks generated for one user objective.
type Goal struct {
	ID        string
	UserID    string
	Title     string
	Icon      string
	ColorHex  string
	StartDate *time.Time
	Deadline  *time.Time
	Tasks     []Task
	CreatedAt time.Time
}

// CompletionRate is the share of completed tasks, 0 for a goal without tasks.
func (g Goal) CompletionRate() float64 {
	if len(g.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range g.Tasks {
		if t.IsCompleted {
			done++
		}
	}
	return float64(done) / float64(len(g.Tasks))
}

// MoodRecord is a 1..5 mood log entry.
type MoodRecord struct {
	ID     string
	UserID string
	Date   time.Time
	Score  int
	Note   string
}

const (
	MinMoodScore = 1
	MaxMoodScore = 5
)

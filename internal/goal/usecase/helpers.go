package usecase

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"goal-planner/internal/goal"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that generators often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// decodePlan reads either a {"chatReply", "tasks"} object or a bare task array.
func decodePlan(raw string) (goal.GeneratedPlan, error) {
	cleaned := sanitizeJSONResponse(raw)

	if strings.HasPrefix(cleaned, "[") {
		var tasks []goal.GeneratedTask
		if err := json.Unmarshal([]byte(cleaned), &tasks); err != nil {
			return goal.GeneratedPlan{}, err
		}
		return goal.GeneratedPlan{Tasks: tasks}, nil
	}

	var plan goal.GeneratedPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return goal.GeneratedPlan{}, err
	}
	if plan.Tasks == nil {
		return goal.GeneratedPlan{}, errors.New(`missing "tasks" array`)
	}
	return plan, nil
}

// coalesce returns newVal unless it is blank.
func coalesce(newVal, fallback string) string {
	if strings.TrimSpace(newVal) != "" {
		return newVal
	}
	return fallback
}

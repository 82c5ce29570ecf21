package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"goal-planner/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	tm := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-05-01"` {
		t.Errorf("Date = %s, want \"2024-05-01\"", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01 15:30:00"` {
		t.Errorf("DateTime = %s", b)
	}
}

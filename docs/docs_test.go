package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Schemes []string       `json:"schemes"`
		Paths   map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if doc.Info.Title != "Goal Planner API" {
		t.Errorf("title = %q", doc.Info.Title)
	}
	if len(doc.Schemes) != 1 || doc.Schemes[0] != "http" {
		t.Errorf("schemes = %v", doc.Schemes)
	}
	if _, ok := doc.Paths["/api/v1/goals"]; !ok {
		t.Error("missing /api/v1/goals")
	}
}

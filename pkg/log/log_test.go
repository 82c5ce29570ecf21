package log_test

import (
	"context"
	"testing"

	"goal-planner/pkg/log"
)

func TestInitModes(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{"console debug", log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{"json production", log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{"unknown level", log.ZapConfig{Level: "loud", Mode: "debug", Encoding: "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			ctx := context.WithValue(context.Background(), log.RequestIDKey{}, "req-1")
			l.Infof(ctx, "hello %s", "world")
			l.Debug(context.Background(), "debug line")
			l.SetLevel("warn")
			l.Info(ctx, "suppressed")
		})
	}
}

func TestNopImplementsLogger(t *testing.T) {
	var l log.Logger = log.NewNop()
	l.Errorf(context.Background(), "nothing %d", 1)
}

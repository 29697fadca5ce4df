package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", &buf)

	l.Debug("hidden")
	l.Info("shown", "key", "value")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %s", out)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("output is not a single JSON record: %v (%s)", err, out)
	}
	if rec["msg"] != "shown" || rec["key"] != "value" {
		t.Errorf("record = %v, want msg=shown key=value", rec)
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", &buf).WithFields("component", "music")
	l.Debug("autoplay")

	if !strings.Contains(buf.String(), `"component":"music"`) {
		t.Errorf("child logger lost its fields: %s", buf.String())
	}
}

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"error", LevelError, false},
		{"", LevelWarn, false},
		{"verbose", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestZapLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level("other"), "warn"},
	}
	for _, tt := range tests {
		if got := zapLevel(tt.level).String(); got != tt.want {
			t.Errorf("zapLevel(%q) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestInitFiltersByLevel(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	Init(Config{Level: LevelWarn, Output: &buf})

	Info("hidden message")
	Warn("visible message", "package", "git")
	_ = Sync()

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "git") {
		t.Errorf("warn message missing from output: %s", out)
	}
}

func TestGetInitializesDefault(t *testing.T) {
	Reset()
	defer Reset()

	if Get() == nil {
		t.Fatal("Get() returned nil logger")
	}
	if Get() != Get() {
		t.Error("Get() should return the same logger instance")
	}
}

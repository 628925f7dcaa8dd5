package logger

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/wonny/fxcip/pkg/config"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "json",
	}

	log := New(cfg)
	if log == nil {
		t.Fatal("Expected logger to be created")
	}
}

func TestNewConsoleFormat(t *testing.T) {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "debug",
		LogFormat: "console",
	}

	log := New(cfg)
	if log == nil {
		t.Fatal("Expected logger to be created")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLogLevel(tt.input)
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWithField(t *testing.T) {
	cfg := &config.Config{Env: "development", LogLevel: "error", LogFormat: "json"}
	log := New(cfg)

	derived := log.WithField("tenor", "1M")
	if derived == nil {
		t.Fatal("Expected derived logger")
	}
	if derived == log {
		t.Error("WithField must return a new logger")
	}
}

func TestWithFields(t *testing.T) {
	cfg := &config.Config{Env: "development", LogLevel: "error", LogFormat: "json"}
	log := New(cfg)

	derived := log.WithFields(map[string]interface{}{
		"tenor": "1M",
		"rows":  5,
	})
	if derived == nil {
		t.Fatal("Expected derived logger")
	}
}

package logger

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wonny/cbquant/pkg/config"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "debug",
		LogFormat: "json",
	}

	log := New(cfg)
	if log == nil {
		t.Fatal("New returned nil")
	}

	// 메서드들이 panic 없이 동작해야 한다
	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")
}

func TestNewConsoleFormat(t *testing.T) {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "console",
	}

	log := New(cfg)
	log.Info("console message")
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info("discarded")
	log.WithField("k", "v").Error("also discarded")
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

	for _, tc := range tests {
		if got := parseLogLevel(tc.input); got != tc.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestWithField(t *testing.T) {
	log := NewNop()

	child := log.WithField("bond_code", "KR6000001234")
	if child == nil {
		t.Fatal("WithField returned nil")
	}
	if child == log {
		t.Error("WithField must return a new logger")
	}
}

func TestWithFields(t *testing.T) {
	log := NewNop()

	child := log.WithFields(map[string]interface{}{
		"bonds":   42,
		"workers": 4,
	})
	if child == nil {
		t.Fatal("WithFields returned nil")
	}
}

func TestWithError(t *testing.T) {
	log := NewNop()

	child := log.WithError(errors.New("load failed"))
	if child == nil {
		t.Fatal("WithError returned nil")
	}
	child.Error("context attached")
}

package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Levels(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		logFunc   func(*slog.Logger)
		shouldLog bool
	}{
		{"info passes info", slog.LevelInfo, func(l *slog.Logger) { l.Info("m") }, true},
		{"info filters debug", slog.LevelInfo, func(l *slog.Logger) { l.Debug("m") }, false},
		{"debug passes debug", slog.LevelDebug, func(l *slog.Logger) { l.Debug("m") }, true},
		{"error filters warn", slog.LevelError, func(l *slog.Logger) { l.Warn("m") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewHandler(&buf, tt.level))

			tt.logFunc(logger)
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestHandler_Colors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelDebug))

	logger.Error("broken")
	assert.Contains(t, buf.String(), colorRed)

	buf.Reset()
	logger.Warn("careful")
	assert.Contains(t, buf.String(), colorYellow)

	buf.Reset()
	logger.Info("plain")
	assert.NotContains(t, buf.String(), colorRed)
	assert.NotContains(t, buf.String(), colorYellow)
}

func TestHandler_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo))

	logger.Info("scored", "percentage", 42, "band", "MODERATE")

	out := buf.String()
	assert.Contains(t, out, "scored")
	assert.Contains(t, out, "percentage=42")
	assert.Contains(t, out, "band=MODERATE")
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, slog.LevelInfo)

	logger := slog.New(h.WithGroup("server"))
	logger.Info("started")
	assert.Contains(t, buf.String(), "server: started")

	assert.Equal(t, h, h.WithGroup(""))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"nope", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "input=%q", tt.input)
	}
}

func TestSetDefault(t *testing.T) {
	orig := slog.Default()
	defer slog.SetDefault(orig)

	SetDefault("debug")
	require.NotNil(t, slog.Default())
	slog.Default().Debug("default logger active")
}

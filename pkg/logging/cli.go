// Package logging provides a compact slog handler for CLI output.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorDim    = "\033[2m"
)

// Handler writes one colored line per record. Errors render red, warnings
// yellow, debug dim. Command output goes to stdout, so the handler defaults
// to stderr to keep encoded results pipeable.
type Handler struct {
	writer io.Writer
	level  slog.Level
	scope  string
}

func NewHandler(w io.Writer, level slog.Level) *Handler {
	return &Handler{writer: w, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if h.scope != "" {
		b.WriteString(h.scope)
		b.WriteString(": ")
	}
	b.WriteString(r.Message)

	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})

	line := b.String()
	switch {
	case r.Level >= slog.LevelError:
		line = colorRed + line + colorReset
	case r.Level >= slog.LevelWarn:
		line = colorYellow + line + colorReset
	case r.Level < slog.LevelInfo:
		line = colorDim + line + colorReset
	}

	_, err := fmt.Fprintln(h.writer, line)
	return err
}

func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{writer: h.writer, level: h.level, scope: name}
}

// SetDefault installs a stderr CLI logger as the process default.
func SetDefault(level string) {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, ParseLevel(level))))
}

// ParseLevel converts a string log level to slog.Level, defaulting to
// info for anything unrecognized.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

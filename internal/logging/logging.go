// Package logging sets up the global slog logger: colored terminal output
// via tint, JSON otherwise, and a level that can change at runtime.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Level is the global atomic log level. It can be changed at runtime
// without rebuilding the handler.
var Level = new(slog.LevelVar) // default: INFO

// Setup initializes the global slog logger on stderr. When stderr is a TTY it
// uses tint for colored output; otherwise it writes JSON for log
// aggregation.
func Setup() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, IsTerminal(os.Stderr))))
}

// NewHandler returns the handler Setup installs, writing to w.
func NewHandler(w io.Writer, color bool) slog.Handler {
	if color {
		return tint.NewHandler(w, &tint.Options{
			Level:      Level,
			TimeFormat: time.TimeOnly,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: Level,
	})
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetLevel changes the global log level.
func SetLevel(l slog.Level) {
	Level.Set(l)
}

// GetLevel returns the current global log level.
func GetLevel() slog.Level {
	return Level.Level()
}

// ParseLevel converts a string like "debug", "info", "warn", "error"
// to the corresponding slog.Level. It is case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.ToUpper(s)))
	return l, err
}

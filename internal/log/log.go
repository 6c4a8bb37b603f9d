// Package log configures the process-wide slog logger.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level resolves the effective level. --quiet wins over --debug, and both
// win over the configured name (debug, info, warn, error).
func Level(name string, debug, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case debug:
		return slog.LevelDebug
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// Setup installs a text handler on stderr as the default logger.
func Setup(name string, debug, quiet bool) {
	SetupWriter(os.Stderr, Level(name, debug, quiet))
}

// SetupWriter installs a text handler writing to w at level.
func SetupWriter(w io.Writer, level slog.Level) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

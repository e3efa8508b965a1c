package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/moodbook-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig, writes to os.Stderr and
// installs it as slog's default.
//
// Format "json" is for production; "text" adds source locations for local runs.
// Level is debug, info, warn (or warning) or error, case-insensitive; anything
// else means info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// appName tags every record.
const appName = "moodbook"

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", appName))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

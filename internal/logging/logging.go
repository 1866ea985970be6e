package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const timeLayout = "2006/01/02 15:04:05"

// Setup configures slog's default logger based on provided level and format.
// level: "debug", "info", "warn", "error" (case-insensitive)
// json: if true, use JSON handler; otherwise, use text handler.
func Setup(level string, json bool) *slog.Logger {
	return SetupWriter(os.Stdout, level, json)
}

// SetupWriter is Setup with an explicit output writer. The MCP entrypoint
// logs to stderr because stdout carries the stdio protocol stream.
func SetupWriter(out io.Writer, level string, json bool) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	replace := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
			t := a.Value.Time()
			return slog.String(slog.TimeKey, t.Format(timeLayout))
		}
		return a
	}
	opts := &slog.HandlerOptions{Level: lvl, ReplaceAttr: replace}

	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

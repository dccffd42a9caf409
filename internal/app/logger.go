package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wordlens/internal/config"
)

// NewLogger creates a *slog.Logger writing to w and sets it as the default
// logger via slog.SetDefault.
//
// Format "json" produces structured JSON output. Format "text" produces
// human-readable output with source info. Level is one of debug, info,
// warn or error (case-insensitive) and defaults to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	logger := slog.New(newHandler(cfg, w))
	slog.SetDefault(logger)
	return logger
}

func newHandler(cfg config.LogConfig, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

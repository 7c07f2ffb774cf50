package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/topiclog/internal/config"
)

// RedactedValue replaces the value of any attribute whose key names a secret.
const RedactedValue = "[REDACTED]"

var sensitiveKeys = []string{"password", "credential", "token", "secret", "authorization", "cookie"}

// NewLogger creates a *slog.Logger from cfg writing to os.Stderr and sets it
// as the default logger.
//
// Format "json" produces structured JSON output; "text" adds source info.
// Level is one of debug, info, warn, error (case-insensitive); defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// redact masks attributes whose key contains a sensitive word.
func redact(_ []string, a slog.Attr) slog.Attr {
	key := strings.ToLower(a.Key)
	for _, s := range sensitiveKeys {
		if strings.Contains(key, s) {
			return slog.String(a.Key, RedactedValue)
		}
	}
	return a
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

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cmlabs-hris/payroll-engine/internal/config"
	"github.com/go-chi/httplog/v3"
)

const appName = "payroll-engine"

// New builds the application logger writing to stdout.
func New(cfg config.AppConfig) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg)
}

// NewWithWriter builds a logger for cfg on w. JSON output uses the ECS
// attribute names so request logs and service logs share one schema.
func NewWithWriter(w io.Writer, cfg config.AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		opts.ReplaceAttr = httplog.SchemaECS.Concise(cfg.Env != "production").ReplaceAttr
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", appName),
		slog.String("env", cfg.Env),
	)
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
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

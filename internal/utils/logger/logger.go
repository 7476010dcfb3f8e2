package logger

import (
	"os"
	"strings"

	"datakeeper/internal/app/server/config"

	"golang.org/x/exp/slog"
)

// New builds the application logger for env: pretty debug output locally,
// JSON everywhere else (debug on dev, info on prod).
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel is New with an explicit level ("debug", "info", "warn",
// "error") taking precedence over the environment default.
func NewWithLevel(env, level string) *slog.Logger {
	var log *slog.Logger

	lvl, override := parseLevel(level)

	switch env {
	case config.EnvLocal:
		if !override {
			lvl = slog.LevelDebug
		}
		log = newPrettySlog(lvl)
	case config.EnvDev:
		if !override {
			lvl = slog.LevelDebug
		}
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	default:
		if !override {
			lvl = slog.LevelInfo
		}
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	return newPrettySlog(slog.LevelDebug)
}

func newPrettySlog(lvl slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: lvl},
	}
	return slog.New(opts.NewPrettyHandler(os.Stdout))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

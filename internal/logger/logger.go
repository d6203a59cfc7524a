package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/runvoy/ecs-find-tasks/internal/constants"

	"github.com/lmittmann/tint"
)

// Initialize sets up the global slog logger based on the environment
func Initialize(env constants.Environment, level slog.Level) *slog.Logger {
	logger := slog.New(NewHandler(env, os.Stderr, level))
	slog.SetDefault(logger)
	slog.Debug("logger initialized", "env", env, "level", level)

	return logger
}

// NewHandler returns the handler used for env, writing to w.
// GitHub Actions runs get JSON lines; the CLI gets colored console output.
func NewHandler(env constants.Environment, w io.Writer, level slog.Level) slog.Handler {
	if env == constants.Action {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    os.Getenv("NO_COLOR") != "",
	})
}

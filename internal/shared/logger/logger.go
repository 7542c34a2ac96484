package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup configures the global slog logger based on environment
func Setup(env string) {
	slog.SetDefault(New(os.Stdout, env))
	slog.Info("Logger initialized", "env", env, "level", levelFor(env).String())
}

// New builds the logger used for env without installing it.
func New(w io.Writer, env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFor(env)}

	var handler slog.Handler
	switch env {
	case "production", "prod":
		// Production: JSON format
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func levelFor(env string) slog.Level {
	switch env {
	case "local", "dev", "development":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

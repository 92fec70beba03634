// Package logging sets up the backend's slog logger: a text handler on
// stderr, plus an optional rotating file sink so a misbehaving desktop
// session can be diagnosed after the fact.
package logging

import (
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the default slog logger. logFile may be empty to log to
// stderr only; debug lowers the level to slog.LevelDebug.
func Setup(logFile string, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, opts)}
	if logFile != "" {
		handlers = append(handlers, slog.NewTextHandler(newRotatingWriter(logFile), opts))
	}

	if len(handlers) == 1 {
		slog.SetDefault(slog.New(handlers[0]))
		return
	}
	slog.SetDefault(slog.New(&multiHandler{handlers: handlers}))
}

// newRotatingWriter builds the lumberjack sink, with rotation tunables
// overridable from the environment.
func newRotatingWriter(path string) *lumberjack.Logger {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}
	if v, err := strconv.Atoi(os.Getenv("GITDECK_LOG_MAX_SIZE")); err == nil && v > 0 {
		w.MaxSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("GITDECK_LOG_MAX_BACKUPS")); err == nil && v >= 0 {
		w.MaxBackups = v
	}
	if v, err := strconv.Atoi(os.Getenv("GITDECK_LOG_MAX_AGE")); err == nil && v > 0 {
		w.MaxAge = v
	}
	return w
}

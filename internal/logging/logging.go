package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
)

// Setup configures the global slog logger. Console output goes to stderr
// since stdout carries the preset prompt.
// If logOutputDir is non-empty, logs are also written as JSON to a timestamped
// file in that directory. The returned func closes that file.
func Setup(levelStr string, logOutputDir string) (func() error, error) {
	logger, closeFn, err := New(os.Stderr, levelStr, logOutputDir, time.Now())
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

// New builds a logger writing colored text to console and, when
// logOutputDir is set, JSON to godot-compile_<timestamp>.log in that directory.
func New(console io.Writer, levelStr, logOutputDir string, now time.Time) (*slog.Logger, func() error, error) {
	level := ParseLevel(levelStr)

	consoleHandler := tint.NewHandler(console, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})

	if logOutputDir == "" {
		return slog.New(consoleHandler), func() error { return nil }, nil
	}

	logDir := os.ExpandEnv(logOutputDir)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log output directory: %w", err)
	}

	logFileName := fmt.Sprintf("godot-compile_%s.log", now.Format("20060102_150405"))
	logFilePath := filepath.Join(logDir, logFileName)

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}

	fileHandler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: level})
	logger := slog.New(slogmulti.Fanout(consoleHandler, fileHandler))

	logger.Debug("logging to file", "path", logFilePath)

	return logger, logFile.Close, nil
}

// ParseLevel converts a string log level to slog.Level. Unknown levels
// fall back to info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "trace", "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

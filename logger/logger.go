// Package logger wraps log/slog with process-wide helpers and lets the TUI
// take over stdout while it runs.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config describes logger settings.
type Config struct {
	Enabled bool
	Level   string
	Stdout  bool
	File    string
}

var (
	mu      sync.RWMutex
	base    *slog.Logger
	enabled = true

	cfg       Config
	file      *os.File
	intercept io.Writer // set while a TUI owns the terminal
	attrs     []any
)

// Init configures the logger. Relative file paths resolve against dir.
// A file that cannot be opened is reported but stdout logging still works.
func Init(c Config, dir string) error {
	mu.Lock()
	defer mu.Unlock()

	cfg = c
	if file != nil {
		_ = file.Close()
		file = nil
	}

	if !c.Enabled {
		enabled = false
		base = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	var initErr error
	if c.File != "" {
		path := expandPath(c.File, dir)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			initErr = fmt.Errorf("logger: create log dir: %w", err)
		} else if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err != nil {
			initErr = fmt.Errorf("logger: open log file: %w", err)
		} else {
			file = f
		}
	}

	rebuild()
	return initErr
}

// With attaches key/value pairs to every subsequent record, e.g. the
// session ID of the running chat.
func With(args ...any) {
	mu.Lock()
	defer mu.Unlock()
	attrs = append(attrs, args...)
	rebuild()
}

// Intercept sends console output to w instead of stdout. File output is kept.
func Intercept(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	intercept = w
	rebuild()
}

// Restore undoes Intercept.
func Restore() {
	mu.Lock()
	defer mu.Unlock()
	intercept = nil
	rebuild()
}

// rebuild must be called with mu held.
func rebuild() {
	if !cfg.Enabled {
		return
	}

	var writers []io.Writer
	switch {
	case intercept != nil:
		writers = append(writers, intercept)
	case cfg.Stdout:
		writers = append(writers, os.Stdout)
	}
	if file != nil {
		writers = append(writers, file)
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	h := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	base = slog.New(h).With(attrs...)
	enabled = true
}

func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args...) }

func Info(msg string, args ...any) { log(slog.LevelInfo, msg, args...) }

func Warn(msg string, args ...any) { log(slog.LevelWarn, msg, args...) }

func Error(msg string, args ...any) { log(slog.LevelError, msg, args...) }

func log(level slog.Level, msg string, args ...any) {
	mu.RLock()
	l := base
	on := enabled
	mu.RUnlock()

	if !on || l == nil {
		return
	}
	l.Log(context.Background(), level, msg, args...)
}

func parseLevel(level string) slog.Level {
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

func expandPath(path, dir string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

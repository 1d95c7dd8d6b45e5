// Package logging provides file-based logging for todo.
// Entries go to <data_dir>/logs/todo.log as logfmt lines.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/amanKp27/toDoList/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled entries to the todo log file.
// The file is opened on first use.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file    *os.File
	backend *log.Logger
	dataDir string
	mu      sync.Mutex
	level   log.Level
}

// New creates a new Logger that writes under dataDir.
// If dataDir is empty, logging is disabled.
func New(dataDir string, level log.Level) *Logger {
	return &Logger{
		dataDir: dataDir,
		level:   level,
	}
}

// ParseLevel parses a log level string into a log.Level.
func ParseLevel(levelStr string) log.Level {
	switch levelStr {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ensureBackend opens the log file and builds the backing logger.
// Callers must hold l.mu.
func (l *Logger) ensureBackend() (*log.Logger, error) {
	if l.backend != nil {
		return l.backend, nil
	}

	path := domain.LogPath(l.dataDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l.file = f
	l.backend = log.NewWithOptions(f, log.Options{
		Level:           l.level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	return l.backend, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.backend = nil
	return err
}

func (l *Logger) log(level log.Level, category, msg string, keyvals []any) {
	if l.dataDir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	backend, err := l.ensureBackend()
	if err != nil {
		return
	}
	fields := make([]any, 0, len(keyvals)+2)
	fields = append(fields, "category", category)
	fields = append(fields, keyvals...)
	backend.Log(level, msg, fields...)
}

// Debug logs a debug message.
func (l *Logger) Debug(category, msg string, keyvals ...any) {
	l.log(log.DebugLevel, category, msg, keyvals)
}

// Info logs an info message.
func (l *Logger) Info(category, msg string, keyvals ...any) {
	l.log(log.InfoLevel, category, msg, keyvals)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, msg string, keyvals ...any) {
	l.log(log.WarnLevel, category, msg, keyvals)
}

// Error logs an error message.
func (l *Logger) Error(category, msg string, keyvals ...any) {
	l.log(log.ErrorLevel, category, msg, keyvals)
}

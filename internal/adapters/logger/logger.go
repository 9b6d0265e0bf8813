// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Prelang/prelang-buildpack/internal/core/domain"
	"github.com/Prelang/prelang-buildpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultMaxSizeMB is the size at which the log file is rotated.
	DefaultMaxSizeMB = 10
	// DefaultMaxBackups is the number of rotated log files kept.
	DefaultMaxBackups = 3
)

var (
	_ ports.Logger        = (*Logger)(nil)
	_ ports.LogConfigurer = (*Logger)(nil)
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	out    io.Writer
	file   io.WriteCloser
	mu     sync.RWMutex
}

// New creates a new Logger instance writing text records to stderr at info level.
func New() *Logger {
	l := &Logger{
		level: new(slog.LevelVar),
		out:   os.Stderr,
	}
	l.level.Set(slog.LevelInfo)
	l.logger = slog.New(l.handler(l.out))
	return l
}

func (l *Logger) handler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level})
}

// SetOutput updates the logger's console destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.logger = slog.New(l.handler(l.writer()))
}

// Configure sets the minimum level and, when file is not empty, mirrors records
// into a size-rotated log file.
func (l *Logger) Configure(level, file string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	l.level.Set(lvl)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}

	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create log directory"), "path", file)
		}
		l.file = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    DefaultMaxSizeMB,
			MaxBackups: DefaultMaxBackups,
			LocalTime:  true,
		}
	}

	l.logger = slog.New(l.handler(l.writer()))
	return nil
}

// writer must be called with l.mu held.
func (l *Logger) writer() io.Writer {
	if l.file == nil {
		return l.out
	}
	return io.MultiWriter(l.out, l.file)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger = slog.New(l.handler(l.out))
	return err
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}

// ParseLevel maps a configured level name to a slog level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Join(domain.ErrConfigLoadFailed, zerr.With(zerr.New("unknown log level"), "level", name))
	}
}

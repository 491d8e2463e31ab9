package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/lmittmann/tint"
)

// Logger provides leveled, printf-style logging throughout the application.
// Records go to a tint-colored slog handler and, when configured, to Fluent Bit.
type Logger struct {
	slog   *slog.Logger
	fluent *fluent.Fluent
}

// LoggerConfig controls where and what a Logger writes.
type LoggerConfig struct {
	Writer  io.Writer
	Level   slog.Level
	NoColor bool
	// Fluent is an optional second sink.
	Fluent *fluent.Fluent
}

// NewLogger creates a Logger writing info and above to stdout.
func NewLogger() *Logger {
	return NewLoggerWithConfig(LoggerConfig{Level: slog.LevelInfo})
}

// NewLoggerWithConfig builds a Logger from cfg.
func NewLoggerWithConfig(cfg LoggerConfig) *Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	handler := tint.NewHandler(cfg.Writer, &tint.Options{
		Level:      cfg.Level,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    cfg.NoColor,
	})
	return &Logger{slog: slog.New(handler), fluent: cfg.Fluent}
}

// NewFluentClient connects to a Fluent Bit forward input. There is no ping;
// delivery errors only show up on the first Post.
func NewFluentClient(host string, port int, tagPrefix string) (*fluent.Fluent, error) {
	if tagPrefix == "" {
		return nil, fmt.Errorf("fluent: tag prefix is required")
	}
	client, err := fluent.New(fluent.Config{
		FluentHost: host,
		FluentPort: port,
		TagPrefix:  tagPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("fluent: connect %s:%d: %w", host, port, err)
	}
	return client, nil
}

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func (l *Logger) Info(format string, args ...any) {
	l.log(slog.LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log(slog.LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(slog.LevelError, format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.log(slog.LevelDebug, format, args...)
}

func (l *Logger) log(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.slog.Log(ctx, level, msg)

	if l.fluent != nil {
		tag := strings.ToLower(level.String())
		_ = l.fluent.Post(tag, map[string]string{
			"level":     tag,
			"message":   msg,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	}
}

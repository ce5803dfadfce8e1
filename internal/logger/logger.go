package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Config describes how a [Logger] writes its records.
type Config struct {
	// Level is the minimum record level: debug, info, warn or error.
	Level string

	// Format selects the handler: text, json, pretty or null.
	Format string

	// Writer receives the formatted records.
	Writer io.Writer
}

// Logger wraps a [slog.Logger] configured from a [Config].
type Logger struct {
	logger *slog.Logger
	config Config
}

var (
	defaultLogger = &Logger{
		logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
	defaultMu sync.RWMutex
	once      sync.Once
)

// New creates a logger from the given configuration.
func New(config Config) (*Logger, error) {
	if config.Writer == nil {
		return nil, fmt.Errorf("logger writer cannot be nil")
	}

	lvl := parseLogLevel(config.Level)

	var opts *slog.HandlerOptions
	if lvl == slog.LevelDebug {
		opts = &slog.HandlerOptions{
			Level:     lvl,
			AddSource: true,
		}
	} else {
		opts = &slog.HandlerOptions{
			Level: lvl,
		}
	}

	handler := createHandler(config.Writer, config.Format, opts)

	return &Logger{
		logger: slog.New(handler),
		config: config,
	}, nil
}

// NewConfig resolves an output destination into a [Config].
// When the output is a file, the returned closer releases it; for the
// standard streams and the discard sink the closer is nil.
func NewConfig(level string, format string, output string) (Config, io.Closer, error) {
	writer, closer, err := createWriter(output)
	if err != nil {
		return Config{}, nil, err
	}

	return Config{
		Level:  level,
		Format: format,
		Writer: writer,
	}, closer, nil
}

// InitDefault initializes the process-wide default logger exactly once.
// Later calls are no-ops.
func InitDefault(config Config) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(config)
		if err != nil {
			return
		}
		defaultMu.Lock()
		defaultLogger = l
		defaultMu.Unlock()
	})
	return err
}

// SetDefault replaces the default logger.
func SetDefault(l *Logger) error {
	if l == nil {
		return fmt.Errorf("logger cannot be nil")
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
	return nil
}

// GetDefault returns the default logger.
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// createWriter resolves an output string into a writer and an optional closer.
func createWriter(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "stdout", "":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	case "null", "discard":
		return io.Discard, nil, nil
	default:
		file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", output, err)
		}
		return file, file, nil
	}
}

// createHandler creates a slog.Handler based on the format string.
func createHandler(writer io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(format) {
	case "text", "":
		return NewTextHandler(writer, opts)
	case "json":
		return NewJsonHandler(writer, opts)
	case "null", "discard":
		return slog.DiscardHandler
	case "pretty", "color", "terminal", "human":
		return NewPrettyHandler(writer, opts)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown log format '%s'. Using text format.\n", format)
		return NewTextHandler(writer, opts)
	}
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "info", "":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown log level '%s'. Using info level.\n", levelStr)
		return slog.LevelInfo
	}
}

// Logger returns the underlying slog.Logger.
func (l *Logger) Logger() *slog.Logger {
	return l.logger
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// DebugContext logs a debug message with context.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

// DebugAttrs logs a debug message with attributes.
func (l *Logger) DebugAttrs(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// InfoContext logs an informational message with context.
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

// InfoAttrs logs an informational message with attributes.
func (l *Logger) InfoAttrs(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// WarnContext logs a warning message with context.
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

// WarnAttrs logs a warning message with attributes.
func (l *Logger) WarnAttrs(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// ErrorContext logs an error message with context.
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

// ErrorAttrs logs an error message with attributes.
func (l *Logger) ErrorAttrs(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

// Info logs an informational message with the default logger.
func Info(msg string, args ...any) {
	GetDefault().Info(msg, args...)
}

// InfoCtx logs an informational message with context.
func InfoCtx(ctx context.Context, msg string, args ...any) {
	GetDefault().InfoContext(ctx, msg, args...)
}

// InfoAttrs logs an informational message with attributes.
func InfoAttrs(ctx context.Context, message string, attrs ...slog.Attr) {
	GetDefault().InfoAttrs(ctx, message, attrs...)
}

// Warn logs a warning message with the default logger.
func Warn(msg string, args ...any) {
	GetDefault().Warn(msg, args...)
}

// WarnCtx logs a warning message with context.
func WarnCtx(ctx context.Context, msg string, args ...any) {
	GetDefault().WarnContext(ctx, msg, args...)
}

// WarnAttrs logs a warning message with attributes.
func WarnAttrs(ctx context.Context, message string, attrs ...slog.Attr) {
	GetDefault().WarnAttrs(ctx, message, attrs...)
}

// Error logs an error message with the default logger.
func Error(msg string, args ...any) {
	GetDefault().Error(msg, args...)
}

// ErrorCtx logs an error message with context.
func ErrorCtx(ctx context.Context, msg string, args ...any) {
	GetDefault().ErrorContext(ctx, msg, args...)
}

// ErrorAttrs logs an error message with attributes.
func ErrorAttrs(ctx context.Context, message string, attrs ...slog.Attr) {
	GetDefault().ErrorAttrs(ctx, message, attrs...)
}

// Debug logs a debug message with the default logger.
func Debug(msg string, args ...any) {
	GetDefault().Debug(msg, args...)
}

// DebugCtx logs a debug message with context.
func DebugCtx(ctx context.Context, msg string, args ...any) {
	GetDefault().DebugContext(ctx, msg, args...)
}

// DebugAttrs logs a debug message with attributes.
func DebugAttrs(ctx context.Context, message string, attrs ...slog.Attr) {
	GetDefault().DebugAttrs(ctx, message, attrs...)
}

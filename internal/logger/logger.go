// Package logger configures the application slog logger and provides request scoped logging.
//
// dev and test environments use a coloured text handler (tint), staging and prod write JSON.
//
// The RequestLogging middleware stores a request logger in the request context.
// Handlers and middleware retrieve it with ContextRequestLogger and can attach attributes
// to the final request log line with ContextWithLogAttrs.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

// LevelNone is above every slog level and disables logging.
const LevelNone = slog.Level(12)

// InitLogger creates the application logger writing to stdout and sets it as the slog default.
func InitLogger(level slog.Level, environment string) *slog.Logger {
	return InitLoggerWithWriter(os.Stdout, level, environment)
}

// InitLoggerWithWriter is InitLogger with a different destination.
// The CLI logs to stderr so its results can be piped.
func InitLoggerWithWriter(w io.Writer, level slog.Level, environment string) *slog.Logger {
	var handler slog.Handler

	switch environment {
	case "prod", "staging":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	default:
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    environment == "test",
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLogLevel converts a LOG_LEVEL value to a slog level.
// "none" disables logging, unrecognised values default to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "off":
		return LevelNone
	default:
		return slog.LevelInfo
	}
}

type contextKey int

const (
	requestLoggerKey contextKey = iota
	logAttrsKey
)

// logAttrs collects attributes added while a request is being handled.
type logAttrs struct {
	mu    sync.Mutex
	attrs []slog.Attr
}

// WithRequestLogger returns a copy of ctx carrying logger.
func WithRequestLogger(ctx context.Context, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, logAttrsKey, &logAttrs{})
	return context.WithValue(ctx, requestLoggerKey, logger)
}

// ContextRequestLogger returns the request logger stored in ctx, or the default logger.
func ContextRequestLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(requestLoggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// ContextWithLogAttrs adds attributes to the final log line for the request.
// It is a no-op when ctx was not created by WithRequestLogger.
func ContextWithLogAttrs(ctx context.Context, attrs ...slog.Attr) {
	la, ok := ctx.Value(logAttrsKey).(*logAttrs)
	if !ok {
		return
	}
	la.mu.Lock()
	la.attrs = append(la.attrs, attrs...)
	la.mu.Unlock()
}

// ContextLogAttrs returns the attributes added with ContextWithLogAttrs.
func ContextLogAttrs(ctx context.Context) []slog.Attr {
	la, ok := ctx.Value(logAttrsKey).(*logAttrs)
	if !ok {
		return nil
	}
	la.mu.Lock()
	defer la.mu.Unlock()

	attrs := make([]slog.Attr, len(la.attrs))
	copy(attrs, la.attrs)
	return attrs
}

// internal/pkg/logger/logger.go

// Package logger configures structured logging for all binaries. Request
// metadata travels through context and is attached to every record by the
// context handler.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	ContextKeyRequestID ContextKey = "request_id"
	ContextKeyTraceID   ContextKey = "trace_id"
	ContextKeyClientIP  ContextKey = "client_ip"
	ContextKeyUserAgent ContextKey = "user_agent"
	ContextKeyMethod    ContextKey = "method"
	ContextKeyPath      ContextKey = "path"
)

// contextKeys are the keys the context handler extracts on every record.
var contextKeys = []ContextKey{
	ContextKeyRequestID,
	ContextKeyTraceID,
	ContextKeyClientIP,
	ContextKeyMethod,
	ContextKeyPath,
}

// Logger wraps slog.Logger with context extraction helpers.
type Logger struct {
	*slog.Logger
}

// SetupLogger initializes the process-wide logger and returns it. Format is
// "json" or "text"; any unknown level falls back to info.
func SetupLogger(level string, format string) *Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true,
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	handler = &contextHandler{Handler: handler}

	logger := &Logger{Logger: slog.New(handler)}
	slog.SetDefault(logger.Logger)

	return logger
}

// WithContext returns a logger carrying whatever request metadata the
// context holds.
func (l *Logger) WithContext(ctx context.Context) *slog.Logger {
	attrs := extractContextAttrs(ctx)
	if len(attrs) > 0 {
		return l.Logger.With(attrs...)
	}
	return l.Logger
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
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

func extractContextAttrs(ctx context.Context) []any {
	var attrs []any
	for _, key := range contextKeys {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			attrs = append(attrs, slog.String(string(key), value))
		}
	}
	return attrs
}

// contextHandler injects context values into every record so that
// *Context log calls pick up request metadata without explicit attrs.
type contextHandler struct {
	slog.Handler
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, key := range contextKeys {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			r.AddAttrs(slog.String(string(key), value))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name)}
}

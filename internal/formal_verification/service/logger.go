package service

import (
	"context"
	"fmt"
	"log/slog"
)

type requestIDKey struct{}

// WithRequestID stores the request ID for loggers created further down the call chain.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger tags every line with the request ID and the operation.
type Logger struct {
	l *slog.Logger
}

func NewLogger(ctx context.Context) *Logger {
	rid := RequestID(ctx)
	if rid == "" {
		rid = "unknown"
	}
	return &Logger{l: slog.Default().With("request_id", rid)}
}

func (l *Logger) LogError(operation string, err error) {
	l.l.Error("operation failed", "operation", operation, "error", err)
}

func (l *Logger) LogErrorf(operation string, format string, args ...any) {
	l.l.Error(fmt.Sprintf(format, args...), "operation", operation)
}

func (l *Logger) LogInfof(operation string, format string, args ...any) {
	l.l.Info(fmt.Sprintf(format, args...), "operation", operation)
}

func (l *Logger) LogWarnf(operation string, format string, args ...any) {
	l.l.Warn(fmt.Sprintf(format, args...), "operation", operation)
}

package logging

import (
	"context"
	"strings"
)

type contextKey string

const (
	ctxKeyLogger      contextKey = "clubsetup.logger"
	ctxKeyRequestID   contextKey = "clubsetup.request_id"
	ctxKeyCorrelation contextKey = "clubsetup.correlation_id"
)

// ContextWithRequestID stores the current request identifier on the context.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || strings.TrimSpace(requestID) == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyRequestID, strings.TrimSpace(requestID))
}

// RequestIDFromContext returns the request identifier stored in the context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// ContextWithCorrelationID stores the correlation ID on the context.
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	if ctx == nil || strings.TrimSpace(correlationID) == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyCorrelation, strings.TrimSpace(correlationID))
}

func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if correlationID, ok := ctx.Value(ctxKeyCorrelation).(string); ok {
		return correlationID
	}
	return ""
}

// ContextWithLogger attaches a request scoped logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil || logger == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyLogger, logger)
}

// FromContext returns the logger stored on ctx, falling back to fallback.
// Request and correlation IDs found on the context are attached as fields.
func FromContext(ctx context.Context, fallback Logger) Logger {
	logger := fallback
	if ctx != nil {
		if stored, ok := ctx.Value(ctxKeyLogger).(Logger); ok && stored != nil {
			return stored
		}
	}
	if logger == nil {
		logger = Nop()
	}

	fields := Fields{}
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		fields["request_id"] = requestID
	}
	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		fields["correlation_id"] = correlationID
	}
	return logger.WithFields(fields)
}

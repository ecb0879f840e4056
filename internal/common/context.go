package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID  contextKey = "request_id"
	ContextKeySpecialist contextKey = "specialist_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithSpecialist adds the acting specialist's ID to the context
func WithSpecialist(ctx context.Context, specialistID string) context.Context {
	return context.WithValue(ctx, ContextKeySpecialist, specialistID)
}

// SpecialistFromContext extracts the acting specialist's ID from context
func SpecialistFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeySpecialist).(string); ok {
		return id
	}
	return ""
}

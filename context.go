package ravy

import (
	"context"
)

// Context keys for client values.
type contextKey string

const contextKeyRequestID contextKey = "ravy:request_id"

// WithRequestID adds a request ID to the context. When present it is sent
// as the X-Request-ID header instead of a generated one, letting callers
// correlate API calls with their own tracing.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, requestID)
}

// GetRequestID retrieves the request ID from context.
// Returns empty string if not set.
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(contextKeyRequestID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

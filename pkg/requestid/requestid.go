// Package requestid plumbs a per-request correlation id through
// context.Context so handlers, services and log output can reference the
// same id.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// Generate creates a new unique request id.
func Generate() string {
	return uuid.New().String()
}

// ToContext returns a child context carrying the request id.
func ToContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// FromContext extracts the request id from the context, or "" when absent.
func FromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// FromContextPtr is FromContext returning nil instead of "" for absent
// ids, matching optional JSON response fields.
func FromContextPtr(ctx context.Context) *string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return &requestID
	}
	return nil
}

// FromRequest extracts the request id from the HTTP request context.
func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}

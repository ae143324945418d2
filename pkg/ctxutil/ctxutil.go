// Package ctxutil provides request-scoped context helpers.
package ctxutil

import (
	"context"

	"github.com/docugallery/gallery-backend/internal/domain"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "request_id"
)

// WithCaller stores the resolved caller identity in the context.
func WithCaller(ctx context.Context, c domain.Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFromCtx extracts the caller from the context.
// An absent or mistyped value yields the zero Caller, which is a guest.
func CallerFromCtx(ctx context.Context) domain.Caller {
	c, _ := ctx.Value(callerKey).(domain.Caller)
	return c
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

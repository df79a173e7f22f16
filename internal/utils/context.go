// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP request and response bodies, HTTP client initialization,
// bearer token extraction and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/coffee-shop/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// ClaimsCtxKey is the key under which the permission middleware stores
	// the verified access token claims.
	ClaimsCtxKey = contextKey("claims")

	// TraceIDCtxKey is the key under which the tracing middleware stores the
	// request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext retrieves the verified claims of the caller.
//
// Returns ok == false when the request did not pass through the permission
// middleware or the stored value has an unexpected type.
//
// Example usage:
//
//	claims, ok := utils.GetClaimsFromContext(r.Context())
//	if !ok {
//	    // public endpoint, no caller identity
//	}
func GetClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(*models.Claims)
	return claims, ok && claims != nil
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id of the current request, or
// an empty string when none was assigned.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}

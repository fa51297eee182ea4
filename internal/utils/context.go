// Package utils provides general-purpose helpers used across the logbook:
// type-safe context keys, JSON response writing, the outbound HTTP client,
// session token signing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-fleet-logbook/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// CallerCtxKey stores the authenticated [models.User] of a request.
	CallerCtxKey = contextKey("caller")

	// SessionIDCtxKey stores the id of the session the request token was
	// issued for.
	SessionIDCtxKey = contextKey("sessionID")
)

// WithCaller returns a copy of ctx carrying the authenticated user and the
// session id.
func WithCaller(ctx context.Context, caller models.User, sessionID string) context.Context {
	ctx = context.WithValue(ctx, CallerCtxKey, caller)
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetCallerFromContext retrieves the authenticated user stored by
// [WithCaller]. ok is false when the request was not authenticated.
func GetCallerFromContext(ctx context.Context) (models.User, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.User)
	return caller, ok
}

// GetSessionIDFromContext retrieves the session id stored by [WithCaller].
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(SessionIDCtxKey).(string)
	return id, ok && id != ""
}

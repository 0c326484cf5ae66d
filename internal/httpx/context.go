package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	sessionIDKey contextKey = "sessionID"
	requestIDKey contextKey = "requestID"
)

// UserIDFrom retrieves the authenticated user id from the request context.
// Empty string means anonymous.
func UserIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// SessionIDFrom retrieves the session id backing the current cookie.
func SessionIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithSession returns a new context carrying the user and session ids.
func ContextWithSession(ctx context.Context, userID, sessionID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

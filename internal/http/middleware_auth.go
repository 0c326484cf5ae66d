package http

import (
	"errors"
	"net/http"

	"vinylapi/internal/auth"
	"vinylapi/internal/httpx"
	"vinylapi/internal/usecase"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "vinyl_session"

// SessionAuth resolves the session cookie into an authenticated user. The
// cookie token's jti must still exist in the sessions table, so sign-out
// revokes it immediately.
type SessionAuth struct {
	secret   string
	sessions usecase.SessionRepository
}

func NewSessionAuth(secret string, sessions usecase.SessionRepository) *SessionAuth {
	return &SessionAuth{
		secret:   secret,
		sessions: sessions,
	}
}

// resolve returns the user and session ids for a valid cookie, or empty
// strings. An absent or invalid cookie is the anonymous state, never an
// error; only an unexpected store failure is returned.
func (a *SessionAuth) resolve(r *http.Request) (userID, sessionID string, err error) {
	cookie, cookieErr := r.Cookie(SessionCookie)
	if cookieErr != nil || cookie.Value == "" {
		return "", "", nil
	}

	claims, parseErr := auth.ParseToken(a.secret, cookie.Value)
	if parseErr != nil {
		return "", "", nil
	}

	session, getErr := a.sessions.GetByID(r.Context(), claims.ID)
	if getErr != nil {
		if errors.Is(getErr, usecase.ErrNotFound) {
			return "", "", nil
		}
		return "", "", getErr
	}
	if session.UserID != claims.Sub {
		return "", "", nil
	}

	_ = a.sessions.UpdateLastUsed(r.Context(), session.ID)
	return session.UserID, session.ID, nil
}

// Optional injects the user when a valid session cookie is present and
// passes anonymous requests through untouched.
func (a *SessionAuth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, sessionID, err := a.resolve(r)
		if err != nil {
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
			return
		}
		if userID != "" {
			ctx := httpx.ContextWithSession(r.Context(), userID, sessionID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// Require rejects requests without a valid session cookie.
func (a *SessionAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, sessionID, err := a.resolve(r)
		if err != nil {
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
			return
		}
		if userID == "" {
			httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
			return
		}
		ctx := httpx.ContextWithSession(r.Context(), userID, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

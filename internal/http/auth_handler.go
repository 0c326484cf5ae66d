package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vinylapi/internal/auth"
	"vinylapi/internal/entity"
	"vinylapi/internal/httpx"
	"vinylapi/internal/usecase"
)

const sessionTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	secret   string
	users    usecase.UserRepository
	sessions usecase.SessionRepository
}

func NewAuthHandler(secret string, users usecase.UserRepository, sessions usecase.SessionRepository) *AuthHandler {
	return &AuthHandler{
		secret:   secret,
		users:    users,
		sessions: sessions,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input registerRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(input); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	user := entity.User{
		Email:    input.Email,
		Username: input.Username,
		Password: hashed,
	}
	if err := h.users.Create(r.Context(), &user); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			httpx.JSONError(r, w, http.StatusConflict, "ALREADY_EXISTS", "Email already registered", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(r, w, user)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /auth/login. On success a signed session token is set
// as an HttpOnly cookie; the token's jti is the session row id.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(input); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	user, err := h.users.GetByEmail(r.Context(), input.Email)
	if err != nil && !errors.Is(err, usecase.ErrNotFound) {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	// Unknown email and wrong password share one message so login attempts
	// cannot reveal which emails are registered.
	if err != nil || !auth.VerifyPassword(user.Password, input.Password) {
		httpx.JSONError(r, w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid login credentials", nil)
		return
	}

	session := entity.Session{
		UserID:    user.ID,
		UserAgent: r.UserAgent(),
		IPAddress: clientIP(r),
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := h.sessions.Create(r.Context(), &session); err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, session.ID, sessionTTL)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.JSONSuccess(r, w, map[string]interface{}{
		"user": user,
	}, nil)
}

// Logout handles POST /auth/logout. It runs behind Require; deleting the
// session row revokes the cookie token even before its expiry.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := httpx.SessionIDFrom(r)
	if sessionID != "" {
		if err := h.sessions.Delete(r.Context(), sessionID); err != nil {
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	httpx.JSONSuccessNoContent(w)
}

// Me handles GET /me behind Optional auth. Anonymous is a valid state and
// renders user: null rather than failing.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONSuccess(r, w, map[string]interface{}{"user": nil}, nil)
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		writeUsecaseError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, map[string]interface{}{"user": user}, nil)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"vinylapi/internal/auth"
	"vinylapi/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestUser is a mock user for testing
var TestUser = entity.User{
	ID:        "test-user-id-123",
	Username:  "testuser",
	Email:     "test@example.com",
	Password:  "hashedpassword",
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestSession is a mock session for testing
var TestSession = entity.Session{
	ID:        "test-session-id-456",
	UserID:    TestUser.ID,
	UserAgent: "test-agent",
	IPAddress: "192.0.2.1",
	ExpiresAt: time.Now().Add(time.Hour),
	CreatedAt: time.Now(),
}

// GenerateTestToken generates a session cookie token for testing
func GenerateTestToken(secret, userID, sessionID string) string {
	token, _ := auth.GenerateToken(secret, userID, sessionID, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired session cookie token for testing
func GenerateExpiredToken(secret, userID, sessionID string) string {
	c := auth.Claims{
		Sub: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithSession creates a new HTTP request carrying a session cookie
func NewRequestWithSession(method, path string, body interface{}, cookieName, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}

// AssertResponseBody checks if the response body contains expected field
func AssertResponseBody(t interface {
	Errorf(format string, args ...any)
}, body map[string]interface{}, key string, expectedValue interface{}) {
	value, ok := body[key]
	if !ok {
		t.Errorf("response body missing key %q", key)
		return
	}
	if value != expectedValue {
		t.Errorf("got %q for key %q, want %q", value, key, expectedValue)
	}
}

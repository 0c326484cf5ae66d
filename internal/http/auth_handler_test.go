package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vinylapi/internal/auth"
	"vinylapi/internal/entity"
	apphttp "vinylapi/internal/http"
	"vinylapi/internal/testutil"
	"vinylapi/internal/usecase"
	"vinylapi/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := map[string]interface{}{
		"email":    "test@example.com",
		"username": "testuser",
		"password": "longenough",
	}

	t.Run("success", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(ctrl)
		mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *entity.User) error {
				assert.Equal(t, "test@example.com", u.Email)
				assert.NotEqual(t, "longenough", u.Password) // stored hashed
				u.ID = "user-123"
				return nil
			})
		handler := apphttp.NewAuthHandler(testSecret, mockUsers, mocks.NewMockSessionRepository(ctrl))

		w := httptest.NewRecorder()
		handler.Register(w, testutil.NewRequest(http.MethodPost, "/auth/register", body))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusCreated)
		data, _ := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, "user-123", data["id"])
		_, passwordLeaked := data["password"]
		assert.False(t, passwordLeaked)
	})

	t.Run("error - duplicate email", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(ctrl)
		mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(usecase.ErrAlreadyExists)
		handler := apphttp.NewAuthHandler(testSecret, mockUsers, mocks.NewMockSessionRepository(ctrl))

		w := httptest.NewRecorder()
		handler.Register(w, testutil.NewRequest(http.MethodPost, "/auth/register", body))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusConflict)
	})

	t.Run("error - short password", func(t *testing.T) {
		handler := apphttp.NewAuthHandler(testSecret,
			mocks.NewMockUserRepository(ctrl), mocks.NewMockSessionRepository(ctrl))

		w := httptest.NewRecorder()
		handler.Register(w, testutil.NewRequest(http.MethodPost, "/auth/register", map[string]interface{}{
			"email":    "test@example.com",
			"username": "testuser",
			"password": "short",
		}))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusBadRequest)
		errBody, _ := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
	})
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)
	user := entity.User{ID: "user-123", Email: "test@example.com", Password: hashed}

	t.Run("success - sets session cookie", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(ctrl)
		mockSessions := mocks.NewMockSessionRepository(ctrl)
		mockUsers.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)
		mockSessions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *entity.Session) error {
				assert.Equal(t, "user-123", s.UserID)
				s.ID = "sess-1"
				return nil
			})
		handler := apphttp.NewAuthHandler(testSecret, mockUsers, mockSessions)

		w := httptest.NewRecorder()
		handler.Login(w, testutil.NewRequest(http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "test@example.com",
			"password": "correct-password",
		}))

		resp := w.Result()
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		cookie := sessionCookie(resp)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

		claims, err := auth.ParseToken(testSecret, cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Sub)
		assert.Equal(t, "sess-1", claims.ID)
	})

	t.Run("error - wrong password", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(ctrl)
		mockUsers.EXPECT().GetByEmail(gomock.Any(), "test@example.com").Return(user, nil)
		handler := apphttp.NewAuthHandler(testSecret, mockUsers, mocks.NewMockSessionRepository(ctrl))

		w := httptest.NewRecorder()
		handler.Login(w, testutil.NewRequest(http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "test@example.com",
			"password": "wrong",
		}))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusUnauthorized)
		errBody, _ := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "INVALID_CREDENTIALS", errBody["code"])
	})

	t.Run("error - unknown email uses the same message", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(ctrl)
		mockUsers.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").
			Return(entity.User{}, usecase.ErrNotFound)
		handler := apphttp.NewAuthHandler(testSecret, mockUsers, mocks.NewMockSessionRepository(ctrl))

		w := httptest.NewRecorder()
		handler.Login(w, testutil.NewRequest(http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "whatever",
		}))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusUnauthorized)
		errBody, _ := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "Invalid login credentials", errBody["message"])
	})

	t.Run("error - user lookup failure is a server error, not bad credentials", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(ctrl)
		mockUsers.EXPECT().GetByEmail(gomock.Any(), "test@example.com").
			Return(entity.User{}, errors.New("connection refused"))
		handler := apphttp.NewAuthHandler(testSecret, mockUsers, mocks.NewMockSessionRepository(ctrl))

		w := httptest.NewRecorder()
		handler.Login(w, testutil.NewRequest(http.MethodPost, "/auth/login", map[string]interface{}{
			"email":    "test@example.com",
			"password": "correct-password",
		}))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusInternalServerError)
		errBody, _ := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "INTERNAL_ERROR", errBody["code"])
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success - deletes the session and clears the cookie", func(t *testing.T) {
		mockSessions := mocks.NewMockSessionRepository(ctrl)
		mockSessions.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)
		handler := apphttp.NewAuthHandler(testSecret, mocks.NewMockUserRepository(ctrl), mockSessions)

		w := httptest.NewRecorder()
		r := withSession(testutil.NewRequest(http.MethodPost, "/auth/logout", nil), "user-123", "sess-1")
		handler.Logout(w, r)

		resp := w.Result()
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		cookie := sessionCookie(resp)
		require.NotNil(t, cookie)
		assert.Equal(t, "", cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success - signed-in user", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(ctrl)
		mockUsers.EXPECT().GetByID(gomock.Any(), "user-123").
			Return(entity.User{ID: "user-123", Username: "testuser"}, nil)
		handler := apphttp.NewAuthHandler(testSecret, mockUsers, mocks.NewMockSessionRepository(ctrl))

		w := httptest.NewRecorder()
		r := withSession(testutil.NewRequest(http.MethodGet, "/me", nil), "user-123", "sess-1")
		handler.Me(w, r)

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusOK)
		data, _ := resp.Body["data"].(map[string]interface{})
		userData, _ := data["user"].(map[string]interface{})
		assert.Equal(t, "testuser", userData["username"])
	})

	t.Run("success - anonymous renders user null", func(t *testing.T) {
		handler := apphttp.NewAuthHandler(testSecret,
			mocks.NewMockUserRepository(ctrl), mocks.NewMockSessionRepository(ctrl))

		w := httptest.NewRecorder()
		handler.Me(w, testutil.NewRequest(http.MethodGet, "/me", nil))

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusOK)
		data, _ := resp.Body["data"].(map[string]interface{})
		assert.Nil(t, data["user"])
	})
}

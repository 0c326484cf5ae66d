package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "vinylapi/internal/http"

	"github.com/stretchr/testify/assert"
)

func TestMethodMux(t *testing.T) {
	mux := apphttp.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	})

	t.Run("routes a registered method", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects an unregistered method", func(t *testing.T) {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

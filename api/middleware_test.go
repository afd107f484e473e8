package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	request := func(handler http.Handler, authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/projects", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("accepts the configured password", func(t *testing.T) {
		reached = false
		handler := newAuthMiddleware("s3cret").authenticate(next)

		rec := request(handler, "Bearer s3cret")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		reached = false
		handler := newAuthMiddleware("s3cret").authenticate(next)

		rec := request(handler, "Bearer wrong")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		reached = false
		handler := newAuthMiddleware("s3cret").authenticate(next)

		rec := request(handler, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		reached = false
		handler := newAuthMiddleware("s3cret").authenticate(next)

		rec := request(handler, "Basic s3cret")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("stays locked when no password is configured", func(t *testing.T) {
		reached = false
		handler := newAuthMiddleware("").authenticate(next)

		rec := request(handler, "Bearer ")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})
}

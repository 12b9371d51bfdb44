package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fundkit/pkg/ratelimit"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	newHandler := func(limit int) http.Handler {
		limiter, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), ratelimit.Config{
			Limit:  limit,
			Window: time.Minute,
		})
		require.NoError(t, err)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		return ratelimit.Middleware(limiter, ratelimit.ByClientIP())(next)
	}

	t.Run("denies after limit with retry headers", func(t *testing.T) {
		handler := newHandler(2)

		for range 2 {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/signup", nil)
			req.RemoteAddr = "10.0.0.1:5000"
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/signup", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("different clients do not share a window", func(t *testing.T) {
		handler := newHandler(1)

		first := httptest.NewRequest(http.MethodPost, "/signup", nil)
		first.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, first)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		second := httptest.NewRequest(http.MethodPost, "/signup", nil)
		second.RemoteAddr = "10.0.0.2:5000"
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, second)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("forwarded header wins over socket address", func(t *testing.T) {
		handler := newHandler(1)

		for i, ip := range []string{"1.2.3.4", "1.2.3.4"} {
			req := httptest.NewRequest(http.MethodPost, "/signup", nil)
			req.RemoteAddr = "10.0.0.1:5000"
			req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if i == 0 {
				assert.Equal(t, http.StatusNoContent, rec.Code)
			} else {
				assert.Equal(t, http.StatusTooManyRequests, rec.Code)
			}
		}
	})
}

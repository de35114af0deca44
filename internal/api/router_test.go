package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Config{})

	w := get(r, "/ping", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true, "message": "Server is up and running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestID_Echoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Config{})

	w := get(r, "/ping", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestReady(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(Config{ReadyChecks: map[string]Check{
		"postgres": func(context.Context) error { return nil },
	}})
	w := get(r, "/readyz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	r = NewRouter(Config{ReadyChecks: map[string]Check{
		"postgres": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("connection refused") },
	}})
	w = get(r, "/readyz", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Ready  bool              `json:"ready"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Ready)
	assert.Equal(t, "ok", body.Checks["postgres"])
	assert.Equal(t, "unavailable", body.Checks["redis"])
}

func TestAdminRoutesRequireCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Config{})

	w := get(r, "/v1/admin/reservations", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMemoryLimiter(t *testing.T) {
	l := NewMemoryLimiter(2, time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, _ := l.Allow(ctx, "a")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "b")
	assert.True(t, ok, "keys are limited independently")
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(l Limiter, failOpen bool) *gin.Engine {
		r := gin.New()
		r.GET("/x", RateLimit(l, "x", failOpen), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	r := build(NewMemoryLimiter(1, time.Hour), false)
	assert.Equal(t, http.StatusNoContent, get(r, "/x", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/x", nil).Code)

	assert.Equal(t, http.StatusNoContent, get(build(failingLimiter{}, true), "/x", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(build(failingLimiter{}, false), "/x", nil).Code)
}

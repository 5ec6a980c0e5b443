//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/service/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idempotencyFixture struct {
	router *gin.Engine
	calls  atomic.Int32
	status int
	now    time.Time
}

func newIdempotencyFixture(t *testing.T) *idempotencyFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &idempotencyFixture{status: http.StatusOK, now: time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)}
	store := cache.NewTTLCache[*cachedResponse](16, time.Hour)
	t.Cleanup(store.Stop)

	f.router = gin.New()
	f.router.Use(RequestID(), Idempotency(IdempotencyConfig{
		Cache:   store,
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
		Now:     func() time.Time { return f.now },
	}))
	handler := func(c *gin.Context) {
		n := f.calls.Add(1)
		c.JSON(f.status, gin.H{"call": n})
	}
	f.router.POST("/sessions/:id/commit", handler)
	f.router.GET("/sessions/:id", handler)
	return f
}

func (f *idempotencyFixture) do(method, path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysSuccessfulResponse(t *testing.T) {
	f := newIdempotencyFixture(t)

	first := f.do(http.MethodPost, "/sessions/s-1/commit", "commit-1", `{}`)
	second := f.do(http.MethodPost, "/sessions/s-1/commit", "commit-1", `{}`)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotentReplayHeader))
	assert.Empty(t, first.Header().Get(IdempotentReplayHeader))
	assert.Equal(t, int32(1), f.calls.Load())
	assert.Len(t, second.Header().Values(RequestIDHeader), 1)
	assert.NotEqual(t, first.Header().Get(RequestIDHeader), second.Header().Get(RequestIDHeader))
}

func TestIdempotency_PassThrough(t *testing.T) {
	tests := []struct {
		name   string
		method string
		key    string
	}{
		{name: "no key", method: http.MethodPost},
		{name: "safe method", method: http.MethodGet, key: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIdempotencyFixture(t)
			path := "/sessions/s-1"
			if tt.method == http.MethodPost {
				path += "/commit"
			}

			f.do(tt.method, path, tt.key, "")
			w := f.do(tt.method, path, tt.key, "")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, int32(2), f.calls.Load())
		})
	}
}

func TestIdempotency_KeyIsScopedToPath(t *testing.T) {
	f := newIdempotencyFixture(t)

	f.do(http.MethodPost, "/sessions/s-1/commit", "same-key", `{}`)
	w := f.do(http.MethodPost, "/sessions/s-2/commit", "same-key", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(IdempotentReplayHeader))
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestIdempotency_DifferentBodyIsRejected(t *testing.T) {
	f := newIdempotencyFixture(t)

	f.do(http.MethodPost, "/sessions/s-1/commit", "commit-1", `{"a":1}`)
	w := f.do(http.MethodPost, "/sessions/s-1/commit", "commit-1", `{"a":2}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Idempotency key was already used for a different request")
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestIdempotency_FailuresAreNotRemembered(t *testing.T) {
	f := newIdempotencyFixture(t)
	f.status = http.StatusBadGateway

	first := f.do(http.MethodPost, "/sessions/s-1/commit", "commit-1", `{}`)
	f.status = http.StatusOK
	second := f.do(http.MethodPost, "/sessions/s-1/commit", "commit-1", `{}`)

	assert.Equal(t, http.StatusBadGateway, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestIdempotency_ExpiredEntriesAreNotReplayed(t *testing.T) {
	f := newIdempotencyFixture(t)

	f.do(http.MethodPost, "/sessions/s-1/commit", "commit-1", `{}`)
	f.now = f.now.Add(IdempotencyKeyTTL + time.Second)
	w := f.do(http.MethodPost, "/sessions/s-1/commit", "commit-1", `{}`)

	assert.Empty(t, w.Header().Get(IdempotentReplayHeader))
	assert.Equal(t, int32(2), f.calls.Load())
}

func TestIdempotency_ConcurrentDuplicateIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := cache.NewTTLCache[*cachedResponse](16, time.Hour)
	defer store.Stop()

	entered := make(chan struct{})
	release := make(chan struct{})
	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{Cache: store, Enabled: true}))
	router.POST("/commit", func(c *gin.Context) {
		close(entered)
		<-release
		c.Status(http.StatusOK)
	})

	done := make(chan int)
	go func() {
		req := httptest.NewRequest(http.MethodPost, "/commit", nil)
		req.Header.Set(IdempotencyKeyHeader, "commit-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		done <- w.Code
	}()
	<-entered

	req := httptest.NewRequest(http.MethodPost, "/commit", nil)
	req.Header.Set(IdempotencyKeyHeader, "commit-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	close(release)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, http.StatusOK, <-done)
}

func TestIdempotency_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{}))
	router.POST("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDefaultIdempotencyConfig(t *testing.T) {
	cfg := DefaultIdempotencyConfig()
	defer cfg.Cache.Stop()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, IdempotencyKeyTTL, cfg.TTL)
	assert.NotNil(t, cfg.Now)
}

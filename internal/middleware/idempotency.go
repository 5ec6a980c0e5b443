package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pack-planner/internal/domain/dto"
	"github.com/guttosm/pack-planner/internal/i18n"
	"github.com/guttosm/pack-planner/internal/metrics"
	"github.com/guttosm/pack-planner/internal/service/cache"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotentReplayHeader marks a response served from the replay cache.
	IdempotentReplayHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a response can be replayed.
	IdempotencyKeyTTL = 5 * time.Minute
	// idempotencyCacheSize bounds the number of remembered responses.
	idempotencyCacheSize = 10000
)

// cachedResponse is a replayable response and the fingerprint of the body
// that produced it.
type cachedResponse struct {
	StatusCode  int
	Headers     http.Header
	Body        []byte
	Fingerprint string
	StoredAt    time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   cache.Cache[*cachedResponse]
	TTL     time.Duration
	Enabled bool
	Now     func() time.Time
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache: cache.NewTTLCache[*cachedResponse](idempotencyCacheSize, IdempotencyKeyTTL,
			cache.WithRecorder[*cachedResponse](metrics.RecordIdempotency),
		),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
		Now:     time.Now,
	}
}

// Idempotency returns a middleware that replays the response of a mutating
// request sent again with the same Idempotency-Key. Reusing a key with a
// different body is rejected with 422 and a duplicate that arrives while the
// first is still running gets 409. Only 2xx responses are remembered.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if cfg.TTL <= 0 {
		cfg.TTL = IdempotencyKeyTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	var inFlight sync.Map

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch &&
			c.Request.Method != http.MethodDelete {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey := requestKey(key, c.Request)
		fingerprint := bodyFingerprint(c.Request)

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			if cfg.Now().Sub(cached.StoredAt) > cfg.TTL {
				cfg.Cache.Invalidate(cacheKey)
			} else {
				replay(c, cached, fingerprint)
				return
			}
		}

		if _, busy := inFlight.LoadOrStore(cacheKey, struct{}{}); busy {
			abortIdempotency(c, http.StatusConflict, dto.ErrCodeConflict, i18n.ErrKeyConflict)
			return
		}
		defer inFlight.Delete(cacheKey)

		writer := &responseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			cfg.Cache.Set(cacheKey, &cachedResponse{
				StatusCode:  status,
				Headers:     writer.Header().Clone(),
				Body:        writer.body.Bytes(),
				Fingerprint: fingerprint,
				StoredAt:    cfg.Now(),
			})
		}
	}
}

// perRequestHeaders are owned by other middleware and never replayed.
var perRequestHeaders = map[string]struct{}{
	RequestIDHeader:    {},
	"Content-Length":   {},
	"Content-Encoding": {},
	"Vary":             {},
}

func replay(c *gin.Context, cached *cachedResponse, fingerprint string) {
	if cached.Fingerprint != fingerprint {
		abortIdempotency(c, http.StatusUnprocessableEntity, dto.ErrCodeValidation, i18n.ErrKeyIdempotencyMismatch)
		return
	}
	for k, values := range cached.Headers {
		if _, skip := perRequestHeaders[k]; skip {
			continue
		}
		c.Writer.Header()[k] = values
	}
	c.Header(IdempotentReplayHeader, "true")
	contentType := cached.Headers.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(cached.StatusCode, contentType, cached.Body)
	c.Abort()
}

func abortIdempotency(c *gin.Context, status int, code, msgKey string) {
	message := i18n.GetTranslator().Translate(msgKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(code, message).WithRequestID(GetRequestID(c)))
}

// requestKey scopes an idempotency key to the method and path it was sent to.
func requestKey(idempotencyKey string, req *http.Request) string {
	h := sha256.New()
	h.Write([]byte(idempotencyKey))
	h.Write([]byte{0})
	h.Write([]byte(req.Method))
	h.Write([]byte{0})
	h.Write([]byte(req.URL.Path))
	return hex.EncodeToString(h.Sum(nil))
}

// bodyFingerprint hashes the request body and restores it for the handler.
func bodyFingerprint(req *http.Request) string {
	if req.Body == nil {
		return ""
	}
	body, _ := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(body))
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// responseWriter tees the response body so it can be replayed.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seongmin-h/decisionlog/backend/internal/logger"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"

	// idempotencyTTL bounds how long a cached response can be replayed.
	idempotencyTTL = 24 * time.Hour
)

type idempotencyRecord struct {
	statusCode int
	body       []byte
	storedAt   time.Time
}

// idempotencyStore is an in-memory cache of responses keyed by
// key + route + user. Entries expire after idempotencyTTL.
type idempotencyStore struct {
	mu      sync.Mutex
	records map[string]*idempotencyRecord
}

func newIdempotencyStore() *idempotencyStore {
	s := &idempotencyStore{records: make(map[string]*idempotencyRecord)}
	go s.cleanup()
	return s
}

func (s *idempotencyStore) cleanup() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for k, rec := range s.records {
			if now.Sub(rec.storedAt) > idempotencyTTL {
				delete(s.records, k)
			}
		}
		s.mu.Unlock()
	}
}

func (s *idempotencyStore) get(key string) *idempotencyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return nil
	}
	if time.Since(rec.storedAt) > idempotencyTTL {
		delete(s.records, key)
		return nil
	}
	return rec
}

func (s *idempotencyStore) store(key string, statusCode int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = &idempotencyRecord{
		statusCode: statusCode,
		body:       append([]byte(nil), body...),
		storedAt:   time.Now(),
	}
}

// idempotencyBodyWriter wraps gin.ResponseWriter to capture the response body for idempotency caching
type idempotencyBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *idempotencyBodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency lets clients retry create and update requests safely.
// If an Idempotency-Key header is provided:
//   - Check if we've seen this key before for the same route and user
//   - If yes, return the cached response (replay)
//   - If no, process the request and cache the response for future replays
//
// The middleware only applies to mutating requests (POST, PUT, PATCH).
// GET and DELETE requests are ignored.
func Idempotency() gin.HandlerFunc {
	store := newIdempotencyStore()

	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		// Only apply to mutating requests
		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodPut && method != http.MethodPatch {
			c.Next()
			return
		}

		// Check for idempotency key header
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			// No idempotency key - proceed without caching
			c.Next()
			return
		}

		userID, _ := c.Get("user_id")
		userIDStr, _ := userID.(string)

		// Build the cache key from key + route + user
		cacheKey := key + "|" + method + " " + c.FullPath() + "|" + userIDStr

		// If we found an existing record, replay the cached response
		if existing := store.get(cacheKey); existing != nil {
			log.Info("replaying idempotent response",
				logger.String("key", key),
				logger.Int("status_code", existing.statusCode),
			)

			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.statusCode, "application/json", existing.body)
			c.Abort()
			return
		}

		// No existing record - capture the response for storage
		blw := &idempotencyBodyWriter{
			body:           bytes.NewBuffer(nil),
			ResponseWriter: c.Writer,
		}
		c.Writer = blw

		// Process the request
		c.Next()

		// Only cache successful responses (2xx)
		statusCode := c.Writer.Status()
		if statusCode >= 200 && statusCode < 300 {
			store.store(cacheKey, statusCode, blw.body.Bytes())
			log.Debug("stored idempotency key",
				logger.String("key", key),
				logger.Int("status_code", statusCode),
			)
		}
	}
}

package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"sync"
	"time"
)

// IdempotencyStore caches responses for requests carrying an
// Idempotency-Key header so retries are safe
type IdempotencyStore struct {
	mu       sync.Mutex
	entries  map[string]*idempotencyEntry
	ttl      time.Duration
	cleanup  time.Duration
	stopChan chan struct{}
}

type idempotencyEntry struct {
	// done is closed once the first request with this key finishes,
	// releasing any concurrent duplicates waiting on it
	done       chan struct{}
	statusCode int
	header     http.Header
	body       []byte
	storedAt   time.Time
}

// IdempotencyConfig holds idempotency store configuration
type IdempotencyConfig struct {
	TTL     time.Duration // How long cached responses live (default 24 hours)
	Cleanup time.Duration // Cleanup interval (default 10 minutes)
}

// NewIdempotencyStore creates a new idempotency store
func NewIdempotencyStore(cfg IdempotencyConfig) *IdempotencyStore {
	if cfg.TTL == 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = 10 * time.Minute
	}

	s := &IdempotencyStore{
		entries:  make(map[string]*idempotencyEntry),
		ttl:      cfg.TTL,
		cleanup:  cfg.Cleanup,
		stopChan: make(chan struct{}),
	}

	go s.cleanupLoop()

	return s
}

// Stop stops the store cleanup goroutine
func (s *IdempotencyStore) Stop() {
	close(s.stopChan)
}

func (s *IdempotencyStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanupExpired()
		case <-s.stopChan:
			return
		}
	}
}

func (s *IdempotencyStore) cleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for key, e := range s.entries {
		if !e.storedAt.IsZero() && e.storedAt.Before(cutoff) {
			delete(s.entries, key)
		}
	}
}

// generateKey builds a composite key so the same Idempotency-Key used
// on a different endpoint or by a different client is a different entry
func generateKey(r *http.Request, idempotencyKey string) string {
	h := sha256.New()
	h.Write([]byte(r.Method))
	h.Write([]byte{0})
	h.Write([]byte(r.URL.Path))
	h.Write([]byte{0})
	h.Write([]byte(r.RemoteAddr))
	h.Write([]byte{0})
	h.Write([]byte(idempotencyKey))
	return hex.EncodeToString(h.Sum(nil))
}

// Idempotency returns a middleware that caches responses for mutating
// requests carrying an Idempotency-Key header. The first request with a
// given key executes normally; duplicates receive the cached response
// with an X-Idempotency-Replayed header. Concurrent duplicates block
// until the first request completes.
func Idempotency(store *IdempotencyStore) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only mutating methods are candidates
			if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodDelete {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := r.Header.Get("Idempotency-Key")
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}

			key := generateKey(r, idempotencyKey)

			store.mu.Lock()
			entry, exists := store.entries[key]
			if !exists {
				entry = &idempotencyEntry{done: make(chan struct{})}
				store.entries[key] = entry
				store.mu.Unlock()

				// First request with this key: execute and capture
				capture := &idempotencyResponseWriter{
					ResponseWriter: w,
					statusCode:     http.StatusOK,
					body:           &bytes.Buffer{},
				}

				next.ServeHTTP(capture, r)

				store.mu.Lock()
				entry.statusCode = capture.statusCode
				entry.header = capture.Header().Clone()
				entry.body = capture.body.Bytes()
				entry.storedAt = time.Now()
				store.mu.Unlock()

				close(entry.done)
				return
			}
			store.mu.Unlock()

			// Duplicate: wait for the original to finish, then replay
			select {
			case <-entry.done:
			case <-r.Context().Done():
				return
			}

			store.mu.Lock()
			statusCode := entry.statusCode
			header := entry.header
			body := entry.body
			store.mu.Unlock()

			for k, vals := range header {
				for _, v := range vals {
					w.Header().Add(k, v)
				}
			}
			w.Header().Set("X-Idempotency-Replayed", "true")
			w.WriteHeader(statusCode)
			_, _ = w.Write(body)
		})
	}
}

// idempotencyResponseWriter captures the response while passing it
// through to the client
type idempotencyResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	body        *bytes.Buffer
	wroteHeader bool
}

func (irw *idempotencyResponseWriter) WriteHeader(code int) {
	if irw.wroteHeader {
		return
	}
	irw.wroteHeader = true
	irw.statusCode = code
	irw.ResponseWriter.WriteHeader(code)
}

func (irw *idempotencyResponseWriter) Write(b []byte) (int, error) {
	irw.body.Write(b)
	return irw.ResponseWriter.Write(b)
}

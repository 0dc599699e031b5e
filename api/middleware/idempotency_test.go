package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type memoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string]string{}}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (m *memoryStore) SetNX(_ context.Context, key string, value any, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.values[key]; exists {
		return false, nil
	}
	m.values[key] = value.(string)
	return true, nil
}

func (m *memoryStore) IdempotencyKey(scope, id string) string {
	return "hf:idempotency:" + scope + ":" + id
}

func (m *memoryStore) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func newCountingHandler(status int, body string) (*int, http.Handler) {
	calls := new(int)
	return calls, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	store := newMemoryStore()
	calls, handler := newCountingHandler(http.StatusCreated, `{"data":{"new_streak":3}}`)
	wrapped := Idempotency(store, nil)(handler)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/streaks", strings.NewReader(`{"habit_id":"x"}`))
		req.Header.Set("Idempotency-Key", "key-1")
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	second := send()

	if *calls != 1 {
		t.Fatalf("handler must run once, ran %d times", *calls)
	}
	if first.Code != http.StatusCreated || second.Code != http.StatusCreated {
		t.Fatalf("statuses: %d, %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Fatalf("replayed body differs: %q vs %q", first.Body.String(), second.Body.String())
	}
	if ct := second.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("replayed content type: %q", ct)
	}
}

func TestIdempotencyRejectsKeyReuseWithDifferentBody(t *testing.T) {
	store := newMemoryStore()
	_, handler := newCountingHandler(http.StatusOK, `{}`)
	wrapped := Idempotency(store, nil)(handler)

	first := httptest.NewRequest(http.MethodPost, "/api/v1/habits", strings.NewReader(`{"name":"run"}`))
	first.Header.Set("Idempotency-Key", "key-2")
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, first)

	second := httptest.NewRequest(http.MethodPost, "/api/v1/habits", strings.NewReader(`{"name":"swim"}`))
	second.Header.Set("Idempotency-Key", "key-2")
	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, second)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on body mismatch, got %d", rec.Code)
	}
}

func TestIdempotencySkipsUnguardedRoutes(t *testing.T) {
	store := newMemoryStore()
	calls, handler := newCountingHandler(http.StatusOK, `{}`)
	wrapped := Idempotency(store, nil)(handler)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/habits", nil)
		req.Header.Set("Idempotency-Key", "key-3")
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
	}
	if *calls != 2 {
		t.Fatalf("GET must not be deduplicated, ran %d times", *calls)
	}
}

func TestIdempotencyOptionalHeader(t *testing.T) {
	store := newMemoryStore()
	calls, handler := newCountingHandler(http.StatusOK, `{}`)
	wrapped := Idempotency(store, nil)(handler)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/streaks", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
	}
	if *calls != 2 {
		t.Fatalf("requests without a key run through, ran %d times", *calls)
	}
}

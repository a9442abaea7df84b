package ratelimit

import (
	"context"
	"sync"
	"time"
)

// memoryWindow is one key's counter in the current fixed window.
type memoryWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryStore is an in-process CounterStore using fixed windows that reset at
// the boundary. Counts do not survive a restart; use the Redis store where
// durability across restarts matters.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]memoryWindow
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]memoryWindow),
		now:     time.Now,
	}
}

// Incr atomically increments the key's counter, starting a fresh window when
// the previous one has elapsed.
func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	w, ok := s.windows[key]
	if !ok || !w.resetAt.After(now) {
		w = memoryWindow{resetAt: now.Add(window)}
	}
	w.count++
	s.windows[key] = w

	return w.count, w.resetAt.Sub(now), nil
}

// Sweep drops windows that have already reset, bounding memory growth.
// Correctness never depends on it; Incr ignores elapsed windows on its own.
func (s *MemoryStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, w := range s.windows {
		if !w.resetAt.After(now) {
			delete(s.windows, key)
		}
	}
}

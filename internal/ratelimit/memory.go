package ratelimit

import (
	"context"
	"sync"
	"time"
)

const sweepInterval = 60 * time.Second

type entry struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a process-local fixed-window counter. Not precise under
// restart or clock skew; acceptable for abuse deterrence.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates a store and starts a background sweep that drops
// expired windows every minute.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*entry),
		stop:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Check implements Store.
func (s *MemoryStore) Check(_ context.Context, key string, limit int, window time.Duration) (Result, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !now.Before(e.resetAt) {
		resetAt := now.Add(window)
		s.entries[key] = &entry{count: 1, resetAt: resetAt}
		return Result{Allowed: true, Remaining: limit - 1, ResetAt: resetAt}, nil
	}

	if e.count < limit {
		e.count++
		return Result{Allowed: true, Remaining: limit - e.count, ResetAt: e.resetAt}, nil
	}

	return Result{Allowed: false, Remaining: 0, ResetAt: e.resetAt}, nil
}

// Close stops the background sweep.
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for key, e := range s.entries {
				if !now.Before(e.resetAt) {
					delete(s.entries, key)
				}
			}
			s.mu.Unlock()
		}
	}
}

package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store is the in-memory Cache used in dev mode and as a test double.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}

	// Copy so callers cannot mutate cached bytes afterwards.
	copied := make([]byte, len(value))
	copy(copied, value)

	s.mu.Lock()
	s.entries[key] = entry{
		value:     copied,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

/*
Copyright © 2025 Spektate Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore implements Store in process memory
type MemoryStore struct {
	entries map[string]memoryEntry
	mutex   sync.RWMutex
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the value for key if it has not expired
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mutex.RLock()
	entry, exists := s.entries[key]
	s.mutex.RUnlock()

	if !exists {
		return nil, false, nil
	}

	if !s.now().Before(entry.expiresAt) {
		s.mutex.Lock()
		delete(s.entries, key)
		s.mutex.Unlock()
		return nil, false, nil
	}

	return copyBytes(entry.value), true, nil
}

// Set stores value under key until ttl elapses
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	s.mutex.Lock()
	s.entries[key] = memoryEntry{
		value:     copyBytes(value),
		expiresAt: s.now().Add(ttl),
	}
	s.mutex.Unlock()
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// MemoryCache is an in-process ResultCache used when no Redis address is
// configured.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache creates a cache whose entries live for ttl.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if !m.now().Before(entry.expires) {
		delete(m.entries, key)
		return nil, ErrCacheMiss
	}
	return append([]byte(nil), entry.value...), nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	// drop expired entries so the map stays bounded by live traffic
	for k, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, k)
		}
	}
	m.entries[key] = memoryEntry{value: append([]byte(nil), value...), expires: now.Add(m.ttl)}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

package repository

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// DefaultMemoryCacheEntries bounds a MemoryCache built without an explicit limit.
const DefaultMemoryCacheEntries = 10000

type cacheEntry struct {
	key     string
	value   string
	expires time.Time // zero means no expiry
}

// MemoryCache is an in-process cache with per-entry expiry. Once maxEntries
// is reached the oldest entry is evicted.
type MemoryCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	order      *list.List // oldest at the front
	items      map[string]*list.Element
	now        func() time.Time
}

// NewMemoryCache creates a cache whose entries live for ttl (ttl <= 0 never
// expires). maxEntries <= 0 uses DefaultMemoryCacheEntries.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryCacheEntries
	}
	return &MemoryCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		order:      list.New(),
		items:      make(map[string]*list.Element),
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.items[key]
	if !ok {
		return "", false, nil
	}
	entry := el.Value.(*cacheEntry)
	if m.expired(entry) {
		m.remove(el)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expires time.Time
	if m.ttl > 0 {
		expires = m.now().Add(m.ttl)
	}

	if el, ok := m.items[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.expires = expires
		m.order.MoveToBack(el)
		return nil
	}

	m.items[key] = m.order.PushBack(&cacheEntry{key: key, value: value, expires: expires})
	for m.order.Len() > m.maxEntries {
		m.remove(m.order.Front())
	}
	return nil
}

// Len reports the number of stored entries, expired ones included until
// they are next read or evicted.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

func (m *MemoryCache) expired(e *cacheEntry) bool {
	return !e.expires.IsZero() && !m.now().Before(e.expires)
}

func (m *MemoryCache) remove(el *list.Element) {
	m.order.Remove(el)
	delete(m.items, el.Value.(*cacheEntry).key)
}

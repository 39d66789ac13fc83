package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store bounded by a maximum entry count.
// Entries past the bound are evicted least-recently-used first; expired
// entries are dropped lazily on access.
type MemoryStore struct {
	mu         sync.Mutex
	maxEntries int
	ll         *list.List
	items      map[string]*list.Element
}

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// NewMemoryStore creates a memory store holding at most maxEntries
// values. maxEntries <= 0 means unbounded.
func NewMemoryStore(maxEntries int) *MemoryStore {
	return &MemoryStore{
		maxEntries: maxEntries,
		ll:         list.New(),
		items:      make(map[string]*list.Element),
	}
}

// Get returns the value stored under key, or ErrMiss. A hit marks the
// entry most-recently-used.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.items[key]
	if !ok {
		CacheMisses.WithLabelValues("memory").Inc()
		return nil, ErrMiss
	}

	entry := el.Value.(*memoryEntry)
	if time.Now().After(entry.expiresAt) {
		s.removeElement(el)
		CacheMisses.WithLabelValues("memory").Inc()
		return nil, ErrMiss
	}

	s.ll.MoveToFront(el)
	CacheHits.WithLabelValues("memory").Inc()
	return entry.value, nil
}

// Set stores value under key for ttl, evicting the least-recently-used
// entry when the store is full.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := time.Now().Add(ttl)

	if el, ok := s.items[key]; ok {
		entry := el.Value.(*memoryEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		s.ll.MoveToFront(el)
		return nil
	}

	el := s.ll.PushFront(&memoryEntry{key: key, value: value, expiresAt: expiresAt})
	s.items[key] = el

	if s.maxEntries > 0 && s.ll.Len() > s.maxEntries {
		if oldest := s.ll.Back(); oldest != nil {
			s.removeElement(oldest)
			CacheEvictions.Inc()
		}
	}

	return nil
}

// Delete removes key from the store.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.items[key]; ok {
		s.removeElement(el)
	}
	return nil
}

// Len returns the current number of entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}

func (s *MemoryStore) removeElement(el *list.Element) {
	entry := el.Value.(*memoryEntry)
	s.ll.Remove(el)
	delete(s.items, entry.key)
}

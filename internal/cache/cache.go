// Package cache provides a small sharded LRU memoization cache.
//
// Identifier sanitization consults it on the hot matching paths; shards
// keep lock contention low when lookups come from several goroutines.
package cache

import (
	"hash/fnv"
	"sync"
)

const (
	// shardCount must be a power of 2 so shard selection reduces to a
	// bitwise AND of the key hash.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity bounds each shard when New gets no capacity.
	DefaultCapacity = 256
)

// Hash computes the shard hash for a key.
type Hash[K any] func(K) uint64

// StringHash is an FNV-1a hash for string keys.
func StringHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Memo is a sharded LRU memoization cache, safe for concurrent use.
// Construct with New; the zero value is not usable.
type Memo[K comparable, V any] struct {
	shards   [shardCount]*shard[K, V]
	hash     Hash[K]
	capacity int // per shard
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*entry[K, V]
	lru     *lruList[K]
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a Memo with the given per-shard capacity. A capacity of zero
// or less selects DefaultCapacity.
func New[K comparable, V any](capacity int, hash Hash[K]) *Memo[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	m := &Memo[K, V]{hash: hash, capacity: capacity}
	for i := range m.shards {
		m.shards[i] = &shard[K, V]{
			entries: make(map[K]*entry[K, V]),
			lru:     newLRUList[K](),
		}
	}
	return m
}

func (m *Memo[K, V]) shardFor(key K) *shard[K, V] {
	return m.shards[m.hash(key)&shardMask]
}

// Get returns the cached value for the key and refreshes its recency.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	s := m.shardFor(key)

	s.mu.RLock()
	_, exists := s.entries[key]
	s.mu.RUnlock()
	if !exists {
		var zero V
		return zero, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check: the entry may have been evicted between the locks.
	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e.node)
	return e.value, true
}

// GetOrCreate returns the cached value for the key, computing and storing
// it with create on a miss. create runs under the shard lock, so concurrent
// callers compute a key at most once; keep it fast.
func (m *Memo[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := m.Get(key); ok {
		return v
	}

	s := m.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		s.lru.MoveToFront(e.node)
		return e.value
	}

	value := create()
	for s.lru.Len() >= m.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
	}
	s.entries[key] = &entry[K, V]{value: value, node: s.lru.PushFront(key)}
	return value
}

// Len returns the total number of cached entries across all shards.
func (m *Memo[K, V]) Len() int {
	total := 0
	for _, s := range m.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Clear drops every entry.
func (m *Memo[K, V]) Clear() {
	for _, s := range m.shards {
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Package cache provides a sharded, key-indexed memoization table with
// in-flight build futures: for any key, at most one build executes,
// concurrent callers wait for the winner's result, and completed
// results are returned without re-building.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// Default configuration constants.
const (
	// DefaultShardCount is the number of shards for reduced lock
	// contention. Must be a power of 2 for fast modulo via bitwise AND.
	DefaultShardCount = 16

	// shardMask is used for fast shard selection (DefaultShardCount - 1).
	shardMask = DefaultShardCount - 1
)

// Hasher is a function that computes a hash for a key.
// Used by Memo for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Uint64Hasher returns the key itself as the hash (identity hash).
func Uint64Hasher(u uint64) uint64 {
	return u
}

// Memo is a thread-safe memoization table keyed by K.
//
// Do guarantees at-most-one-build-per-key under concurrent access:
// the first caller for a key inserts an in-flight future and runs the
// build; callers arriving while the build runs block on the future and
// receive the same result. There is no global lock and no eviction —
// entries live until Clear.
type Memo[K comparable, V any] struct {
	shards [DefaultShardCount]*memoShard[K, V]
	hasher Hasher[K]

	// Statistics (atomic for zero-allocation reads)
	hits   atomic.Uint64
	misses atomic.Uint64
}

// memoShard is a single shard of the table.
// Each shard has its own mutex for reduced contention.
type memoShard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*memoEntry[V]
}

// memoEntry is a completed or in-flight build result. done is closed
// exactly once, after value/err are set.
type memoEntry[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// Stats contains table statistics for monitoring.
type Stats struct {
	// Entries is the number of memoized (or in-flight) entries.
	Entries int
	// Hits is the number of Do calls that found an entry.
	Hits uint64
	// Misses is the number of Do calls that ran a build.
	Misses uint64
	// HitRate is the hit rate (0.0 to 1.0).
	HitRate float64
}

// NewMemo creates a memoization table using hasher for shard selection.
// Use StringHasher or Uint64Hasher for common key types.
func NewMemo[K comparable, V any](hasher Hasher[K]) *Memo[K, V] {
	m := &Memo[K, V]{hasher: hasher}
	for i := range m.shards {
		m.shards[i] = &memoShard[K, V]{entries: make(map[K]*memoEntry[V])}
	}
	return m
}

// getShard returns the shard for a given key.
// Uses bitwise AND for fast modulo (only works with power-of-2 shard count).
func (m *Memo[K, V]) getShard(key K) *memoShard[K, V] {
	return m.shards[m.hasher(key)&shardMask]
}

// Do returns the memoized value for key, building it with build when
// absent. A build failure is delivered to the caller and to every
// waiter, but is not memoized: the key is cleared before the waiters
// are released, so a later Do may issue a fresh build. Do never
// re-runs a build on its own.
func (m *Memo[K, V]) Do(key K, build func() (V, error)) (V, error) {
	shard := m.getShard(key)

	shard.mu.Lock()
	if e, ok := shard.entries[key]; ok {
		shard.mu.Unlock()
		m.hits.Add(1)
		<-e.done
		return e.value, e.err
	}

	// Double-checked insertion: the lock covers the lookup and the
	// insert, so exactly one caller owns the build.
	e := &memoEntry[V]{done: make(chan struct{})}
	shard.entries[key] = e
	shard.mu.Unlock()

	m.misses.Add(1)
	e.value, e.err = build()
	if e.err != nil {
		shard.mu.Lock()
		delete(shard.entries, key)
		shard.mu.Unlock()
	}
	close(e.done)
	return e.value, e.err
}

// Get returns the completed value for key, if present. It does not
// wait for in-flight builds.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	shard := m.getShard(key)

	shard.mu.Lock()
	e, ok := shard.entries[key]
	shard.mu.Unlock()

	if !ok {
		var zero V
		return zero, false
	}
	select {
	case <-e.done:
		if e.err != nil {
			var zero V
			return zero, false
		}
		return e.value, true
	default:
		var zero V
		return zero, false
	}
}

// Len returns the total number of entries across all shards, including
// in-flight builds.
func (m *Memo[K, V]) Len() int {
	total := 0
	for _, shard := range m.shards {
		shard.mu.Lock()
		total += len(shard.entries)
		shard.mu.Unlock()
	}
	return total
}

// Clear removes all entries. In-flight builds still complete and are
// delivered to their waiters, but their results are forgotten.
func (m *Memo[K, V]) Clear() {
	for _, shard := range m.shards {
		shard.mu.Lock()
		shard.entries = make(map[K]*memoEntry[V])
		shard.mu.Unlock()
	}
}

// Stats returns current table statistics.
// This operation is mostly lock-free (atomic counters).
func (m *Memo[K, V]) Stats() Stats {
	hits := m.hits.Load()
	misses := m.misses.Load()

	var hitRate float64
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Entries: m.Len(),
		Hits:    hits,
		Misses:  misses,
		HitRate: hitRate,
	}
}

// ResetStats resets the hit and miss counters to zero.
func (m *Memo[K, V]) ResetStats() {
	m.hits.Store(0)
	m.misses.Store(0)
}

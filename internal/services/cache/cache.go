// Package cache provides a small in-memory TTL cache for responses that
// tolerate short staleness, like the public dashboard views.
package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Cache is the read-through store used by the response cache middleware
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Flush(ctx context.Context)
}

// Stats is a point-in-time counter snapshot
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	SizeBytes int64
}

type entry struct {
	value   []byte
	expires time.Time
	size    int64
}

// Memory is a size-bounded in-memory Cache. A background janitor sweeps
// expired entries; Stop must be called to release it.
type Memory struct {
	mu       sync.RWMutex
	entries  map[string]entry
	maxBytes int64
	size     int64

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64

	stop chan struct{}
	done chan struct{}
}

var _ Cache = (*Memory)(nil)

const defaultTTL = time.Minute

// NewMemory creates a memory cache bounded to maxSizeMB. A bound of zero
// or less means unbounded.
func NewMemory(maxSizeMB int64) *Memory {
	m := &Memory{
		entries:  make(map[string]entry),
		maxBytes: maxSizeMB * 1024 * 1024,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go m.janitor()
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || time.Now().After(e.expires) {
		m.misses.Add(1)
		return nil, false
	}
	m.hits.Add(1)
	return e.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	size := int64(len(key) + len(value))

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.entries[key]; ok {
		m.size -= old.size
	}
	m.makeRoomLocked(size)
	m.entries[key] = entry{value: value, expires: time.Now().Add(ttl), size: size}
	m.size += size
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.mu.Lock()
	if e, ok := m.entries[key]; ok {
		delete(m.entries, key)
		m.size -= e.size
	}
	m.mu.Unlock()
}

func (m *Memory) Flush(_ context.Context) {
	m.mu.Lock()
	m.entries = make(map[string]entry)
	m.size = 0
	m.mu.Unlock()
}

// Stats reports the cache counters
func (m *Memory) Stats() Stats {
	m.mu.RLock()
	size := m.size
	m.mu.RUnlock()
	return Stats{
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Evictions: m.evictions.Load(),
		SizeBytes: size,
	}
}

// Stop terminates the janitor goroutine
func (m *Memory) Stop() {
	close(m.stop)
	<-m.done
}

func (m *Memory) janitor() {
	defer close(m.done)
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stop:
			return
		}
	}
}

func (m *Memory) sweep() {
	now := time.Now()
	m.mu.Lock()
	for key, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, key)
			m.size -= e.size
			m.evictions.Add(1)
		}
	}
	m.mu.Unlock()
}

// makeRoomLocked evicts entries until the new size fits, expired first.
// Caller holds the write lock.
func (m *Memory) makeRoomLocked(needed int64) {
	if m.maxBytes <= 0 || m.size+needed <= m.maxBytes {
		return
	}

	now := time.Now()
	for key, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, key)
			m.size -= e.size
			m.evictions.Add(1)
		}
	}

	for key, e := range m.entries {
		if m.size+needed <= m.maxBytes {
			break
		}
		delete(m.entries, key)
		m.size -= e.size
		m.evictions.Add(1)
	}
}

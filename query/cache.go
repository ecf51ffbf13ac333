package query

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/philjs-dev/philjs/reactive"
)

// entry is the cache's internal, type-erased record for one key. Query[T]
// wraps an entry and restores its static type on read.
type entry struct {
	mu sync.Mutex

	state *reactive.Signal[State]
	data  *reactive.Signal[any]
	err   *reactive.Signal[error]

	fetcher func() (any, error)

	updatedAt  time.Time
	staleAfter time.Duration
	cacheAfter time.Duration

	subscribers int
	inflight    chan struct{}
	version     uint64
	evictTimer  *time.Timer
}

func newEntry() *entry {
	return &entry{
		state: reactive.NewSignal(Pending),
		data:  reactive.NewSignal[any](nil),
		err:   reactive.NewSignal[error](nil),
	}
}

// fetch runs the entry's fetcher, deduplicating concurrent callers onto the
// same inflight attempt unless force is set. background suppresses the
// Loading transition, used for stale-while-revalidate refetches that should
// keep serving the last-known value while a new one arrives.
func (e *entry) fetch(key string, force, background bool) {
	e.mu.Lock()
	if e.inflight != nil && !force {
		e.mu.Unlock()
		return
	}
	if !background {
		e.state.Set(Loading)
	}
	e.version++
	version := e.version
	done := make(chan struct{})
	e.inflight = done
	fetcher := e.fetcher
	e.mu.Unlock()

	if fetcher == nil {
		close(done)
		return
	}

	go func() {
		defer close(done)
		result, err := fetcher()

		e.mu.Lock()
		if e.version != version {
			// Superseded by a later fetch or refetch; drop this result.
			e.mu.Unlock()
			return
		}
		e.inflight = nil
		e.updatedAt = time.Now()
		e.mu.Unlock()

		if err != nil {
			e.err.Set(&ResourceError{Key: key, Err: err})
			e.state.Set(Error)
			return
		}
		e.err.Set(nil)
		e.data.Set(result)
		e.state.Set(Ready)
	}()
}

// Cache is a per-request (or process-local) store of Query and Mutation
// results, keyed by string. Construct one per request with NewCache so
// concurrent requests never see each other's data; ssr.ToString and
// ssr.ToStream accept a *Cache for exactly this reason.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewCache returns an empty cache. It is never a package-level singleton;
// callers own its lifetime.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

func (c *Cache) entryFor(key string) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = newEntry()
		c.entries[key] = e
	}
	return e
}

// Key joins parts into the string cache keys used throughout this package,
// mirroring the array-shaped keys ([]any{"todos", id}) that the contract
// this package implements specifies.
func Key(parts ...any) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = toKeyPart(p)
	}
	return strings.Join(strs, "/")
}

func toKeyPart(p any) string {
	if s, ok := p.(string); ok {
		return s
	}
	return fmt.Sprint(p)
}

// Data returns the current type-erased value cached for key, if any.
func (c *Cache) Data(key string) (any, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return nil, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Peek() != Ready {
		return nil, false
	}
	return e.data.Peek(), true
}

// SetData optimistically overwrites the cached value for key without
// running a fetch, returning the value it replaced so a caller can restore
// it on rollback. Mutation uses this to apply and undo optimistic patches.
func (c *Cache) SetData(key string, value any) (previous any, had bool) {
	e := c.entryFor(key)
	e.mu.Lock()
	if e.state.Peek() == Ready {
		previous, had = e.data.Peek(), true
	}
	e.mu.Unlock()

	e.data.Set(value)
	e.err.Set(nil)
	e.state.Set(Ready)
	return previous, had
}

// Delete drops an entry entirely, discarding any cached value and state.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Invalidate marks as stale every entry whose key equals keyPattern or
// starts with keyPattern followed by "/". Entries with live subscribers are
// refetched immediately; entries with none are treated as stale on their
// next subscribe only when that entry has a positive StaleAfter.
func (c *Cache) Invalidate(keyPattern string) {
	c.mu.Lock()
	var matched []struct {
		key string
		e   *entry
	}
	for k, e := range c.entries {
		if k == keyPattern || strings.HasPrefix(k, keyPattern+"/") {
			matched = append(matched, struct {
				key string
				e   *entry
			}{k, e})
		}
	}
	c.mu.Unlock()

	for _, m := range matched {
		m.e.mu.Lock()
		m.e.updatedAt = time.Time{}
		hasSubs := m.e.subscribers > 0
		m.e.mu.Unlock()

		if hasSubs {
			m.e.fetch(m.key, true, false)
		}
	}
}

// evictIfIdle schedules the entry's removal from the cache after
// cacheAfter has elapsed with no subscribers, cancelling any timer already
// pending. It is a no-op when cacheAfter is zero (never evict).
func (c *Cache) evictIfIdle(key string, e *entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.subscribers > 0 || e.cacheAfter <= 0 {
		return
	}
	if e.evictTimer != nil {
		e.evictTimer.Stop()
	}
	e.evictTimer = time.AfterFunc(e.cacheAfter, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if cur, ok := c.entries[key]; ok && cur == e {
			e.mu.Lock()
			idle := e.subscribers <= 0
			e.mu.Unlock()
			if idle {
				delete(c.entries, key)
			}
		}
	})
}

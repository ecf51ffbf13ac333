package query

import "time"

// RefetchTrigger names an event that should cause a live Query to refetch
// in the background.
type RefetchTrigger int

const (
	// RefetchOnFocus refetches when the window regains focus. Wiring this
	// up requires a client-side focus listener forwarding into the Query;
	// this package only records the intent.
	RefetchOnFocus RefetchTrigger = iota
	// RefetchOnReconnect refetches when network connectivity returns. Like
	// RefetchOnFocus, the browser-side event source lives outside this
	// package.
	RefetchOnReconnect
	// RefetchOnInterval refetches on a fixed timer; set QueryOptions.RefetchInterval
	// to the period. This is the one trigger this package can act on by itself.
	RefetchOnInterval
)

// QueryOptions configures CreateQuery.
type QueryOptions[T any] struct {
	// Key identifies the cache entry. Build it with query.Key(parts...) to
	// join an array-shaped key the way invalidation patterns expect.
	Key string
	// Fetcher loads the value. It runs at most once at a time per key
	// (single-flight); concurrent Query handles for the same key await the
	// same attempt instead of issuing their own.
	Fetcher func() (T, error)
	// StaleAfter is how long a successful fetch stays fresh. A read past
	// this age still returns the cached value immediately (stale-while-
	// revalidate) but triggers a background refetch.
	StaleAfter time.Duration
	// CacheAfter is how long an entry survives with zero subscribers
	// before it is evicted. Zero means never evict.
	CacheAfter time.Duration
	// RefetchOn lists triggers that should refetch this query in the
	// background while it has subscribers.
	RefetchOn []RefetchTrigger
	// RefetchInterval is the period used by RefetchOnInterval.
	RefetchInterval time.Duration
}

// Query is a reactive handle onto one cache entry. Reading Status, Data, or
// Error during component render subscribes the caller to that entry's
// signals the same way reading a Signal does.
type Query[T any] struct {
	cache *Cache
	key   string
	e     *entry

	stopInterval func()
}

// CreateQuery registers (or attaches to) the cache entry for opts.Key and
// starts it fetching if the entry has no data yet, or if it is stale.
// Calling CreateQuery again for the same key on the same cache attaches a
// new subscriber to the existing entry rather than issuing a second fetch.
func CreateQuery[T any](cache *Cache, opts QueryOptions[T]) *Query[T] {
	e := cache.entryFor(opts.Key)

	e.mu.Lock()
	e.staleAfter = opts.StaleAfter
	e.cacheAfter = opts.CacheAfter
	e.fetcher = func() (any, error) { return opts.Fetcher() }
	e.subscribers++
	if e.evictTimer != nil {
		e.evictTimer.Stop()
		e.evictTimer = nil
	}
	e.mu.Unlock()

	q := &Query[T]{cache: cache, key: opts.Key, e: e}
	q.ensureFresh()

	for _, trig := range opts.RefetchOn {
		if trig == RefetchOnInterval && opts.RefetchInterval > 0 {
			q.startInterval(opts.RefetchInterval)
		}
	}

	return q
}

func (q *Query[T]) ensureFresh() {
	q.e.mu.Lock()
	state := q.e.state.Peek()
	stale := state == Ready && q.e.isStaleLocked()
	needsFetch := state == Pending || stale
	q.e.mu.Unlock()

	if needsFetch {
		q.e.fetch(q.key, false, stale)
	}
}

func (e *entry) isStaleLocked() bool {
	if e.staleAfter <= 0 {
		return false
	}
	return time.Since(e.updatedAt) > e.staleAfter
}

func (q *Query[T]) startInterval(period time.Duration) {
	ticker := time.NewTicker(period)
	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				q.e.fetch(q.key, true, true)
			case <-stop:
				ticker.Stop()
				return
			}
		}
	}()
	q.stopInterval = func() { close(stop) }
}

// Status returns the current lifecycle state of the query.
func (q *Query[T]) Status() State {
	return q.e.state.Get()
}

// Data returns the last successfully fetched value, or T's zero value if
// none has arrived yet.
func (q *Query[T]) Data() T {
	v := q.e.data.Get()
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// Error returns the error from the most recent failed fetch, if any.
func (q *Query[T]) Error() error {
	return q.e.err.Get()
}

// Refetch forces a fresh fetch regardless of staleness, superseding any
// fetch already in flight.
func (q *Query[T]) Refetch() {
	q.e.fetch(q.key, true, false)
}

// Close unsubscribes this handle. Once an entry's subscriber count reaches
// zero it becomes eligible for CacheAfter eviction.
func (q *Query[T]) Close() {
	if q.stopInterval != nil {
		q.stopInterval()
		q.stopInterval = nil
	}
	q.e.mu.Lock()
	q.e.subscribers--
	q.e.mu.Unlock()
	q.cache.evictIfIdle(q.key, q.e)
}

package reactive

import (
	"context"
	"sync/atomic"
	"time"
)

// =============================================================================
// Effect Helpers
// =============================================================================

// Interval schedules periodic ticks that invoke fn. It handles cleanup
// automatically - the returned Cleanup stops future ticks.
//
// By default, the first tick occurs after duration d. Use IntervalImmediate()
// to trigger the first tick immediately.
//
// MUST be called inside an Effect and the returned Cleanup SHOULD be returned
// from that Effect:
//
//	reactive.CreateEffect(func() reactive.Cleanup {
//	    return reactive.Interval(time.Second, func() {
//	        counter.Inc()
//	    })
//	})
func Interval(d time.Duration, fn func(), opts ...IntervalOption) Cleanup {
	var cfg intervalConfig
	for _, opt := range opts {
		opt.applyInterval(&cfg)
	}

	done := make(chan struct{})

	go func() {
		if cfg.immediate {
			select {
			case <-done:
				return
			default:
				Batch(fn)
			}
		}

		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				Batch(fn)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}

// intervalConfig holds configuration from IntervalOptions.
type intervalConfig struct {
	immediate bool
}

// IntervalOption is an option for configuring Interval.
type IntervalOption interface {
	isIntervalOption()
	applyInterval(cfg *intervalConfig)
}

type intervalOptionFunc func(*intervalConfig)

func (f intervalOptionFunc) isIntervalOption()                  {}
func (f intervalOptionFunc) applyInterval(cfg *intervalConfig) { f(cfg) }

// IntervalImmediate causes the first tick to occur immediately instead of
// after the duration.
func IntervalImmediate() IntervalOption {
	return intervalOptionFunc(func(cfg *intervalConfig) {
		cfg.immediate = true
	})
}

// =============================================================================
// Subscribe
// =============================================================================

// Stream is an interface for event streams that support subscription.
// The Subscribe method returns an unsubscribe function.
type Stream[T any] interface {
	Subscribe(handler func(T)) (unsubscribe func())
}

// Subscribe connects to an event stream and invokes fn for each message.
// The returned Cleanup unsubscribes from the stream.
//
// MUST be called inside an Effect and the returned Cleanup SHOULD be returned
// from that Effect:
//
//	reactive.CreateEffect(func() reactive.Cleanup {
//	    return reactive.Subscribe(ws.Messages, func(msg Message) {
//	        messages.Append(msg)
//	    })
//	})
func Subscribe[T any](stream Stream[T], fn func(T)) Cleanup {
	unsubscribe := stream.Subscribe(func(msg T) {
		Batch(func() {
			fn(msg)
		})
	})

	return unsubscribe
}

// =============================================================================
// GoLatest
// =============================================================================

// goLatestState holds per-call-site state for GoLatest.
// This is stored in Effect.callSiteData so it persists across effect reruns.
type goLatestState[K comparable] struct {
	lastKey     K
	initialized bool
	cancel      context.CancelFunc
	seq         uint64
}

// GoLatest is the standard helper for async work inside an Effect. It handles
// key coalescing, stale-result suppression, and cancellation.
//
// Key semantics:
//   - Same key as previous call: no new work starts (existing work continues)
//   - Different key: cancels prior work, starts new work
//   - Use GoLatestForceRestart() to restart even with the same key
//
// MUST be called inside an Effect:
//
//	reactive.CreateEffect(func() reactive.Cleanup {
//	    q := query.Get()
//	    return reactive.GoLatest(q,
//	        func(ctx context.Context, q string) ([]User, error) {
//	            return api.SearchUsers(ctx, q)
//	        },
//	        func(users []User, err error) {
//	            results.Set(users)
//	        },
//	    )
//	})
func GoLatest[K comparable, R any](
	key K,
	work func(ctx context.Context, key K) (R, error),
	apply func(result R, err error),
	opts ...GoLatestOption,
) Cleanup {
	state := GetEffectCallSiteState(func() *goLatestState[K] {
		return &goLatestState[K]{}
	})
	if state == nil {
		panic("reactive: GoLatest must be called inside an Effect")
	}

	var cfg goLatestConfig
	for _, opt := range opts {
		opt.applyGoLatest(&cfg)
	}

	// Key coalescing: if same key and no force restart, don't start new work.
	if state.initialized && state.lastKey == key && !cfg.forceRestart {
		return func() {
			if state.cancel != nil {
				state.cancel()
			}
		}
	}

	if state.cancel != nil {
		state.cancel()
	}

	state.initialized = true
	state.lastKey = key
	state.seq++
	mySeq := state.seq

	workCtx, cancel := context.WithCancel(context.Background())
	state.cancel = cancel

	go func() {
		result, err := work(workCtx, key)

		if workCtx.Err() != nil {
			return
		}

		Batch(func() {
			if state.seq != mySeq {
				// Newer work started; this result is stale.
				return
			}
			apply(result, err)
		})
	}()

	return func() {
		cancel()
	}
}

// goLatestConfig holds configuration from GoLatestOptions.
type goLatestConfig struct {
	forceRestart bool
}

// GoLatestOption is an option for configuring GoLatest.
type GoLatestOption interface {
	isGoLatestOption()
	applyGoLatest(cfg *goLatestConfig)
}

type goLatestOptionFunc func(*goLatestConfig)

func (f goLatestOptionFunc) isGoLatestOption()                {}
func (f goLatestOptionFunc) applyGoLatest(cfg *goLatestConfig) { f(cfg) }

// GoLatestForceRestart causes work to restart even when the key is unchanged.
// By default, same key = no new work (existing work continues).
func GoLatestForceRestart() GoLatestOption {
	return goLatestOptionFunc(func(cfg *goLatestConfig) {
		cfg.forceRestart = true
	})
}

// =============================================================================
// Timeout
// =============================================================================

// Timeout creates a one-shot timer that executes fn after duration d.
// Returns a Cleanup that cancels the timer if called before it fires.
//
// This is a simpler alternative to Interval for single delayed operations:
//
//	reactive.CreateEffect(func() reactive.Cleanup {
//	    return reactive.Timeout(5*time.Second, func() {
//	        showTooltip.Set(true)
//	    })
//	})
func Timeout(d time.Duration, fn func()) Cleanup {
	var fired atomic.Bool
	timer := time.AfterFunc(d, func() {
		if fired.CompareAndSwap(false, true) {
			Batch(fn)
		}
	})

	return func() {
		fired.Store(true)
		timer.Stop()
	}
}

package query

import "github.com/philjs-dev/philjs/reactive"

// Patch optimistically overwrites the cached value at key, remembering
// enough to undo itself if the mutation that requested it ultimately fails.
type Patch func(key string, value any)

// MutationOptions configures CreateMutation.
type MutationOptions[TArgs, TResult any] struct {
	// Mutate performs the write. It runs on its own goroutine; Mutate
	// callers don't block on it.
	Mutate func(TArgs) (TResult, error)
	// Optimistic, if set, runs synchronously before Mutate and may call
	// patch to update cached entries immediately. Every patch is rolled
	// back automatically if Mutate returns an error.
	Optimistic func(args TArgs, patch Patch)
	// OnSuccess runs after Mutate succeeds.
	OnSuccess func(args TArgs, result TResult)
	// OnError runs after Mutate fails, once any optimistic patches have
	// already been rolled back.
	OnError func(args TArgs, err error)
}

type rollback struct {
	key   string
	value any
	had   bool
}

// Mutation is a reactive handle for a named write operation with optional
// optimistic updates against a Cache.
type Mutation[TArgs, TResult any] struct {
	cache *Cache
	opts  MutationOptions[TArgs, TResult]

	status *reactive.Signal[State]
	err    *reactive.Signal[error]
}

// CreateMutation builds a Mutation bound to cache. Call Mutate to run it.
func CreateMutation[TArgs, TResult any](cache *Cache, opts MutationOptions[TArgs, TResult]) *Mutation[TArgs, TResult] {
	return &Mutation[TArgs, TResult]{
		cache:  cache,
		opts:   opts,
		status: reactive.NewSignal(Pending),
		err:    reactive.NewSignal[error](nil),
	}
}

// Mutate applies any optimistic patches, then runs Mutate asynchronously.
// On failure, every patch applied during this call is rolled back before
// OnError runs.
func (m *Mutation[TArgs, TResult]) Mutate(args TArgs) {
	var rollbacks []rollback

	if m.opts.Optimistic != nil {
		patch := func(key string, value any) {
			prev, had := m.cache.SetData(key, value)
			rollbacks = append(rollbacks, rollback{key: key, value: prev, had: had})
		}
		m.opts.Optimistic(args, patch)
	}

	m.status.Set(Loading)

	go func() {
		result, err := m.opts.Mutate(args)
		if err != nil {
			for _, rb := range rollbacks {
				if rb.had {
					m.cache.SetData(rb.key, rb.value)
				} else {
					m.cache.Delete(rb.key)
				}
			}
			m.err.Set(err)
			m.status.Set(Error)
			if m.opts.OnError != nil {
				m.opts.OnError(args, err)
			}
			return
		}

		m.err.Set(nil)
		m.status.Set(Ready)
		if m.opts.OnSuccess != nil {
			m.opts.OnSuccess(args, result)
		}
	}()
}

// Status returns the mutation's current lifecycle state.
func (m *Mutation[TArgs, TResult]) Status() State {
	return m.status.Get()
}

// Error returns the error from the most recent failed Mutate call, if any.
func (m *Mutation[TArgs, TResult]) Error() error {
	return m.err.Get()
}

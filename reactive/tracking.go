package reactive

import (
	"sync"

	"github.com/petermattis/goid"
)

// TrackingContext holds the reactive state for a goroutine.
// Each goroutine has its own tracking context to support concurrent
// component rendering and signal access.
type TrackingContext struct {
	// currentOwner is the Owner that will own newly created signals/effects.
	// Set during component rendering to establish ownership hierarchy.
	currentOwner *Owner

	// currentListener is what's currently tracking dependencies.
	// When a signal is read, it subscribes this listener.
	// nil means no tracking (reads don't create subscriptions).
	currentListener Listener

	// batchDepth tracks nested Batch() calls.
	// When > 0, signal updates queue notifications instead of firing immediately.
	batchDepth int

	// pendingUpdates accumulates listeners to notify when batch completes.
	// Deduplicated by ID before notification.
	pendingUpdates []Listener

	// currentCtx holds the current request-scoped runtime context.
	// Set by the hosting package (ssr, client) to provide access via UseCtx().
	// Stored as any to avoid a dependency from reactive on those packages.
	currentCtx any

	// ==========================================================================
	// Effect-local call-site tracking for helpers like GoLatest
	// ==========================================================================

	// currentEffect points to the Effect currently executing its body.
	// Set during effect.run() to allow helpers to store call-site state.
	// nil when not inside an effect body.
	currentEffect *Effect

	// effectCallSiteIdx tracks the current call-site index within an effect run.
	// Incremented each time a helper (like GoLatest) is invoked within an effect.
	// Reset to 0 at the start of each effect run.
	effectCallSiteIdx int

	// inEffectBody is true while executing the synchronous body of an effect.
	// Used for effect-time write detection.
	// False during Dispatch callbacks and goroutines spawned by effects.
	inEffectBody bool

	// effectAllowWrites is true if the current effect has AllowWrites() option.
	// Used to suppress effect-time write warnings.
	effectAllowWrites bool

	// inMemoCompute is true while a Memo's compute function is running.
	// Writing to a signal during this window is forbidden: it would make the
	// dependency graph's value order depend on read order, which breaks the
	// guarantee that memos are pure derivations of their sources.
	inMemoCompute bool

	// effectQueue holds effects marked dirty during the current propagation
	// that have not yet run. Writes push onto this queue; drainEffectQueue
	// pops and runs until it is empty, so the queue never outlives a single
	// synchronous write or Batch call.
	effectQueue []*Effect

	// draining is true while drainEffectQueue is actively running on this
	// goroutine. It prevents a write inside an effect body from recursively
	// draining the same queue out from under the in-progress drain loop;
	// the outer drain loop picks up anything the inner write enqueued.
	draining bool

	// cyclesThisDrain counts effect runs within the current drainEffectQueue
	// call. It is reset to 0 each time a drain begins from a non-draining
	// state, and exists purely as a backstop: well-formed graphs can't cycle
	// (writes during memo compute are forbidden), but a bound here turns a
	// latent bug into a clear error instead of a livelock.
	cyclesThisDrain int
}

// trackingContexts stores per-goroutine tracking contexts.
// Using sync.Map for concurrent access from multiple goroutines.
var trackingContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine.
// Note: This is an implementation detail and should not be relied upon externally.
func getGoroutineID() uint64 {
	return uint64(goid.Get())
}

// getTrackingContext returns the tracking context for the current goroutine.
// If no context exists, creates a new one.
func getTrackingContext() *TrackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*TrackingContext)
	}

	// Create new context for this goroutine
	ctx := &TrackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// setTrackingContext sets the tracking context for the current goroutine.
// Used internally for context propagation.
func setTrackingContext(ctx *TrackingContext) {
	gid := getGoroutineID()
	if ctx == nil {
		trackingContexts.Delete(gid)
	} else {
		trackingContexts.Store(gid, ctx)
	}
}

// getCurrentListener returns the current listener being tracked.
// Returns nil if no tracking is active.
func getCurrentListener() Listener {
	ctx := getTrackingContext()
	return ctx.currentListener
}

// setCurrentListener sets the current listener for dependency tracking.
// Returns the previous listener so it can be restored.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

// getCurrentOwner returns the current owner for the goroutine.
// Returns nil if no owner context is set.
func getCurrentOwner() *Owner {
	ctx := getTrackingContext()
	return ctx.currentOwner
}

// CurrentOwner returns the Owner currently in scope for this goroutine (set
// by WithOwner, or by an enclosing CreateEffect/component mount), or nil if
// none is set. Used by callers such as package client that open a new child
// Owner per component/dynamic-range without threading the parent Owner
// through every function signature.
func CurrentOwner() *Owner {
	return getCurrentOwner()
}

// setCurrentOwner sets the current owner for signal/effect creation.
// Returns the previous owner so it can be restored.
func setCurrentOwner(o *Owner) *Owner {
	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

// getBatchDepth returns the current batch nesting depth.
func getBatchDepth() int {
	ctx := getTrackingContext()
	return ctx.batchDepth
}

// incrementBatchDepth increases the batch depth by 1.
func incrementBatchDepth() {
	ctx := getTrackingContext()
	ctx.batchDepth++
}

// decrementBatchDepth decreases the batch depth by 1.
// Returns true if batch depth reached 0 (batch complete).
func decrementBatchDepth() bool {
	ctx := getTrackingContext()
	ctx.batchDepth--
	return ctx.batchDepth == 0
}

// queuePendingUpdate adds a listener to the pending updates queue.
// Called during batch mode when a signal is updated.
func queuePendingUpdate(l Listener) {
	ctx := getTrackingContext()
	ctx.pendingUpdates = append(ctx.pendingUpdates, l)
}

// drainPendingUpdates returns and clears the pending updates queue.
// Called when a batch completes to process all queued notifications.
func drainPendingUpdates() []Listener {
	ctx := getTrackingContext()
	updates := ctx.pendingUpdates
	ctx.pendingUpdates = nil
	return updates
}

// WithOwner runs a function with the specified owner as the current owner.
// This is used when spawning goroutines that need to create signals/effects
// that belong to a specific component.
//
// Example:
//
//	go func() {
//	    WithOwner(parentOwner, func() {
//	        // Signals created here belong to parentOwner
//	        signal := NewSignal(0)
//	    })
//	}()
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}

// WithListener runs a function with the specified listener for tracking.
// This is used internally to set up dependency tracking during rendering.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}

// cleanupGoroutineContext removes the tracking context for the current goroutine.
// Should be called when a goroutine is about to exit to prevent memory leaks.
// This is optional - contexts are lightweight and will be overwritten if reused.
func cleanupGoroutineContext() {
	gid := getGoroutineID()
	trackingContexts.Delete(gid)
}

// getCurrentCtx returns the current runtime context for the goroutine.
// Returns nil if no context is set.
func getCurrentCtx() any {
	ctx := getTrackingContext()
	return ctx.currentCtx
}

// setCurrentCtx sets the current runtime context.
// Returns the previous context so it can be restored.
func setCurrentCtx(c any) any {
	ctx := getTrackingContext()
	old := ctx.currentCtx
	ctx.currentCtx = c
	return old
}

// UseCtx returns the current runtime context value set via WithCtx, or nil
// if none is set. Components and helpers use this to access request-scoped
// state (for example, the per-request query cache) without it being threaded
// through every function signature.
func UseCtx() any {
	return getCurrentCtx()
}

// WithCtx runs a function with the specified runtime context.
// This is used by the server to establish context during event handling
// and component rendering.
//
// Example (internal use by server):
//
//	WithCtx(ctx, func() {
//	    // UseCtx() will return ctx here
//	    component.Render()
//	})
func WithCtx(c any, fn func()) {
	old := setCurrentCtx(c)
	defer setCurrentCtx(old)
	fn()
}

// =============================================================================
// Effect-local call-site tracking accessors
// =============================================================================

// getCurrentEffect returns the currently executing Effect.
// Returns nil if not inside an effect body.
func getCurrentEffect() *Effect {
	ctx := getTrackingContext()
	return ctx.currentEffect
}

// setCurrentEffect sets the currently executing Effect.
// Returns the previous effect so it can be restored.
func setCurrentEffect(e *Effect) *Effect {
	ctx := getTrackingContext()
	old := ctx.currentEffect
	ctx.currentEffect = e
	return old
}

// getEffectCallSiteIdx returns the current call-site index within an effect.
func getEffectCallSiteIdx() int {
	ctx := getTrackingContext()
	return ctx.effectCallSiteIdx
}

// incrementEffectCallSiteIdx increments and returns the call-site index.
// Called by effect helpers (GoLatest, etc.) to get their unique call-site ID.
func incrementEffectCallSiteIdx() int {
	ctx := getTrackingContext()
	idx := ctx.effectCallSiteIdx
	ctx.effectCallSiteIdx++
	return idx
}

// resetEffectCallSiteIdx resets the call-site index to 0.
// Called at the start of each effect run.
func resetEffectCallSiteIdx() {
	ctx := getTrackingContext()
	ctx.effectCallSiteIdx = 0
}

// isInEffectBody returns true if currently executing the synchronous body of an effect.
// False during Dispatch callbacks and goroutines spawned by effects.
func isInEffectBody() bool {
	ctx := getTrackingContext()
	return ctx.inEffectBody
}

// setInEffectBody sets whether we're inside an effect body.
// Returns the previous value so it can be restored.
func setInEffectBody(v bool) bool {
	ctx := getTrackingContext()
	old := ctx.inEffectBody
	ctx.inEffectBody = v
	return old
}

// effectHasAllowWrites returns true if the current effect has AllowWrites() option.
func effectHasAllowWrites() bool {
	ctx := getTrackingContext()
	return ctx.effectAllowWrites
}

// setEffectAllowWrites sets whether the current effect allows writes.
// Returns the previous value so it can be restored.
func setEffectAllowWrites(v bool) bool {
	ctx := getTrackingContext()
	old := ctx.effectAllowWrites
	ctx.effectAllowWrites = v
	return old
}

// checkEffectTimeWrite checks for signal writes that are forbidden outright
// (during a memo's compute function) and, separately, writes that happen
// during an effect body without AllowWrites() (warned or panicked on based
// on EffectStrictMode). This should be called at the beginning of all
// signal mutation methods.
func checkEffectTimeWrite(method string) {
	if isInMemoCompute() {
		panic(ErrWriteDuringCompute)
	}

	// Only check the effect-time policy if we're in an effect body
	if !isInEffectBody() {
		return
	}

	// Check if effect has AllowWrites
	if effectHasAllowWrites() {
		return
	}

	// Effect-time write without AllowWrites
	switch EffectStrictMode {
	case StrictEffectOff:
		// No enforcement
		return

	case StrictEffectWarn:
		// Get caller location for warning
		// Note: In production, this would use runtime.Caller for file:line
		warningMessage := "Warning: Effect wrote signal via " + method + "()\n" +
			"  → For periodic updates, use reactive.Interval()\n" +
			"  → For event streams, use reactive.Subscribe()\n" +
			"  → For async work, use Effect + reactive.GoLatest()\n" +
			"  → For intentional writes, add reactive.AllowWrites()"
		// Log warning (would use proper logging in production)
		println(warningMessage)

	case StrictEffectPanic:
		panic("Effect wrote signal via " + method + "() without AllowWrites()")
	}
}

// GetEffectCallSiteState retrieves or creates typed state for the current call-site
// within the currently executing Effect. This is the primary API for effect helpers
// like GoLatest that need to maintain state across effect reruns.
//
// The factory function is called only on first invocation for this call-site.
// Subsequent calls (in effect reruns) return the previously created state.
//
// Returns nil if called outside an effect body.
//
// Usage pattern in effect helpers:
//
//	func GoLatest[K, R any](...) Cleanup {
//	    state := GetEffectCallSiteState(func() *goLatestState[K] {
//	        return &goLatestState[K]{}
//	    })
//	    if state == nil {
//	        panic("GoLatest must be called inside an Effect")
//	    }
//	    // Use state...
//	}
func GetEffectCallSiteState[T any](factory func() *T) *T {
	effect := getCurrentEffect()
	if effect == nil {
		return nil
	}

	// Get unique index for this call-site within the effect
	idx := incrementEffectCallSiteIdx()

	// Check if state already exists for this call-site
	existing := effect.GetCallSiteData(idx)
	if existing != nil {
		return existing.(*T)
	}

	// First time: create and store new state
	state := factory()
	effect.SetCallSiteData(idx, state)
	return state
}

// =============================================================================
// Memo write enforcement
// =============================================================================

// isInMemoCompute returns true if a Memo's compute function is currently
// running on this goroutine.
func isInMemoCompute() bool {
	ctx := getTrackingContext()
	return ctx.inMemoCompute
}

// setInMemoCompute sets whether a memo compute is in progress.
// Returns the previous value so it can be restored.
func setInMemoCompute(v bool) bool {
	ctx := getTrackingContext()
	old := ctx.inMemoCompute
	ctx.inMemoCompute = v
	return old
}

// =============================================================================
// Effect run-queue
// =============================================================================

// maxEffectsPerDrain bounds the number of effect runs a single
// drainEffectQueue call will perform before giving up and raising a
// DependencyCycleError. Legitimate graphs never approach this: it exists to
// turn an accidental cycle into a clear error rather than a hang.
const maxEffectsPerDrain = 10000

// enqueueEffect adds an effect to the current goroutine's pending run queue.
// The queue is drained synchronously by drainEffectQueue, which runs at the
// end of every non-batched write and at the end of the outermost Batch call.
func enqueueEffect(e *Effect) {
	ctx := getTrackingContext()
	ctx.effectQueue = append(ctx.effectQueue, e)
}

// drainEffectQueue runs queued effects until none remain. It is reentrancy-
// safe: if an effect's own body enqueues more effects (directly, or via a
// signal write that schedules dependents), the outer-most call keeps
// draining rather than each write starting its own nested drain loop.
func drainEffectQueue() {
	ctx := getTrackingContext()
	if ctx.draining {
		// A write inside an effect body (or inside another drain) triggered
		// this; the in-progress drain loop will pick up what we enqueued.
		return
	}

	ctx.draining = true
	ctx.cyclesThisDrain = 0
	defer func() {
		ctx.draining = false
		ctx.cyclesThisDrain = 0
	}()

	for len(ctx.effectQueue) > 0 {
		queue := ctx.effectQueue
		ctx.effectQueue = nil

		for _, e := range queue {
			if e.disposed.Load() || !e.pending.Load() {
				continue
			}

			ctx.cyclesThisDrain++
			if ctx.cyclesThisDrain > maxEffectsPerDrain {
				panic(&DependencyCycleError{Depth: ctx.cyclesThisDrain})
			}

			e.run()
		}
	}
}

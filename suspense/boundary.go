package suspense

import (
	"sync/atomic"

	"github.com/philjs-dev/philjs/query"
	"github.com/philjs-dev/philjs/vnode"
)

// suspend is the panic value Track raises when the resource it was given
// isn't ready yet. Boundary.Render recovers exactly this value; anything
// else propagates like a normal panic.
type suspend struct{}

// pending tracks how many Boundaries across the whole process are currently
// showing their Fallback, so ssr.ToStream's streaming renderer knows when
// every Boundary on the page has settled (see StreamHooks.OnAllReady).
var pending atomic.Int64

// Pending reports how many Boundaries are currently showing their Fallback.
func Pending() int64 {
	return pending.Load()
}

// Track reads r's data for use inside a Boundary's Children function. If r
// is still Pending or Loading, Track suspends rendering of the nearest
// enclosing Boundary in favor of its Fallback, and resumes automatically
// the next time r's state changes (reading r.State() is itself a tracked
// signal read, so the dynamic-range effect Boundary renders inside already
// reruns when it settles).
//
// Calling Track outside of a Boundary is a programmer error: the panic it
// raises when r is pending will propagate all the way up uncaught.
func Track[T any](r *query.Resource[T]) T {
	switch r.State() {
	case query.Ready:
		return r.Data()
	case query.Error:
		var zero T
		return zero
	default:
		panic(suspend{})
	}
}

// Props configures a Boundary: Children is called to produce the real
// content (and may call Track), Fallback is shown for as long as Children
// suspends.
type Props struct {
	Fallback *vnode.VNode
	Children func() *vnode.VNode
}

// Boundary renders a Suspense boundary: a vnode.Dynamic range whose content
// is Props.Children() on every settled run, or Props.Fallback for as long as
// Children suspends on a pending query.Resource. Mount/Hydrate already
// dispose the range's owner (cancelling whatever in-flight work Children
// started) whenever the boundary itself is unmounted or re-runs, so
// Boundary needs no cancellation logic of its own.
func Boundary(props Props) *vnode.VNode {
	wasPending := false
	return vnode.Dynamic(func() *vnode.VNode {
		out, isPending := render(props)
		switch {
		case isPending && !wasPending:
			pending.Add(1)
		case !isPending && wasPending:
			pending.Add(-1)
		}
		wasPending = isPending
		return out
	})
}

// render runs props.Children, recovering a suspend panic into (Fallback,
// true) instead of letting it propagate past this boundary.
func render(props Props) (result *vnode.VNode, isPending bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(suspend); ok {
			result, isPending = props.Fallback, true
			return
		}
		panic(r)
	}()

	return props.Children(), false
}

// Package suspense implements a Suspense boundary: a component that renders
// its children, but swaps in a fallback vnode for as long as any
// query.Resource those children read is still loading, then swaps the real
// content back in once every such resource settles.
//
// Track is what makes a resource "visible" to the nearest Boundary: reading
// a resource's state is already a tracked signal read (see query.Resource),
// so Boundary's children function runs inside the same dynamic-range effect
// package client's mount/hydrate create for reactive content — when a
// pending resource becomes ready, the very effect that originally aborted
// rendering is the one signal tracking rewakes, and it simply runs again.
// No separate subscription bookkeeping is needed.
//
// During server rendering this doubles as the streaming path (see
// ssr.ToStream's StreamHooks): the shell renders with the fallback inline
// immediately, and Pending reports how many boundaries are still waiting so
// the streaming renderer knows when it can fire OnAllReady and flush the
// replacement content.
package suspense

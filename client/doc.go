// Package client is the browser half of the rendering pipeline: Mount builds
// a live DOM from a vnode tree from scratch, and Hydrate attaches the same
// algorithm to a tree a server already rendered, reusing its DOM instead of
// rebuilding it and re-populating resumable.Signal values from the page's
// embedded state table.
//
// Event handling goes through a single delegated listener per (root,
// event type) pair rather than one native listener per element (see
// events.go) — both because it scales better and because it's what makes a
// handler reference resumable: resuming a page only ever needs to rebind
// table entries, never touch the DOM's listener set directly.
//
// Every DOM operation goes through the small interface declared in dom.go,
// which has two implementations: dom_wasm.go, built only under `js/wasm`
// and backed by the real browser DOM via syscall/js, and fakedom.go, an
// in-memory implementation used by scenarios_test.go (and anything else
// that wants to exercise Mount/Hydrate under `go test`).
package client

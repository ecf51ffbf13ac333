package resumable

// Bound is a serializable reference to a registered handler: pass one as an
// event prop value (instead of a bare closure) to opt an element's handler
// into resumability. package client and package ssr both recognize the
// type: ssr serializes it into the page's StateTable by (ModuleID,
// ExportName) index, and client invokes it — whether freshly mounted or
// resolved back out of a hydrated StateTable — by looking the name up in
// the registry populated by Register, never by carrying the closure itself
// across the wire.
//
// A bare closure still works as a handler (package client's event
// dispatcher calls it directly), it simply isn't resumable: after a full
// page reload the framework falls back to re-running the component body to
// recreate it, per the closures-vs-resumability tradeoff.
type Bound struct {
	ModuleID   string
	ExportName string
	Captures   map[string]any
}

// Bind returns a Bound handler reference for a previously Register'd
// (moduleID, exportName) pair, closing over captures.
func Bind(moduleID, exportName string, captures map[string]any) Bound {
	if moduleID == "" {
		moduleID = DefaultModule
	}
	return Bound{ModuleID: moduleID, ExportName: exportName, Captures: captures}
}

// InvokeByName resolves (moduleID, exportName) directly against the
// registry (no StateTable indirection needed) and invokes it with event.
// Used by package client when a Bound value is encountered during a live
// Mount rather than a Hydrate.
func InvokeByName(moduleID, exportName string, captures map[string]any, event any) bool {
	if moduleID == "" {
		moduleID = DefaultModule
	}
	registry.mu.RLock()
	idx, ok := registry.index[key(moduleID, exportName)]
	var fn HandlerFunc
	if ok {
		fn = registry.entries[idx].fn
	}
	registry.mu.RUnlock()

	if !ok || fn == nil {
		return false
	}
	fn(captures, event)
	return true
}

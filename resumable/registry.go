package resumable

import "sync"

// DefaultModule is the module identifier used by Register when the caller
// does not need to distinguish between multiple logical modules (the common
// case for a single-binary application).
const DefaultModule = "app"

// HandlerFunc is a resumable event handler: captures holds the plain-data
// values that were closed over when the handler was bound (decoded from
// JSON on the client, passed through directly on the server), and event is
// the platform event value (typically a client.Event).
type HandlerFunc func(captures map[string]any, event any)

type registryEntry struct {
	HandlerRegistryEntry
	fn HandlerFunc
}

// registry is the process-wide table of named handlers. It is a singleton
// because the same set of Register calls (typically package-level var
// initializers) runs identically whether the binary is executing as the
// server or as the wasm client.
var registry = struct {
	mu      sync.RWMutex
	entries []registryEntry
	index   map[string]int
}{index: make(map[string]int)}

func key(moduleID, exportName string) string {
	return moduleID + "#" + exportName
}

// Register associates a stable (moduleID, exportName) pair with fn.
// Registering the same pair twice replaces the handler but keeps its
// registry index stable, so previously-serialized state tables referencing
// it by index remain valid.
func Register(moduleID, exportName string, fn HandlerFunc) {
	if moduleID == "" {
		moduleID = DefaultModule
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()

	k := key(moduleID, exportName)
	if idx, ok := registry.index[k]; ok {
		registry.entries[idx].fn = fn
		return
	}
	idx := len(registry.entries)
	registry.entries = append(registry.entries, registryEntry{
		HandlerRegistryEntry: HandlerRegistryEntry{ModuleID: moduleID, ExportName: exportName},
		fn:                   fn,
	})
	registry.index[k] = idx
}

// RegisterSimple registers a handler that ignores captures, for the common
// case of a handler with no bound instance data.
func RegisterSimple(moduleID, exportName string, fn func(event any)) {
	Register(moduleID, exportName, func(_ map[string]any, event any) {
		fn(event)
	})
}

// Ref looks up the registry index for (moduleID, exportName), registering a
// new entry if one does not already exist is the caller's responsibility
// via Register; Ref only resolves an index for building a HandlerRef.
func Ref(moduleID, exportName string, captures map[string]any) (HandlerRef, bool) {
	if moduleID == "" {
		moduleID = DefaultModule
	}
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	idx, ok := registry.index[key(moduleID, exportName)]
	if !ok {
		return HandlerRef{}, false
	}
	return HandlerRef{Index: idx, Captures: captures}, true
}

// Invoke resolves ref against registries (the deserialized
// registries.handlers list from a StateTable) and calls the matching
// registered handler with ref.Captures and event. It reports false if the
// registries entry or the local registration for it cannot be found — the
// handler registry shipped with a page and the registry compiled into the
// running binary must agree, which is always true when server and client
// share a binary but can drift in hand-edited test fixtures.
func Invoke(registries Registries, ref HandlerRef, event any) bool {
	if ref.Index < 0 || ref.Index >= len(registries.Handlers) {
		return false
	}
	entry := registries.Handlers[ref.Index]

	registry.mu.RLock()
	idx, ok := registry.index[key(entry.ModuleID, entry.ExportName)]
	var fn HandlerFunc
	if ok {
		fn = registry.entries[idx].fn
	}
	registry.mu.RUnlock()

	if !ok || fn == nil {
		return false
	}
	fn(ref.Captures, event)
	return true
}

// Entries returns the registry entries in registration order, used to build
// a StateTable's Registries.Handlers list.
func Entries() []HandlerRegistryEntry {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]HandlerRegistryEntry, len(registry.entries))
	for i, e := range registry.entries {
		out[i] = e.HandlerRegistryEntry
	}
	return out
}

// resetForTest clears the registry. Unexported: tests within this package
// use it to get a clean slate between cases; application code never needs
// to un-register a handler.
func resetForTest() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.entries = nil
	registry.index = make(map[string]int)
}

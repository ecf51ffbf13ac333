package resumable

import (
	"fmt"
	"sync"

	"github.com/philjs-dev/philjs/reactive"
)

// A render pass walks the component tree in one deterministic order, so a
// signal allocated 3rd on the server is also the 3rd one allocated while the
// client hydrates the same tree — exactly the discipline package ssr's HID
// counter already follows (see ssr.Renderer). Signal reuses that discipline
// instead of asking component authors to name their own stable ids.
var pass struct {
	mu      sync.Mutex
	table   *StateTable
	write   bool
	counter int
}

// BeginPass starts a render pass against table: write=true captures each
// Signal call's current value into the table (used by package ssr while
// rendering a page), write=false instead seeds each Signal call's initial
// value from whatever the table persisted (used by package client while
// hydrating one). The returned func ends the pass, restoring whatever pass
// (if any) was running before — passes do not nest in practice, but a
// component rendered for a sub-request (an island, a suspense fallback)
// during another pass shouldn't corrupt the outer one's counter.
func BeginPass(table *StateTable, write bool) func() {
	pass.mu.Lock()
	prevTable, prevWrite, prevCounter := pass.table, pass.write, pass.counter
	pass.table, pass.write, pass.counter = table, write, 0
	pass.mu.Unlock()

	return func() {
		pass.mu.Lock()
		pass.table, pass.write, pass.counter = prevTable, prevWrite, prevCounter
		pass.mu.Unlock()
	}
}

func nextSignalID() string {
	pass.mu.Lock()
	pass.counter++
	id := fmt.Sprintf("sig%d", pass.counter)
	pass.mu.Unlock()
	return id
}

// Signal declares a piece of resumable state. Called with no render pass
// active (a plain client-side Mount, or code running outside of
// ssr.ToString/client.Hydrate) it behaves exactly like reactive.NewSignal.
// Called during a write pass, its current value is captured into the active
// StateTable under a position-derived id. Called during a read pass, its
// initial value is replaced by whatever the table persisted at that same
// position, so the signal resumes holding the value the server actually
// rendered rather than replaying initial.
func Signal[T any](initial T) *reactive.Signal[T] {
	id := nextSignalID()

	pass.mu.Lock()
	table, write := pass.table, pass.write
	pass.mu.Unlock()

	if table != nil && !write {
		if es, ok := table.Elements[id]; ok {
			if raw, ok := es.Signals[id]; ok {
				if v, ok := coerce[T](raw); ok {
					initial = v
				}
			}
		}
	}

	sig := reactive.NewSignal(initial)

	if table != nil && write {
		table.SerializeSignal(id, id, sig.Get())
	}

	return sig
}

// coerce adapts a JSON-decoded value (any, typically float64/string/bool/
// []any/map[string]any) back to T. A direct assertion covers the common
// case of re-hydrating in the same process that wrote the table (no JSON
// round-trip at all, e.g. under test); the numeric cases cover the real
// round-trip through encoding/json, which always decodes numbers as
// float64.
func coerce[T any](raw any) (T, bool) {
	var zero T
	if v, ok := raw.(T); ok {
		return v, true
	}

	switch any(zero).(type) {
	case int:
		if f, ok := raw.(float64); ok {
			return any(int(f)).(T), true
		}
	case int64:
		if f, ok := raw.(float64); ok {
			return any(int64(f)).(T), true
		}
	case float32:
		if f, ok := raw.(float64); ok {
			return any(float32(f)).(T), true
		}
	}
	return zero, false
}

package resumable

import "encoding/json"

// Builder accumulates element bindings during a single server render and
// produces the StateTable to serialize alongside it.
type Builder struct {
	table *StateTable
}

// NewBuilder returns a Builder ready to record bindings for one render pass.
func NewBuilder() *Builder {
	return &Builder{table: NewStateTable()}
}

// BindHandler records that element id listens for eventName via a handler
// registered under (moduleID, exportName), closing over captures.
// It reports false if no handler was registered under that name.
func (b *Builder) BindHandler(id, eventName, moduleID, exportName string, captures map[string]any) bool {
	ref, ok := Ref(moduleID, exportName, captures)
	if !ok {
		return false
	}
	b.table.BindHandler(id, eventName, ref)
	return true
}

// SerializeSignal records the initial value of signalID on element id.
func (b *Builder) SerializeSignal(id, signalID string, value any) {
	b.table.SerializeSignal(id, signalID, value)
}

// Build finalizes the StateTable, snapshotting the current handler registry
// into Registries.Handlers.
func (b *Builder) Build() *StateTable {
	b.table.Registries = Registries{Handlers: Entries()}
	return b.table
}

// MarshalJSON serializes the built StateTable, following its json tags:
// {version, elements: {id: {handlers, signals}}, registries: {handlers: [...]}}.
func (b *Builder) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Build())
}

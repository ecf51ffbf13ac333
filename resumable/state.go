package resumable

// Version is the current persisted-state schema version, embedded in every
// StateTable so a future incompatible layout change can be detected instead
// of silently mis-parsed.
const Version = 1

// StateTable is the full persisted-state document emitted at the end of a
// server-rendered page in a `<script type="application/json">` tag, and
// parsed back by the client before it resumes the page.
type StateTable struct {
	Version    int                      `json:"version"`
	Elements   map[string]*ElementState `json:"elements"`
	Registries Registries               `json:"registries"`
}

// Registries holds the handler registry referenced by every ElementState's
// HandlerRef.Index.
type Registries struct {
	Handlers []HandlerRegistryEntry `json:"handlers"`
}

// HandlerRegistryEntry names a handler function registered via Register,
// without capturing any of its instance-specific data.
type HandlerRegistryEntry struct {
	ModuleID   string `json:"moduleId"`
	ExportName string `json:"exportName"`
}

// ElementState is the per-element slice of the state table: the handlers
// bound to it (by DOM event name) and the signals whose initial values were
// serialized for it.
type ElementState struct {
	Handlers map[string]HandlerRef `json:"handlers,omitempty"`
	Signals  map[string]any        `json:"signals,omitempty"`
}

// HandlerRef points at a HandlerRegistryEntry and carries the plain-data
// captures that were closed over when the handler was bound.
type HandlerRef struct {
	Index    int            `json:"index"`
	Captures map[string]any `json:"captures,omitempty"`
}

// NewStateTable returns an empty, ready-to-populate StateTable.
func NewStateTable() *StateTable {
	return &StateTable{
		Version:  Version,
		Elements: make(map[string]*ElementState),
	}
}

// element returns the ElementState for id, creating it if absent.
func (t *StateTable) element(id string) *ElementState {
	es, ok := t.Elements[id]
	if !ok {
		es = &ElementState{}
		t.Elements[id] = es
	}
	return es
}

// BindHandler records that element id listens for eventName via ref.
func (t *StateTable) BindHandler(id, eventName string, ref HandlerRef) {
	es := t.element(id)
	if es.Handlers == nil {
		es.Handlers = make(map[string]HandlerRef)
	}
	es.Handlers[eventName] = ref
}

// SerializeSignal records the initial value of signalID on element id.
func (t *StateTable) SerializeSignal(id, signalID string, value any) {
	es := t.element(id)
	if es.Signals == nil {
		es.Signals = make(map[string]any)
	}
	es.Signals[signalID] = value
}

// IsEmpty reports whether the table carries no elements at all, the case in
// which emitting the `<script>` payload can be skipped entirely.
func (t *StateTable) IsEmpty() bool {
	return t == nil || len(t.Elements) == 0
}

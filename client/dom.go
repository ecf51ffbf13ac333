// Package client implements the browser-side half of the framework: mounting
// a vnode tree into a live DOM, hydrating a server-rendered one, and the
// delegated event table both rely on.
//
// client operates entirely against the small DOM interface declared in this
// file rather than syscall/js directly, so the mount/hydrate algorithm runs
// unmodified in two environments: a `//go:build js && wasm` build backed by
// the real DOM (dom_wasm.go), and an in-memory fake (fakedom.go) that lets
// client/scenarios_test.go exercise the full mount/hydrate/event pipeline
// under `go test` with no browser involved.
package client

// NodeKind discriminates the concrete DOM node types client deals with.
type NodeKind int

const (
	NodeElement NodeKind = iota
	NodeText
	NodeComment
)

// Node is the common capability every DOM node (element, text, comment)
// supports: knowing its place in the tree and being removable from it.
type Node interface {
	Kind() NodeKind
	Parent() Element
	Remove()
}

// Element is a DOM element: the target of mount/hydrate's element-creation
// step, attribute writes, child insertion and the delegated event table.
type Element interface {
	Node

	TagName() string

	SetAttribute(name, value string)
	GetAttribute(name string) (string, bool)
	RemoveAttribute(name string)
	ToggleAttribute(name string, on bool)

	// SetProperty sets a DOM property (as opposed to an HTML attribute) —
	// used for things like `value`, `checked` and `innerHTML` that have a
	// live property distinct from their initial attribute.
	SetProperty(name string, value any)

	Children() []Node
	AppendChild(child Node)
	InsertBefore(child Node, before Node)
	RemoveChild(child Node)

	// AddEventListener and RemoveEventListener back the delegated event
	// table: exactly one native listener per event type is installed on a
	// root element (see events.go); these are the primitive the table is
	// built from.
	AddEventListener(eventType string, handler func(Event))
	RemoveEventListener(eventType string)

	// OwnerDocument returns the Document this element was created by, used
	// to create further nodes during mount/hydrate.
	OwnerDocument() Document

	// Native returns the underlying platform handle (js.Value in the wasm
	// build), for `ref` callbacks that need it.
	Native() any
}

// Text is a DOM text node.
type Text interface {
	Node
	Data() string
	SetData(data string)
}

// Comment is a DOM comment node, used as the sentinel pair bracketing a
// dynamic child range (see mount.go's mountDynamicRange).
type Comment interface {
	Node
	Data() string
	SetData(data string)
}

// Document creates new DOM nodes. Every Element returned by Mount/Hydrate's
// traversal is created through the Document reachable via its container's
// OwnerDocument.
type Document interface {
	CreateElement(tag string) Element
	CreateText(data string) Text
	CreateComment(data string) Comment

	// GetElementByID looks up a previously-hydrated element by its stable
	// hydration id (the `data-hid` attribute emitted by package ssr).
	// Hydrate itself walks the container's children and does not call it.
	GetElementByID(id string) (Element, bool)

	// HydrationState returns the JSON text of the `<script id="philjs-state"
	// type="application/json">` tag package ssr embeds in the page (see
	// ssr.Result.StateJSON), for Hydrate to unmarshal into a
	// resumable.StateTable. ok is false if the page was never server-rendered
	// with state (e.g. a plain client-side Mount).
	HydrationState() (json string, ok bool)
}

// Event is the platform event value passed to a bound handler. PreventD and
// StopP are set by the concrete DOM implementation to the real
// preventDefault/stopPropagation calls; they default to no-ops so fake-DOM
// tests can construct an Event without wiring them up.
type Event struct {
	Type   string
	Target Element

	// Native is the underlying platform event (js.Value in the wasm build).
	Native any

	PreventD func()
	StopP    func()
}

// PreventDefault prevents the event's default browser action, if the
// concrete implementation supports it.
func (e Event) PreventDefault() {
	if e.PreventD != nil {
		e.PreventD()
	}
}

// StopPropagation stops the event from bubbling further, if the concrete
// implementation supports it.
func (e Event) StopPropagation() {
	if e.StopP != nil {
		e.StopP()
	}
}

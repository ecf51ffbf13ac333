//go:build js && wasm

package client

import "syscall/js"

// wasmDocument wraps the browser's global document, grounded on the
// js.Value-wrapping shape used throughout other_examples/ozanturksever-uiwgo
// (honnef.co/go/js/dom/v2's Element wrapping a js.Value handle).
type wasmDocument struct {
	v js.Value
}

// NewWasmDocument returns a Document backed by the real browser DOM. Call
// this once from a wasm program's main before calling Mount/Hydrate.
func NewWasmDocument() Document {
	return &wasmDocument{v: js.Global().Get("document")}
}

func (d *wasmDocument) CreateElement(tag string) Element {
	return &wasmElement{v: d.v.Call("createElement", tag), doc: d}
}

func (d *wasmDocument) CreateText(data string) Text {
	return &wasmText{v: d.v.Call("createTextNode", data)}
}

func (d *wasmDocument) CreateComment(data string) Comment {
	return &wasmComment{v: d.v.Call("createComment", data)}
}

func (d *wasmDocument) GetElementByID(id string) (Element, bool) {
	v := d.v.Call("querySelector", `[data-hid="`+id+`"]`)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &wasmElement{v: v, doc: d}, true
}

func (d *wasmDocument) HydrationState() (string, bool) {
	v := d.v.Call("querySelector", `script#philjs-state[type="application/json"]`)
	if v.IsNull() || v.IsUndefined() {
		return "", false
	}
	return v.Get("textContent").String(), true
}

// wasmElement wraps a single DOM element js.Value.
type wasmElement struct {
	v         js.Value
	doc       *wasmDocument
	listeners map[string]js.Func
}

func (e *wasmElement) Kind() NodeKind { return NodeElement }

func (e *wasmElement) Parent() Element {
	p := e.v.Get("parentElement")
	if p.IsNull() || p.IsUndefined() {
		return nil
	}
	return &wasmElement{v: p, doc: e.doc}
}

func (e *wasmElement) Remove() { e.v.Call("remove") }

func (e *wasmElement) TagName() string { return e.v.Get("tagName").String() }

func (e *wasmElement) SetAttribute(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *wasmElement) GetAttribute(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *wasmElement) RemoveAttribute(name string) { e.v.Call("removeAttribute", name) }

func (e *wasmElement) ToggleAttribute(name string, on bool) {
	e.v.Call("toggleAttribute", name, on)
}

func (e *wasmElement) SetProperty(name string, value any) { e.v.Set(name, value) }

func (e *wasmElement) Children() []Node {
	list := e.v.Get("childNodes")
	n := list.Get("length").Int()
	out := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, wrapNode(list.Call("item", i), e.doc))
	}
	return out
}

func (e *wasmElement) AppendChild(child Node) { e.v.Call("appendChild", nativeOf(child)) }

func (e *wasmElement) InsertBefore(child Node, before Node) {
	if before == nil {
		e.AppendChild(child)
		return
	}
	e.v.Call("insertBefore", nativeOf(child), nativeOf(before))
}

func (e *wasmElement) RemoveChild(child Node) { e.v.Call("removeChild", nativeOf(child)) }

func (e *wasmElement) AddEventListener(eventType string, handler func(Event)) {
	if e.listeners == nil {
		e.listeners = make(map[string]js.Func)
	}
	if old, ok := e.listeners[eventType]; ok {
		e.v.Call("removeEventListener", eventType, old)
		old.Release()
	}
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		native := args[0]
		handler(Event{
			Type:     eventType,
			Target:   e,
			Native:   native,
			PreventD: func() { native.Call("preventDefault") },
			StopP:    func() { native.Call("stopPropagation") },
		})
		return nil
	})
	e.listeners[eventType] = fn
	e.v.Call("addEventListener", eventType, fn)
}

func (e *wasmElement) RemoveEventListener(eventType string) {
	if fn, ok := e.listeners[eventType]; ok {
		e.v.Call("removeEventListener", eventType, fn)
		fn.Release()
		delete(e.listeners, eventType)
	}
}

func (e *wasmElement) OwnerDocument() Document { return e.doc }

func (e *wasmElement) Native() any { return e.v }

type wasmText struct{ v js.Value }

func (t *wasmText) Kind() NodeKind { return NodeText }
func (t *wasmText) Parent() Element {
	p := t.v.Get("parentElement")
	if p.IsNull() || p.IsUndefined() {
		return nil
	}
	return &wasmElement{v: p}
}
func (t *wasmText) Remove()          { t.v.Call("remove") }
func (t *wasmText) Data() string     { return t.v.Get("data").String() }
func (t *wasmText) SetData(d string) { t.v.Set("data", d) }

type wasmComment struct{ v js.Value }

func (c *wasmComment) Kind() NodeKind { return NodeComment }
func (c *wasmComment) Parent() Element {
	p := c.v.Get("parentElement")
	if p.IsNull() || p.IsUndefined() {
		return nil
	}
	return &wasmElement{v: p}
}
func (c *wasmComment) Remove()          { c.v.Call("remove") }
func (c *wasmComment) Data() string     { return c.v.Get("data").String() }
func (c *wasmComment) SetData(d string) { c.v.Set("data", d) }

func nativeOf(n Node) js.Value {
	switch v := n.(type) {
	case *wasmElement:
		return v.v
	case *wasmText:
		return v.v
	case *wasmComment:
		return v.v
	default:
		return js.Null()
	}
}

func wrapNode(v js.Value, doc *wasmDocument) Node {
	switch v.Get("nodeType").Int() {
	case 1: // ELEMENT_NODE
		return &wasmElement{v: v, doc: doc}
	case 8: // COMMENT_NODE
		return &wasmComment{v: v}
	default: // TEXT_NODE and others
		return &wasmText{v: v}
	}
}

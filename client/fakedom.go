package client

import "strings"

// fakeDocument is an in-memory Document used by tests and by any non-wasm
// build. It implements just enough DOM semantics (attributes, properties,
// tree structure, event dispatch) for Mount/Hydrate and their scenario
// tests to exercise the real algorithm without a browser.
type fakeDocument struct {
	hidIndex map[string]*fakeElement
	stateJSON string
	hasState  bool
}

// NewFakeDocument returns a fresh in-memory Document.
func NewFakeDocument() Document {
	return &fakeDocument{hidIndex: make(map[string]*fakeElement)}
}

// SetHydrationState seeds the fake document's embedded state script, as if
// package ssr had rendered it server-side. Test-only: a real page reads this
// straight out of the DOM (see dom_wasm.go), nothing ever calls this in
// production code.
func (d *fakeDocument) SetHydrationState(json string) {
	d.stateJSON = json
	d.hasState = true
}

func (d *fakeDocument) HydrationState() (string, bool) {
	return d.stateJSON, d.hasState
}

func (d *fakeDocument) CreateElement(tag string) Element {
	return &fakeElement{tag: tag, doc: d, attrs: make(map[string]string), props: make(map[string]any), listeners: make(map[string]func(Event))}
}

func (d *fakeDocument) CreateText(data string) Text {
	return &fakeText{data: data}
}

func (d *fakeDocument) CreateComment(data string) Comment {
	return &fakeComment{data: data}
}

func (d *fakeDocument) GetElementByID(id string) (Element, bool) {
	el, ok := d.hidIndex[id]
	return el, ok
}

func (d *fakeDocument) index(el *fakeElement) {
	if hid, ok := el.attrs["data-hid"]; ok && hid != "" {
		d.hidIndex[hid] = el
	}
}

// fakeElement is the in-memory Element implementation.
type fakeElement struct {
	tag       string
	doc       *fakeDocument
	parent    *fakeElement
	children  []Node
	attrs     map[string]string
	props     map[string]any
	listeners map[string]func(Event)
}

func (e *fakeElement) Kind() NodeKind { return NodeElement }

func (e *fakeElement) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *fakeElement) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

func (e *fakeElement) TagName() string { return e.tag }

func (e *fakeElement) SetAttribute(name, value string) {
	e.attrs[name] = value
	if name == "data-hid" {
		e.doc.index(e)
	}
}

func (e *fakeElement) GetAttribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

func (e *fakeElement) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

func (e *fakeElement) ToggleAttribute(name string, on bool) {
	if on {
		e.SetAttribute(name, "")
	} else {
		e.RemoveAttribute(name)
	}
}

func (e *fakeElement) SetProperty(name string, value any) {
	e.props[name] = value
}

// Property returns a property set via SetProperty, for test assertions.
func (e *fakeElement) Property(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

func (e *fakeElement) Children() []Node { return e.children }

func (e *fakeElement) AppendChild(child Node) {
	setFakeParent(child, e)
	e.children = append(e.children, child)
}

func (e *fakeElement) InsertBefore(child Node, before Node) {
	setFakeParent(child, e)
	if before == nil {
		e.children = append(e.children, child)
		return
	}
	for i, c := range e.children {
		if c == before {
			e.children = append(e.children[:i:i], append([]Node{child}, e.children[i:]...)...)
			return
		}
	}
	e.children = append(e.children, child)
}

func (e *fakeElement) RemoveChild(child Node) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			setFakeParent(child, nil)
			return
		}
	}
}

func (e *fakeElement) AddEventListener(eventType string, handler func(Event)) {
	e.listeners[eventType] = handler
}

func (e *fakeElement) RemoveEventListener(eventType string) {
	delete(e.listeners, eventType)
}

func (e *fakeElement) OwnerDocument() Document { return e.doc }

func (e *fakeElement) Native() any { return e }

// Dispatch simulates a native event firing on e and bubbling up through its
// ancestors, the same path a real DOM event takes to reach whatever element
// bindEvent installed the shared delegated listener on (see events.go's
// delegationTable). It stops at the first ancestor (inclusive of e) with a
// listener registered for eventType, since that's always the delegation
// root in practice -- nothing in this package ever calls AddEventListener
// on more than one element per event type along a given path.
func (e *fakeElement) Dispatch(eventType string, native any) {
	ev := Event{Type: eventType, Target: e, Native: native}
	for cur := e; cur != nil; cur = cur.parent {
		if l, ok := cur.listeners[eventType]; ok {
			l(ev)
			return
		}
	}
}

// Text renders the element's text content by concatenating text-node
// children, for test assertions ("after 3 clicks text=3").
func (e *fakeElement) Text() string {
	var b strings.Builder
	for _, c := range e.children {
		switch n := c.(type) {
		case *fakeText:
			b.WriteString(n.data)
		case *fakeElement:
			b.WriteString(n.Text())
		}
	}
	return b.String()
}

func setFakeParent(n Node, parent *fakeElement) {
	switch v := n.(type) {
	case *fakeElement:
		v.parent = parent
	case *fakeText:
		v.parent = parent
	case *fakeComment:
		v.parent = parent
	}
}

// fakeText is the in-memory Text implementation.
type fakeText struct {
	data   string
	parent *fakeElement
}

func (t *fakeText) Kind() NodeKind { return NodeText }
func (t *fakeText) Parent() Element {
	if t.parent == nil {
		return nil
	}
	return t.parent
}
func (t *fakeText) Remove() {
	if t.parent != nil {
		t.parent.RemoveChild(t)
	}
}
func (t *fakeText) Data() string     { return t.data }
func (t *fakeText) SetData(d string) { t.data = d }

// fakeComment is the in-memory Comment implementation, used as the anchor
// pair bracketing a dynamic child range.
type fakeComment struct {
	data   string
	parent *fakeElement
}

func (c *fakeComment) Kind() NodeKind { return NodeComment }
func (c *fakeComment) Parent() Element {
	if c.parent == nil {
		return nil
	}
	return c.parent
}
func (c *fakeComment) Remove() {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
}
func (c *fakeComment) Data() string     { return c.data }
func (c *fakeComment) SetData(d string) { c.data = d }

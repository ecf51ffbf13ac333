package client

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/philjs-dev/philjs/reactive"
	"github.com/philjs-dev/philjs/resumable"
	"github.com/philjs-dev/philjs/vnode"
)

// HydrateOptions customizes Hydrate's mismatch handling. The zero value logs
// every mismatch through slog.Default() and otherwise applies the default
// policy (patch text/attribute mismatches, remount structural ones).
type HydrateOptions struct {
	// OnMismatch, if set, is called instead of the default slog warning for
	// every HydrationMismatchError encountered during the walk.
	OnMismatch func(HydrationMismatchError)
}

// Hydrate attaches vn to container's existing, server-rendered DOM instead
// of building it from scratch: it loads the resumable.StateTable package ssr
// embedded in the page, walks vn in lockstep with container's children
// re-creating each binding's effect without writing the value it already
// holds, and re-populates every resumable.Signal from the persisted table so
// the page resumes exactly where the server left off. The returned Cleanup
// disposes the hydrated subtree the same way Mount's does.
func Hydrate(vn *vnode.VNode, container Element) reactive.Cleanup {
	return HydrateWithOptions(vn, container, HydrateOptions{})
}

// HydrateWithOptions is Hydrate with explicit mismatch handling.
func HydrateWithOptions(vn *vnode.VNode, container Element, opts HydrateOptions) reactive.Cleanup {
	table := resumable.NewStateTable()
	if raw, ok := container.OwnerDocument().HydrationState(); ok {
		if err := json.Unmarshal([]byte(raw), table); err != nil {
			slog.Default().Warn("philjs: discarding unparsable hydration state", "error", err)
			table = resumable.NewStateTable()
		}
	}

	h := &hydrator{opts: opts}
	endPass := resumable.BeginPass(table, false)
	owner := reactive.NewOwner(nil)
	reactive.WithOwner(owner, func() {
		cur := &cursor{nodes: container.Children()}
		h.hydrateInto(container, container, cur, vn, "0")
		cur.removeRest()
	})
	endPass()

	return func() { owner.Dispose() }
}

// cursor walks a live parent's existing children in order as hydrateInto
// consumes vnodes against them.
type cursor struct {
	nodes []Node
	i     int
}

func (c *cursor) next() Node {
	if c.i >= len(c.nodes) {
		return nil
	}
	n := c.nodes[c.i]
	c.i++
	return n
}

func (c *cursor) peekBefore() Node {
	if c.i < len(c.nodes) {
		return c.nodes[c.i]
	}
	return nil
}

// removeRest detaches any DOM nodes the vnode tree never claimed: the server
// rendered more children than this pass expects to find, which can only
// happen if the page was rendered from a different build than the one
// hydrating it.
func (c *cursor) removeRest() {
	for ; c.i < len(c.nodes); c.i++ {
		if el, ok := c.nodes[c.i].(Element); ok {
			unbindElement(el)
		}
		c.nodes[c.i].Remove()
	}
}

type hydrator struct {
	opts HydrateOptions
}

func (h *hydrator) mismatch(kind MismatchKind, path string) {
	err := HydrationMismatchError{Kind: kind, Path: path}
	if h.opts.OnMismatch != nil {
		h.opts.OnMismatch(err)
		return
	}
	slog.Default().Warn("philjs: hydration mismatch", "kind", kind.String(), "path", path)
}

// remount abandons lockstep hydration for vn (a structural mismatch) and
// falls back to building it fresh, inserting it where cur's next unconsumed
// node currently sits.
func (h *hydrator) remount(root, parent Element, cur *cursor, vn *vnode.VNode, path string) {
	before := cur.peekBefore()
	h.mismatch(MismatchStructure, path)
	mountInto(root, parent, before, vn)
}

// hydrateInto is mountInto's counterpart: it reuses an existing DOM node for
// vn instead of creating one whenever the shapes agree, and falls back to
// mountInto for anything it doesn't recognize in the existing DOM.
func (h *hydrator) hydrateInto(root, parent Element, cur *cursor, vn *vnode.VNode, path string) {
	if vn == nil {
		return
	}

	switch vn.Kind {
	case vnode.KindElement:
		h.hydrateElement(root, parent, cur, vn, path)
	case vnode.KindText:
		h.hydrateText(parent, cur, vn, path)
	case vnode.KindFragment:
		if thunk, ok := vnode.DynamicChildThunk(vn); ok {
			h.hydrateDynamicRange(root, parent, cur, thunk, path)
			return
		}
		for i, c := range vn.Children {
			h.hydrateInto(root, parent, cur, c, path+"."+strconv.Itoa(i))
		}
	case vnode.KindComponent:
		h.hydrateComponent(root, parent, cur, vn, path)
	case vnode.KindRaw:
		h.hydrateRaw(parent, cur, vn, path)
	case vnode.KindPortal:
		// Portal content lives outside this lockstep walk entirely (its
		// target is a different root); mount it fresh the same way a live
		// Mount would.
		mountPortal(root, vn)
	}
}

func (h *hydrator) hydrateElement(root, parent Element, cur *cursor, vn *vnode.VNode, path string) {
	node := cur.next()
	el, ok := node.(Element)
	if !ok || !strings.EqualFold(el.TagName(), vn.Tag) {
		h.remount(root, parent, cur, vn, path)
		return
	}

	if vn.HID != "" {
		el.SetAttribute("data-hid", vn.HID)
	}
	h.hydrateProps(root, el, vn.Props, path)
	registerUnmount(el)

	if ref := vn.Props["ref"]; ref != nil {
		mountRef(el, ref)
	}

	if _, raw := vn.Props["dangerouslySetInnerHTML"].(string); raw {
		return
	}

	childCur := &cursor{nodes: el.Children()}
	for i, c := range vn.Children {
		h.hydrateInto(root, el, childCur, c, path+"."+strconv.Itoa(i))
	}
	childCur.removeRest()
}

// hydrateProps mirrors mountProps, except attribute/class/style bindings
// compare against the element's current value before writing anything, so a
// binding whose first computed value matches what the server already wrote
// never touches the DOM.
func (h *hydrator) hydrateProps(root Element, el Element, props vnode.Props, path string) {
	for key, value := range props {
		switch {
		case key == "ref", key == "key", key == "dangerouslySetInnerHTML":
			continue
		case strings.HasPrefix(key, "on"):
			bindEvent(root, el, strings.ToLower(key[2:]), value)
		case key == "class" || key == "className":
			h.hydrateClassProp(el, value, path)
		case key == "style":
			h.hydrateStyleProp(el, value, path)
		default:
			h.hydrateAttrProp(el, key, value, path)
		}
	}
}

// attrMatches reports whether el's current attribute state already equals
// value, using the same boolean/value rules applyAttr writes with.
func attrMatches(el Element, key string, value any) bool {
	if value == nil {
		_, has := el.GetAttribute(key)
		return !has
	}
	if b, ok := value.(bool); ok && booleanAttrs[key] {
		_, has := el.GetAttribute(key)
		return has == b
	}
	current, _ := el.GetAttribute(key)
	return current == attrString(value)
}

func (h *hydrator) hydrateAttrProp(el Element, key string, value any, path string) {
	if !vnode.IsThunk(value) {
		if !attrMatches(el, key, value) {
			h.mismatch(MismatchAttr, path+"@"+key)
			applyAttr(el, key, value)
		}
		return
	}
	reactive.CreateEffect(func() reactive.Cleanup {
		v, _ := vnode.CallThunk(value)
		if !attrMatches(el, key, v) {
			applyAttr(el, key, v)
		}
		return nil
	})
}

func (h *hydrator) hydrateClassProp(el Element, value any, path string) {
	if !vnode.IsThunk(value) {
		current, _ := el.GetAttribute("class")
		if wanted := classString(value); current != wanted {
			h.mismatch(MismatchAttr, path+"@class")
			el.SetAttribute("class", wanted)
		}
		return
	}
	reactive.CreateEffect(func() reactive.Cleanup {
		v, _ := vnode.CallThunk(value)
		current, _ := el.GetAttribute("class")
		if wanted := classString(v); current != wanted {
			el.SetAttribute("class", wanted)
		}
		return nil
	})
}

func (h *hydrator) hydrateStyleProp(el Element, value any, path string) {
	if !vnode.IsThunk(value) {
		current, _ := el.GetAttribute("style")
		if wanted := styleString(value); current != wanted {
			h.mismatch(MismatchAttr, path+"@style")
			el.SetAttribute("style", wanted)
		}
		return
	}
	reactive.CreateEffect(func() reactive.Cleanup {
		v, _ := vnode.CallThunk(value)
		current, _ := el.GetAttribute("style")
		if wanted := styleString(v); current != wanted {
			el.SetAttribute("style", wanted)
		}
		return nil
	})
}

func (h *hydrator) hydrateText(parent Element, cur *cursor, vn *vnode.VNode, path string) {
	node := cur.next()
	txt, ok := node.(Text)

	if thunk, isDynamic := vnode.DynamicTextKey(vn); isDynamic {
		if !ok {
			doc := parent.OwnerDocument()
			fresh := doc.CreateText("")
			parent.InsertBefore(fresh, cur.peekBefore())
			h.mismatch(MismatchStructure, path)
			txt = fresh
		}
		registerUnmount(txt)
		reactive.CreateEffect(func() reactive.Cleanup {
			if v := thunk(); txt.Data() != v {
				txt.SetData(v)
			}
			return nil
		})
		return
	}

	if !ok {
		h.remount(nil, parent, cur, vn, path)
		return
	}
	if txt.Data() != vn.Text {
		h.mismatch(MismatchText, path)
		txt.SetData(vn.Text)
	}
	registerUnmount(txt)
}

func (h *hydrator) hydrateRaw(parent Element, cur *cursor, vn *vnode.VNode, path string) {
	node := cur.next()
	el, ok := node.(Element)
	if !ok || el.TagName() != "philjs-raw" {
		h.remount(nil, parent, cur, vn, path)
		return
	}
	el.SetProperty("innerHTML", vn.Text)
	registerUnmount(el)
}

func (h *hydrator) hydrateComponent(root, parent Element, cur *cursor, vn *vnode.VNode, path string) {
	if vn.Comp == nil {
		return
	}
	parentOwner := reactive.CurrentOwner()
	owner := reactive.NewOwner(parentOwner)
	reactive.WithOwner(owner, func() {
		output := vn.Comp.Render()
		h.hydrateInto(root, parent, cur, output, path)
	})
}

// hydrateDynamicRange reuses mount's anchor-comment bracketing: it expects
// the server to have emitted the exact same "phil:start"/"phil:end" comment
// pair, reuses the content already sitting between them on the first effect
// run (no write, matching the rest of the walk's policy), and falls back to
// mount's clear-and-remount behavior for every subsequent update.
func (h *hydrator) hydrateDynamicRange(root, parent Element, cur *cursor, thunk vnode.ChildThunk, path string) {
	startNode := cur.next()
	start, ok := startNode.(Comment)
	if !ok || start.Data() != "phil:start" {
		h.mismatch(MismatchStructure, path)
		mountDynamicRange(root, parent, cur.peekBefore(), thunk)
		return
	}

	// Consume whatever sits between start and the matching end comment, then
	// the end comment itself, handing the interior off to a sub-cursor for
	// the first hydration pass.
	var interior []Node
	var end Comment
	for {
		n := cur.next()
		if n == nil {
			break
		}
		if c, ok := n.(Comment); ok && c.Data() == "phil:end" {
			end = c
			break
		}
		interior = append(interior, n)
	}

	var rangeOwner *reactive.Owner
	first := true
	reactive.CreateEffect(func() reactive.Cleanup {
		if first {
			first = false
			rangeOwner = reactive.NewOwner(reactive.CurrentOwner())
			reactive.WithOwner(rangeOwner, func() {
				innerCur := &cursor{nodes: interior}
				h.hydrateInto(root, parent, innerCur, thunk(), path+".range")
				innerCur.removeRest()
			})
			return nil
		}

		if rangeOwner != nil {
			rangeOwner.Dispose()
		}
		var endNode Node
		if end != nil {
			endNode = end
		}
		removeBetween(parent, start, endNode)
		rangeOwner = reactive.NewOwner(reactive.CurrentOwner())
		reactive.WithOwner(rangeOwner, func() {
			mountInto(root, parent, endNode, thunk())
		})
		return nil
	})
}

package client

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/philjs-dev/philjs/reactive"
	"github.com/philjs-dev/philjs/vnode"
)

// booleanAttrs mirrors vnode's own table (see vnode/effective_attrs.go):
// these are written via toggleAttribute rather than a string value.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true, "async": true, "autofocus": true, "autoplay": true,
	"checked": true, "controls": true, "default": true, "defer": true,
	"disabled": true, "formnovalidate": true, "hidden": true, "inert": true,
	"ismap": true, "loop": true, "multiple": true, "muted": true,
	"novalidate": true, "open": true, "playsinline": true, "readonly": true,
	"required": true, "reversed": true, "selected": true,
}

// unitlessStyleProps are CSS properties whose numeric value is written
// without a "px" suffix (matching the common React convention this
// framework's `style` prop follows).
var unitlessStyleProps = map[string]bool{
	"opacity": true, "zIndex": true, "flex": true, "flexGrow": true,
	"flexShrink": true, "order": true, "fontWeight": true, "lineHeight": true,
	"zoom": true, "columnCount": true,
}

// Mount renders vn into container, which becomes both the insertion point
// and the delegated-event-table root for everything mounted beneath it. The
// returned Cleanup disposes the owner scope that was created for the
// subtree, running every effect's cleanup, detaching delegated event
// bindings, and removing the mounted DOM nodes.
func Mount(vn *vnode.VNode, container Element) reactive.Cleanup {
	owner := reactive.NewOwner(nil)
	reactive.WithOwner(owner, func() {
		mountInto(container, container, nil, vn)
	})
	return func() { owner.Dispose() }
}

// mountInto creates the DOM for vn and inserts it into parent before the
// `before` reference node (or at the end, if before is nil). root is the
// delegated-event-table root passed down unchanged from Mount.
func mountInto(root, parent Element, before Node, vn *vnode.VNode) {
	if vn == nil {
		return
	}

	switch vn.Kind {
	case vnode.KindElement:
		mountElement(root, parent, before, vn)
	case vnode.KindText:
		mountText(parent, before, vn)
	case vnode.KindFragment:
		if thunk, ok := vnode.DynamicChildThunk(vn); ok {
			mountDynamicRange(root, parent, before, thunk)
			return
		}
		for _, c := range vn.Children {
			mountInto(root, parent, before, c)
		}
	case vnode.KindComponent:
		mountComponent(root, parent, before, vn)
	case vnode.KindRaw:
		mountRaw(parent, before, vn)
	case vnode.KindPortal:
		mountPortal(root, vn)
	}
}

func mountElement(root, parent Element, before Node, vn *vnode.VNode) {
	doc := parent.OwnerDocument()
	el := doc.CreateElement(vn.Tag)

	if vn.HID != "" {
		el.SetAttribute("data-hid", vn.HID)
	}

	mountProps(root, el, vn.Props)

	if raw, ok := vn.Props["dangerouslySetInnerHTML"].(string); ok {
		el.SetProperty("innerHTML", raw)
	} else {
		for _, c := range vn.Children {
			mountInto(root, el, nil, c)
		}
	}

	parent.InsertBefore(el, before)
	registerUnmount(el)

	if ref := vn.Props["ref"]; ref != nil {
		mountRef(el, ref)
	}
}

// registerUnmount ties node's removal from the DOM (and, for elements, its
// delegated-event bindings) to the currently active Owner's disposal, so
// that disposing the Cleanup Mount/Hydrate returned actually removes what
// was mounted instead of merely tearing down reactive state.
func registerUnmount(node Node) {
	reactive.OnUnmount(func() {
		if el, ok := node.(Element); ok {
			unbindElement(el)
		}
		node.Remove()
	})
}

func mountRef(el Element, ref any) {
	switch fn := ref.(type) {
	case func(any):
		reactive.OnMount(func() { fn(el.Native()) })
		reactive.OnUnmount(func() { fn(nil) })
	case func(Element):
		reactive.OnMount(func() { fn(el) })
		reactive.OnUnmount(func() { fn(nil) })
	}
}

// mountProps writes every prop of an element node: event handlers into the
// delegated table, class/style through their merge rules, everything else
// as a plain (optionally thunk-driven) attribute.
func mountProps(root, el Element, props vnode.Props) {
	for key, value := range props {
		switch {
		case key == "ref", key == "key", key == "dangerouslySetInnerHTML":
			continue
		case strings.HasPrefix(key, "on"):
			bindEvent(root, el, strings.ToLower(key[2:]), value)
		case key == "class" || key == "className":
			mountClassProp(el, value)
		case key == "style":
			mountStyleProp(el, value)
		default:
			mountAttrProp(el, key, value)
		}
	}
}

func mountAttrProp(el Element, key string, value any) {
	if vnode.IsThunk(value) {
		reactive.CreateEffect(func() reactive.Cleanup {
			v, _ := vnode.CallThunk(value)
			applyAttr(el, key, v)
			return nil
		})
		return
	}
	applyAttr(el, key, value)
}

func applyAttr(el Element, key string, value any) {
	if value == nil {
		el.RemoveAttribute(key)
		return
	}
	if b, ok := value.(bool); ok {
		if booleanAttrs[key] {
			el.ToggleAttribute(key, b)
			return
		}
		el.SetAttribute(key, strconv.FormatBool(b))
		return
	}
	el.SetAttribute(key, attrString(value))
}

func attrString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func mountClassProp(el Element, value any) {
	if vnode.IsThunk(value) {
		reactive.CreateEffect(func() reactive.Cleanup {
			v, _ := vnode.CallThunk(value)
			el.SetAttribute("class", classString(v))
			return nil
		})
		return
	}
	el.SetAttribute("class", classString(value))
}

// classString implements `class`'s merge semantics: a string is used as-is,
// a []string is space-joined, and a map[string]bool/map[string]any includes
// only the truthy keys (evaluating any per-entry thunks), sorted for
// deterministic output.
func classString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	case map[string]bool:
		names := make([]string, 0, len(v))
		for k, on := range v {
			if on {
				names = append(names, k)
			}
		}
		sort.Strings(names)
		return strings.Join(names, " ")
	case map[string]any:
		names := make([]string, 0, len(v))
		for k, raw := range v {
			val := raw
			if vnode.IsThunk(raw) {
				val, _ = vnode.CallThunk(raw)
			}
			if truthy(val) {
				names = append(names, k)
			}
		}
		sort.Strings(names)
		return strings.Join(names, " ")
	default:
		return attrString(value)
	}
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case nil:
		return false
	default:
		return true
	}
}

func mountStyleProp(el Element, value any) {
	if vnode.IsThunk(value) {
		reactive.CreateEffect(func() reactive.Cleanup {
			v, _ := vnode.CallThunk(value)
			el.SetAttribute("style", styleString(v))
			return nil
		})
		return
	}
	el.SetAttribute("style", styleString(value))
}

// styleString implements `style`'s merge semantics: a string is used as-is;
// a map[string]any maps a camelCase CSS property to a string or number
// (numbers get a "px" suffix unless the property is in unitlessStyleProps),
// evaluating per-entry thunks.
func styleString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	m, ok := value.(map[string]any)
	if !ok {
		return attrString(value)
	}

	props := make([]string, 0, len(m))
	for k := range m {
		props = append(props, k)
	}
	sort.Strings(props)

	var b strings.Builder
	for _, prop := range props {
		raw := m[prop]
		if vnode.IsThunk(raw) {
			raw, _ = vnode.CallThunk(raw)
		}
		decl := styleDecl(prop, raw)
		if decl == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(decl)
	}
	return b.String()
}

func styleDecl(prop string, value any) string {
	name := camelToKebab(prop)
	switch v := value.(type) {
	case string:
		return name + ": " + v
	case int:
		return name + ": " + numericCSSValue(prop, float64(v))
	case float64:
		return name + ": " + numericCSSValue(prop, v)
	case nil:
		return ""
	default:
		return name + ": " + fmt.Sprintf("%v", v)
	}
}

func numericCSSValue(prop string, v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if unitlessStyleProps[prop] {
		return s
	}
	return s + "px"
}

func camelToKebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mountText(parent Element, before Node, vn *vnode.VNode) {
	doc := parent.OwnerDocument()
	if thunk, ok := vnode.DynamicTextKey(vn); ok {
		txt := doc.CreateText("")
		parent.InsertBefore(txt, before)
		registerUnmount(txt)
		reactive.CreateEffect(func() reactive.Cleanup {
			txt.SetData(thunk())
			return nil
		})
		return
	}
	txt := doc.CreateText(vn.Text)
	parent.InsertBefore(txt, before)
	registerUnmount(txt)
}

func mountRaw(parent Element, before Node, vn *vnode.VNode) {
	doc := parent.OwnerDocument()
	wrapper := doc.CreateElement("philjs-raw")
	wrapper.SetProperty("innerHTML", vn.Text)
	parent.InsertBefore(wrapper, before)
	registerUnmount(wrapper)
}

// mountComponent opens a child Owner and invokes the component's Render
// function exactly once. Subsequent updates happen only through the
// per-binding effects created while mounting that single output tree, never
// by re-invoking Render.
func mountComponent(root, parent Element, before Node, vn *vnode.VNode) {
	if vn.Comp == nil {
		return
	}
	parentOwner := reactive.CurrentOwner()
	owner := reactive.NewOwner(parentOwner)
	reactive.WithOwner(owner, func() {
		output := vn.Comp.Render()
		mountInto(root, parent, before, output)
	})
}

// mountDynamicRange mounts a reactive child range (see vnode.Dynamic):
// a pair of anchor comments bracket the content thunk() currently returns,
// and an effect replaces everything between them whenever a dependency of
// thunk changes.
func mountDynamicRange(root, parent Element, before Node, thunk vnode.ChildThunk) {
	doc := parent.OwnerDocument()
	start := doc.CreateComment("phil:start")
	end := doc.CreateComment("phil:end")
	parent.InsertBefore(start, before)
	parent.InsertBefore(end, before)

	var rangeOwner *reactive.Owner
	reactive.CreateEffect(func() reactive.Cleanup {
		if rangeOwner != nil {
			rangeOwner.Dispose()
		}
		removeBetween(parent, start, end)

		rangeOwner = reactive.NewOwner(reactive.CurrentOwner())
		reactive.WithOwner(rangeOwner, func() {
			mountInto(root, parent, end, thunk())
		})
		return nil
	})
}

// removeBetween removes every node currently sitting between start and end
// (exclusive), used before re-mounting a dynamic range's new content.
func removeBetween(parent Element, start, end Node) {
	children := parent.Children()
	startIdx, endIdx := -1, -1
	for i, c := range children {
		if c == start {
			startIdx = i
		}
		if c == end {
			endIdx = i
			break
		}
	}
	if startIdx == -1 || endIdx == -1 {
		return
	}
	for i := endIdx - 1; i > startIdx; i-- {
		if el, ok := children[i].(Element); ok {
			unbindElement(el)
		}
		parent.RemoveChild(children[i])
	}
}

// mountPortal mounts a Portal's children into its target container instead
// of the tree position the Portal node occupies. The portal's target
// becomes the delegated-event-table root for its subtree, since the portal
// content is not a DOM descendant of the original root.
func mountPortal(root Element, vn *vnode.VNode) {
	target, ok := vn.PortalTarget.(Element)
	if !ok || target == nil {
		return
	}
	for _, c := range vn.Children {
		mountInto(target, target, nil, c)
	}
}

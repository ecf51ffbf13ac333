package vnode

import (
	"fmt"
	"strings"
)

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// dynamicTextKey is the Props key client.Mount/Hydrate look for to tell a
// reactive text node (created via DynamicText) apart from a static one.
const dynamicTextKey = "_dynamicText"

// dynamicChildKey is the Props key marking a Fragment as a dynamic child
// range (created via Dynamic): its contents are replaced, inside a pair of
// anchor comments, every time the wrapped ChildThunk's dependencies change.
const dynamicChildKey = "_dynamicChild"

// DynamicText creates a text node whose content is recomputed by thunk on
// every dependency change instead of being fixed at construction time.
func DynamicText(thunk StringThunk) *VNode {
	return &VNode{
		Kind:  KindText,
		Props: Props{dynamicTextKey: thunk},
	}
}

// DynamicTextKey returns the node's dynamic-text thunk and true if node was
// built with DynamicText.
func DynamicTextKey(node *VNode) (StringThunk, bool) {
	if node == nil || node.Props == nil {
		return nil, false
	}
	fn, ok := node.Props[dynamicTextKey].(StringThunk)
	return fn, ok
}

// Dynamic wraps thunk as a child whose output is mounted inside a pair of
// anchor comments and replaced every time thunk's dependencies change,
// instead of once at construction time like a plain *VNode child.
func Dynamic(thunk ChildThunk) *VNode {
	return &VNode{
		Kind:  KindFragment,
		Props: Props{dynamicChildKey: thunk},
	}
}

// DynamicChildThunk returns node's dynamic-child thunk and true if node was
// built with Dynamic.
func DynamicChildThunk(node *VNode) (ChildThunk, bool) {
	if node == nil || node.Props == nil {
		return nil, false
	}
	fn, ok := node.Props[dynamicChildKey].(ChildThunk)
	return fn, ok
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// DangerouslySetInnerHTML creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func DangerouslySetInnerHTML(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Raw is a legacy alias for DangerouslySetInnerHTML.
func Raw(html string) *VNode {
	return DangerouslySetInnerHTML(html)
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &VNode{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}

	return node
}

// Portal groups children to be mounted into target instead of their
// position in the tree. target is opaque to vnode (a client.Element at
// mount/hydrate time); ssr renders a Portal's children in place, since a
// server-rendered document has no notion of "elsewhere" to move them to.
func Portal(target any, children ...any) *VNode {
	node := Fragment(children...)
	node.Kind = KindPortal
	node.PortalTarget = target
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// IfLazy is an alias for When, for readers coming from the condition-first
// If/IfElse naming.
func IfLazy(condition bool, fn func() *VNode) *VNode {
	return When(condition, fn)
}

// ShowWhen is an alias for When, for semantic clarity alongside Show/Hide.
func ShowWhen(condition bool, fn func() *VNode) *VNode {
	return When(condition, fn)
}

// Unless is the inverse of If.
// Returns the node if condition is false.
func Unless(condition bool, node *VNode) *VNode {
	if !condition {
		return node
	}
	return nil
}

// Case represents a case in a Switch statement.
type Case[T comparable] struct {
	Value     T
	Node      *VNode
	IsDefault bool
}

// Case_ creates a case for Switch.
func Case_[T comparable](value T, node *VNode) Case[T] {
	return Case[T]{Value: value, Node: node}
}

// Default creates a default case for Switch.
func Default[T comparable](node *VNode) Case[T] {
	return Case[T]{Node: node, IsDefault: true}
}

// Switch returns the node for the matching case value.
// If no case matches and there's a default, the default node is returned.
func Switch[T comparable](value T, cases ...Case[T]) *VNode {
	// First pass: look for matching value
	for _, c := range cases {
		if !c.IsDefault && c.Value == value {
			return c.Node
		}
	}
	// Second pass: look for default
	for _, c := range cases {
		if c.IsDefault {
			return c.Node
		}
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// RangeMap maps a map to VNodes.
// Note: map iteration order is not guaranteed.
func RangeMap[K comparable, V any](m map[K]V, fn func(key K, value V) *VNode) []*VNode {
	result := make([]*VNode, 0, len(m))
	for k, v := range m {
		node := fn(k, v)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	if n <= 0 {
		return nil
	}
	result := make([]*VNode, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Key creates a key attribute for reconciliation.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *VNode {
	return nil
}

// Show returns the node if condition is true, otherwise Nothing.
// Alias for If for semantic clarity.
func Show(condition bool, node *VNode) *VNode {
	return If(condition, node)
}

// Hide returns the node if condition is false, otherwise Nothing.
// Alias for Unless for semantic clarity.
func Hide(condition bool, node *VNode) *VNode {
	return Unless(condition, node)
}

// Either returns first if it's not nil, otherwise second.
func Either(first, second *VNode) *VNode {
	if first != nil {
		return first
	}
	return second
}

// Maybe returns the node if it's not nil.
// This is a no-op but can make code more readable.
func Maybe(node *VNode) *VNode {
	return node
}

// Group is an alias for Fragment.
func Group(children ...any) *VNode {
	return Fragment(children...)
}

// PathProvider reports the current navigation path. NavLink and
// NavLinkPrefix use it to decide whether to apply the "active" class.
type PathProvider interface {
	Path() string
}

// Link creates an anchor the client's router intercepts instead of
// performing a full page navigation.
func Link(href string, children ...any) *VNode {
	args := append([]any{Href(href), attr("data-link", "true")}, children...)
	return A(args...)
}

// LinkPrefetch is Link, but also prefetches the target page on hover.
func LinkPrefetch(href string, children ...any) *VNode {
	args := append([]any{Href(href), attr("data-link", "true"), attr("data-prefetch", "true")}, children...)
	return A(args...)
}

// NavLink is Link with an "active" class applied when ctx's current path
// matches href exactly. A nil ctx never matches.
func NavLink(ctx PathProvider, href string, children ...any) *VNode {
	args := []any{Href(href), attr("data-link", "true")}
	if ctx != nil && ctx.Path() == href {
		args = append(args, Class("active"))
	}
	args = append(args, children...)
	return A(args...)
}

// NavLinkPrefix is NavLink, but also matches when ctx's current path is a
// sub-route of href (href followed by "/").
func NavLinkPrefix(ctx PathProvider, href string, children ...any) *VNode {
	args := []any{Href(href), attr("data-link", "true")}
	if ctx != nil {
		p := ctx.Path()
		if p == href || strings.HasPrefix(p, href+"/") {
			args = append(args, Class("active"))
		}
	}
	args = append(args, children...)
	return A(args...)
}

// ScriptsOption configures PhilJSScripts.
type ScriptsOption func(*scriptsConfig)

type scriptsConfig struct {
	debug      bool
	scriptPath string
	csrfToken  string
	noDefer    bool
}

// WithDebug enables data-debug="true" on the client script tag.
func WithDebug() ScriptsOption {
	return func(c *scriptsConfig) { c.debug = true }
}

// WithScriptPath overrides the default "/_philjs/client.js" script path.
func WithScriptPath(path string) ScriptsOption {
	return func(c *scriptsConfig) { c.scriptPath = path }
}

// WithCSRFToken embeds a window.__PHILJS_CSRF__ assignment ahead of the
// client script, mirroring ssr.PageData.CSRFToken.
func WithCSRFToken(token string) ScriptsOption {
	return func(c *scriptsConfig) { c.csrfToken = token }
}

// WithoutDefer omits the defer attribute from the client script tag.
func WithoutDefer() ScriptsOption {
	return func(c *scriptsConfig) { c.noDefer = true }
}

// PhilJSScripts builds the script tags that load the thin client directly
// inline in a component tree, for templates that don't go through
// ssr.PageData's ClientScript/CSRFToken fields.
func PhilJSScripts(opts ...ScriptsOption) *VNode {
	cfg := scriptsConfig{scriptPath: "/_philjs/client.js"}
	for _, opt := range opts {
		opt(&cfg)
	}

	var children []any
	if cfg.csrfToken != "" {
		children = append(children, Script(Raw(fmt.Sprintf(`window.__PHILJS_CSRF__=%q;`, cfg.csrfToken))))
	}

	scriptArgs := []any{Src(cfg.scriptPath)}
	if cfg.debug {
		scriptArgs = append(scriptArgs, Data("debug", "true"))
	}
	if !cfg.noDefer {
		scriptArgs = append(scriptArgs, Defer_())
	}
	children = append(children, Script(scriptArgs...))

	return Fragment(children...)
}

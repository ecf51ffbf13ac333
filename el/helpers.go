// This file re-exports vnode helper functions for the el package.
package el

import "github.com/philjs-dev/philjs/vnode"

func Text(content string) *VNode {
	return vnode.Text(content)
}
func Textf(format string, args ...any) *VNode {
	return vnode.Textf(format, args...)
}
func Raw(html string) *VNode {
	return vnode.Raw(html)
}
func Fragment(children ...any) *VNode {
	return vnode.Fragment(children...)
}
func If(condition bool, node *VNode) *VNode {
	return vnode.If(condition, node)
}
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	return vnode.IfElse(condition, ifTrue, ifFalse)
}
func When(condition bool, fn func() *VNode) *VNode {
	return vnode.When(condition, fn)
}
func IfLazy(condition bool, fn func() *VNode) *VNode {
	return vnode.IfLazy(condition, fn)
}
func ShowWhen(condition bool, fn func() *VNode) *VNode {
	return vnode.ShowWhen(condition, fn)
}
func Unless(condition bool, node *VNode) *VNode {
	return vnode.Unless(condition, node)
}
func Case_[T comparable](value T, node *VNode) Case[T] {
	return vnode.Case_(value, node)
}
func Default[T comparable](node *VNode) Case[T] {
	return vnode.Default(node)
}
func Switch[T comparable](value T, cases ...Case[T]) *VNode {
	return vnode.Switch(value, cases...)
}
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	return vnode.Range(items, fn)
}
func RangeMap[K comparable, V any](m map[K]V, fn func(key K, value V) *VNode) []*VNode {
	return vnode.RangeMap(m, fn)
}
func Repeat(n int, fn func(i int) *VNode) []*VNode {
	return vnode.Repeat(n, fn)
}
func Key(key any) Attr {
	return vnode.Key(key)
}
func Nothing() *VNode {
	return vnode.Nothing()
}
func Show(condition bool, node *VNode) *VNode {
	return vnode.Show(condition, node)
}
func Hide(condition bool, node *VNode) *VNode {
	return vnode.Hide(condition, node)
}
func Either(first, second *VNode) *VNode {
	return vnode.Either(first, second)
}
func Maybe(node *VNode) *VNode {
	return vnode.Maybe(node)
}
func Group(children ...any) *VNode {
	return vnode.Group(children...)
}
func Link(href string, children ...any) *VNode {
	return vnode.Link(href, children...)
}
func LinkPrefetch(href string, children ...any) *VNode {
	return vnode.LinkPrefetch(href, children...)
}
func NavLink(ctx PathProvider, href string, children ...any) *VNode {
	return vnode.NavLink(ctx, href, children...)
}
func NavLinkPrefix(ctx PathProvider, href string, children ...any) *VNode {
	return vnode.NavLinkPrefix(ctx, href, children...)
}
func WithDebug() ScriptsOption {
	return vnode.WithDebug()
}
func WithScriptPath(path string) ScriptsOption {
	return vnode.WithScriptPath(path)
}
func WithCSRFToken(token string) ScriptsOption {
	return vnode.WithCSRFToken(token)
}
func WithoutDefer() ScriptsOption {
	return vnode.WithoutDefer()
}
func PhilJSScripts(opts ...ScriptsOption) *VNode {
	return vnode.PhilJSScripts(opts...)
}

package el

import "github.com/philjs-dev/philjs/vnode"

// Type aliases for the VDOM primitives used by the DSL.
type VNode = vnode.VNode
type VKind = vnode.VKind
type Props = vnode.Props
type Attr = vnode.Attr
type EventHandler = vnode.EventHandler
type Component = vnode.Component
type Case[T comparable] = vnode.Case[T]
type ScriptsOption = vnode.ScriptsOption
type PathProvider = vnode.PathProvider

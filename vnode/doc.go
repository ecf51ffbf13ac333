// Package vnode provides the virtual DOM implementation for PhilJS.
//
// The Virtual DOM (VDOM) provides an in-memory representation of the UI
// that can be efficiently diffed to produce minimal DOM updates. PhilJS's
// resumable architecture renders this tree to HTML on the server and
// resumes it in place on the client, rather than diffing against a second
// server-side copy.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes and event
// handlers. Attr and EventHandler are used to build Props.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Diffing
//
// The Diff function compares two VNode trees and returns a slice of Patch
// operations. Keyed reconciliation is used when children have Key attributes.
//
// # Hydration
//
// AssignHIDs walks the tree and assigns hydration IDs to every element, with
// or without event handlers. These IDs link server VNodes to client DOM.
package vnode

// Package el provides the UI DSL for PhilJS.
//
// It re-exports HTML element constructors, attribute helpers, event helpers,
// and common virtual DOM utilities from github.com/philjs-dev/philjs/vnode.
//
// Typical usage:
//
//	import (
//	    "github.com/philjs-dev/philjs/reactive"
//	    . "github.com/philjs-dev/philjs/el"
//	)
//
// This keeps the DSL in a dedicated package while the reactive APIs live in
// the reactive package.
package el

package reactive

import (
	"github.com/philjs-dev/philjs/vnode"
)

// Context provides dependency injection through the component tree.
// Create a context with CreateContext, provide values with Provider,
// and consume values with Use.
//
// Example:
//
//	var ThemeContext = reactive.CreateContext("light")
//
//	func App() *vnode.VNode {
//	    return ThemeContext.Provider("dark",
//	        Header(),
//	        Main(),
//	    )
//	}
//
//	func Button() *vnode.VNode {
//	    theme := ThemeContext.Use()
//	    return el.Button(el.Class("btn-" + theme))
//	}
type Context[T any] struct {
	// key uniquely identifies this context in the owner value map
	key any

	// defaultValue is returned when no provider is found
	defaultValue T
}

// contextKey wraps Context to create a unique key type
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a new context with the given default value.
// The default value is returned by Use() when no Provider is found
// in the component tree.
//
// Example:
//
//	var ThemeContext = reactive.CreateContext("light")
//	var UserContext = reactive.CreateContext[*User](nil)
func CreateContext[T any](defaultValue T) *Context[T] {
	ctx := &Context[T]{
		defaultValue: defaultValue,
	}
	// Use the context pointer itself as the key to ensure uniqueness
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// Provider wraps children with this context's value.
// Descendant components can access the value via Use().
//
// Example:
//
//	func App() *vnode.VNode {
//	    return ThemeContext.Provider("dark",
//	        Header(),
//	        Main(),
//	        Footer(),
//	    )
//	}
func (c *Context[T]) Provider(value T, children ...any) *vnode.VNode {
	// Store the value in the current owner's context
	owner := getCurrentOwner()
	if owner != nil {
		owner.SetValue(c.key, value)
	}

	// Return a fragment containing the children
	return vnode.Fragment(children...)
}

// Use retrieves the context value from the nearest Provider ancestor.
// If no Provider is found, returns the default value.
//
// Example:
//
//	func Button() *vnode.VNode {
//	    theme := ThemeContext.Use()
//	    return el.Button(el.Class("btn-" + theme))
//	}
func (c *Context[T]) Use() T {
	// Look up the value in the owner hierarchy
	owner := getCurrentOwner()
	if owner != nil {
		if value := owner.GetValue(c.key); value != nil {
			if typed, ok := value.(T); ok {
				return typed
			}
		}
	}

	return c.defaultValue
}

// Default returns the default value for this context.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

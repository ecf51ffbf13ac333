package islands

import (
	"encoding/json"
	"sync"

	"github.com/philjs-dev/philjs/reactive"
	"github.com/philjs-dev/philjs/vnode"
)

// JSModule is a path to a JavaScript module.
type JSModule string

// JSProps are properties passed to the island.
type JSProps map[string]any

// JSIsland creates a new JavaScript island VNode.
func JSIsland(id string, module JSModule, props JSProps) *vnode.VNode {
	propsJSON, _ := json.Marshal(props)

	// Render a container div that the JS module will mount into.
	// We use data-attributes for the thin client to identify and mount.
	return &vnode.VNode{
		Kind: vnode.KindElement,
		Tag:  "div",
		Key:  id,
		Props: vnode.Props{
			"id":          id,
			"data-island": id,
			"data-module": string(module),
			"data-props":  string(propsJSON),
			"class":       "philjs-island",
		},
	}
}

// SendToIsland accepts a message addressed to the client-side island id.
// No transport is wired to it: the message is discarded.
func SendToIsland(id string, message map[string]any) {
}

// OnIslandMessage registers a handler for messages from the island. The
// registration is tied to the calling effect's owner, so it is torn down
// automatically when that owner disposes.
func OnIslandMessage(id string, handler func(map[string]any)) {
	reactive.CreateEffect(func() reactive.Cleanup {
		messageHandlers.Store(id, handler)
		return func() {
			messageHandlers.Delete(id)
		}
	})
}

var messageHandlers sync.Map

// DispatchToIsland invokes the handler registered for id, if any, with an
// incoming message. Used by the transport layer to route messages that
// originate client-side back into the handler registered via OnIslandMessage.
func DispatchToIsland(id string, message map[string]any) {
	if h, ok := messageHandlers.Load(id); ok {
		h.(func(map[string]any))(message)
	}
}

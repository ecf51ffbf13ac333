package el

import (
	"encoding/json"
	"fmt"

	"github.com/philjs-dev/philjs/reactive"
)

// Hook attaches a client hook to an element. The config is serialized to
// JSON and sent to the client alongside the hook name.
func Hook(name string, config any) Attr {
	b, _ := json.Marshal(config)
	return Attr{
		Key:   "v-hook",
		Value: fmt.Sprintf("%s:%s", name, string(b)),
	}
}

// OnEvent attaches a handler for a named hook event dispatched by a client
// hook. The returned attribute's handler ignores events whose Name does not
// match name, so multiple OnEvent attributes can share the same element.
func OnEvent(name string, handler func(reactive.HookEvent)) Attr {
	filtered := func(e reactive.HookEvent) {
		if e.Name != name {
			return
		}
		handler(e)
	}
	return Attr{
		Key:   "v-hook-on-" + name,
		Value: filtered,
	}
}

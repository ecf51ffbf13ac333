package client

import (
	"reflect"
	"sync"
	"time"

	"github.com/philjs-dev/philjs/reactive"
	"github.com/philjs-dev/philjs/resumable"
)

// delegation is the process-wide delegated event table: exactly one native
// listener is installed per (root, eventType) pair, and every bound
// element/eventType combination is looked up by walking from the event's
// target up to the root. This is cheaper to bind/unbind than a native
// listener per element, and is what makes the handler-reference scheme in
// package resumable possible — resuming a page only ever needs to rebind
// table entries, never touch the DOM's listener set.
var delegation = &delegationTable{
	handlers:  make(map[Element]map[string]any),
	installed: make(map[Element]map[string]bool),
	state:     make(map[Element]map[string]*handlerState),
}

type delegationTable struct {
	mu        sync.Mutex
	handlers  map[Element]map[string]any
	installed map[Element]map[string]bool
	state     map[Element]map[string]*handlerState // debounce/throttle state
}

// handlerState holds the mutable bits a ModifiedHandler's Debounce/Throttle
// needs across invocations.
type handlerState struct {
	timer     *time.Timer
	lastFired time.Time
}

// bindEvent registers handler for eventName on el, installing the shared
// delegated listener on root the first time any element under root binds
// that event type.
func bindEvent(root, el Element, eventName string, handler any) {
	delegation.mu.Lock()
	if delegation.handlers[el] == nil {
		delegation.handlers[el] = make(map[string]any)
	}
	delegation.handlers[el][eventName] = handler

	if delegation.installed[root] == nil {
		delegation.installed[root] = make(map[string]bool)
	}
	needInstall := !delegation.installed[root][eventName]
	delegation.installed[root][eventName] = true
	delegation.mu.Unlock()

	if needInstall {
		root.AddEventListener(eventName, func(ev Event) {
			dispatchDelegated(root, eventName, ev)
		})
	}
}

// unbindEvent removes a single element/eventName binding. It does not
// remove the root listener: a root accumulates event types over its
// lifetime and is always disposed as a whole (see mount.go's unmount path).
func unbindEvent(el Element, eventName string) {
	delegation.mu.Lock()
	defer delegation.mu.Unlock()
	if m := delegation.handlers[el]; m != nil {
		delete(m, eventName)
		if len(m) == 0 {
			delete(delegation.handlers, el)
		}
	}
}

// unbindElement removes every binding for el, used when an element is
// unmounted so the delegation table doesn't keep it (and its closures)
// reachable.
func unbindElement(el Element) {
	delegation.mu.Lock()
	defer delegation.mu.Unlock()
	delete(delegation.handlers, el)
	delete(delegation.state, el)
}

// dispatchDelegated walks from ev.Target up to root looking for a bound
// handler for eventName, per standard event-bubbling semantics.
func dispatchDelegated(root Element, eventName string, ev Event) {
	origTarget := ev.Target
	for cur := origTarget; cur != nil; cur = cur.Parent() {
		delegation.mu.Lock()
		handler, ok := delegation.handlers[cur][eventName]
		delegation.mu.Unlock()

		if ok {
			invokeHandler(cur, eventName, handler, ev, origTarget)
			return
		}
		if cur == root {
			return
		}
	}
}

// invokeHandler applies any reactive.ModifiedHandler wrapping (preventing
// default, stopping propagation, filtering to the exact target, removing
// after one fire, debouncing/throttling) and then calls the innermost
// handler with ev.
func invokeHandler(boundEl Element, eventName string, handler any, ev Event, origTarget Element) {
	if mh, ok := handler.(reactive.ModifiedHandler); ok {
		if mh.Self && origTarget != boundEl {
			return
		}
		if mh.PreventDefault {
			ev.PreventDefault()
		}
		if mh.StopPropagation {
			ev.StopPropagation()
		}
		if mh.Once {
			unbindEvent(boundEl, eventName)
		}

		inner := mh.Unwrap()
		if mh.Debounce > 0 {
			debounce(boundEl, eventName, mh.Debounce, func() { invokeRaw(inner, ev) })
			return
		}
		if mh.Throttle > 0 {
			if !throttleAllow(boundEl, eventName, mh.Throttle) {
				return
			}
		}
		invokeRaw(inner, ev)
		return
	}
	invokeRaw(handler, ev)
}

func handlerStateFor(el Element, eventName string) *handlerState {
	if delegation.state[el] == nil {
		delegation.state[el] = make(map[string]*handlerState)
	}
	st, ok := delegation.state[el][eventName]
	if !ok {
		st = &handlerState{}
		delegation.state[el][eventName] = st
	}
	return st
}

func debounce(el Element, eventName string, d time.Duration, fn func()) {
	delegation.mu.Lock()
	st := handlerStateFor(el, eventName)
	if st.timer != nil {
		st.timer.Stop()
	}
	st.timer = time.AfterFunc(d, fn)
	delegation.mu.Unlock()
}

func throttleAllow(el Element, eventName string, d time.Duration) bool {
	delegation.mu.Lock()
	defer delegation.mu.Unlock()
	st := handlerStateFor(el, eventName)
	if !st.lastFired.IsZero() && time.Since(st.lastFired) < d {
		return false
	}
	st.lastFired = time.Now()
	return true
}

// invokeRaw calls handler with ev, accepting the common handler shapes used
// throughout package vnode/el (func(), func(client.Event), or a typed event
// consumer like func(reactive.MouseEvent)).
func invokeRaw(handler any, ev Event) {
	switch h := handler.(type) {
	case func():
		h()
		return
	case func(Event):
		h(ev)
		return
	case func(any):
		h(ev)
		return
	case resumable.Bound:
		resumable.InvokeByName(h.ModuleID, h.ExportName, h.Captures, ev)
		return
	}

	rv := reflect.ValueOf(handler)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return
	}
	t := rv.Type()
	if t.NumIn() == 0 {
		rv.Call(nil)
		return
	}
	if t.NumIn() != 1 {
		return
	}

	argT := t.In(0)
	if ev.Native != nil {
		nv := reflect.ValueOf(ev.Native)
		if nv.Type().AssignableTo(argT) {
			rv.Call([]reflect.Value{nv})
			return
		}
	}
	if argT == reflect.TypeOf(Event{}) {
		rv.Call([]reflect.Value{reflect.ValueOf(ev)})
		return
	}
	rv.Call([]reflect.Value{reflect.Zero(argT)})
}

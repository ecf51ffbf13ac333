package ssr

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/philjs-dev/philjs/suspense"
	"github.com/philjs-dev/philjs/vnode"
)

// RenderConfig is RendererConfig under the name the rest of the rendering
// pipeline (package client, package resumable) refers to it by.
type RenderConfig = RendererConfig

// Result is the output of a single ToString call: the rendered HTML
// fragment and, if the render captured any resumable.Signal values or
// resumable.Bound handlers, the JSON to embed in a
// `<script id="philjs-state" type="application/json">` tag alongside it.
// StateJSON is nil when the render had nothing to resume (IsEmpty in
// package resumable terms).
type Result struct {
	HTML      string
	StateJSON []byte
}

// ToString renders vn to a Result in a single resumable write pass: every
// resumable.Signal read while rendering vn is captured into StateJSON in
// the same order client.Hydrate will later allocate matching ids in.
func ToString(vn *vnode.VNode, cfg RenderConfig) (Result, error) {
	r := NewRenderer(cfg)
	html, err := r.RenderToString(vn)
	if err != nil {
		return Result{}, err
	}

	table := r.FinalizeState()
	if table.IsEmpty() {
		return Result{HTML: html}, nil
	}
	stateJSON, err := json.Marshal(table)
	if err != nil {
		return Result{}, fmt.Errorf("marshal resumable state: %w", err)
	}
	return Result{HTML: html, StateJSON: stateJSON}, nil
}

// StreamHooks lets a caller of ToStream react to the two points a streamed
// render passes through: the shell (everything outside of a pending
// suspense.Boundary) becoming ready to flush, and every boundary on the
// page finally settling.
type StreamHooks struct {
	OnShellReady func()
	OnAllReady   func()
	OnError      func(error)
}

// streamPollInterval is how often ToStream checks suspense.Pending while
// waiting for every Boundary on the page to settle.
const streamPollInterval = 2 * time.Millisecond

type flusher interface{ Flush() }

// ToStream renders vn to w as a minimal streamed HTML document: the shell
// is written and flushed immediately (firing OnShellReady), then ToStream
// blocks until every suspense.Boundary encountered while rendering has
// settled (OnAllReady fires once suspense.Pending drops to zero), at which
// point the resumable state script is appended and the document closed.
//
// This is deliberately the simplest thing that satisfies the streaming
// contract rather than a true chunked re-render of settled boundaries in
// place: package client's hydration walk reconciles whatever the fallback
// left behind against the final vnode tree regardless, the same mismatch
// patching path it already uses for any other server/client drift.
func ToStream(w io.Writer, vn *vnode.VNode, cfg RenderConfig, hooks StreamHooks) error {
	fail := func(err error) error {
		if hooks.OnError != nil {
			hooks.OnError(err)
		}
		return err
	}

	if _, err := w.Write([]byte("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n  <meta charset=\"utf-8\">\n</head>\n<body>\n")); err != nil {
		return fail(err)
	}

	r := NewRenderer(cfg)
	if err := r.RenderToWriter(w, vn); err != nil {
		return fail(err)
	}
	if f, ok := w.(flusher); ok {
		f.Flush()
	}
	if hooks.OnShellReady != nil {
		hooks.OnShellReady()
	}

	for suspense.Pending() > 0 {
		time.Sleep(streamPollInterval)
	}
	if hooks.OnAllReady != nil {
		hooks.OnAllReady()
	}

	table := r.FinalizeState()
	if !table.IsEmpty() {
		stateJSON, err := json.Marshal(table)
		if err != nil {
			return fail(fmt.Errorf("marshal resumable state: %w", err))
		}
		if _, err := fmt.Fprintf(w, `<script id="philjs-state" type="application/json">%s</script>`+"\n", stateJSON); err != nil {
			return fail(err)
		}
	}

	_, err := w.Write([]byte("</body>\n</html>\n"))
	if err != nil {
		return fail(err)
	}
	return nil
}

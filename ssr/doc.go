// Package ssr renders a vnode tree to HTML on the server, handling all
// aspects of producing valid, secure, resumable output:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Hydration ID generation for client-side interactivity
//   - Full page rendering with DOCTYPE, head, body
//   - Thin client script injection
//   - Capturing resumable.Signal/resumable.Bound state into a persisted
//     state table client.Hydrate reads back
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	renderer := ssr.NewRenderer(ssr.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// Or, for the HTML plus whatever resumable state it captured in one call:
//
//	result, err := ssr.ToString(node, ssr.RenderConfig{})
//	// result.HTML, result.StateJSON
//
// # Full Page Rendering
//
// To render a complete HTML document:
//
//	page := ssr.PageData{
//	    Body:       bodyNode,
//	    Title:      "My Page",
//	    SessionID:  session.ID,
//	    CSRFToken:  session.CSRFToken,
//	}
//	err := renderer.RenderPage(w, page)
//
// # Hydration IDs
//
// Every element automatically receives a data-hid attribute for client-side
// hydration. Event handlers are collected during rendering
// and can be retrieved via GetHandlers(); a resumable.Bound handler is
// additionally recorded in the renderer's resumable.StateTable.
//
// # Streaming
//
// For large pages, use StreamingRenderer to flush content incrementally, or
// ToStream for the lower-level streamed-Result equivalent that blocks on
// suspense.Boundary settling before appending the resumable state script.
//
// # Security
//
// All text content is escaped by default to prevent XSS attacks.
// Raw HTML can be inserted using KindRaw nodes, but should only be
// used with trusted content.
package ssr

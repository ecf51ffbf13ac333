package client

import "fmt"

// MismatchKind discriminates the two mismatch policies Hydrate applies when
// the server-rendered DOM doesn't match what the vnode tree says it should
// be.
type MismatchKind int

const (
	// MismatchText/attribute content differs but the element itself is the
	// right shape: Hydrate warns and patches the live value in place.
	MismatchText MismatchKind = iota
	MismatchAttr
	// MismatchStructure means the DOM doesn't even have the right node kind
	// or tag at this position: Hydrate can't patch around that, so it tears
	// down whatever is there and mounts the subtree fresh.
	MismatchStructure
)

func (k MismatchKind) String() string {
	switch k {
	case MismatchText:
		return "text"
	case MismatchAttr:
		return "attribute"
	case MismatchStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// HydrationMismatchError records a single point where the server-rendered
// DOM disagreed with the vnode tree being hydrated. Hydrate never returns
// this as an error (mismatches are recoverable — see MismatchKind); it's
// handed to HydrateOptions.OnMismatch if set, and otherwise logged as a
// warning through slog.Default().
type HydrationMismatchError struct {
	Kind MismatchKind
	Path string
}

func (e HydrationMismatchError) Error() string {
	return fmt.Sprintf("hydration mismatch (%s) at %s", e.Kind, e.Path)
}

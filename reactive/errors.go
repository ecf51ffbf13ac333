package reactive

import (
	"errors"
	"fmt"
)

// ErrWriteDuringCompute is returned (and panicked with) when a signal is
// written while a Memo's compute function is running on the same goroutine.
// Memos must be pure derivations of their sources; allowing writes during
// compute would make a memo's value depend on read order instead of only on
// its sources.
var ErrWriteDuringCompute = errors.New("reactive: cannot write to a signal while a memo is computing")

// DependencyCycleError is raised when a single effect-queue drain exceeds the
// bound enforced by drainEffectQueue. Dependency cycles are impossible in a
// well-formed graph (ErrWriteDuringCompute rules out the usual cause), so
// this is a defensive backstop rather than an expected code path.
type DependencyCycleError struct {
	// Depth is the number of effect runs performed before the bound tripped.
	Depth int
}

func (e *DependencyCycleError) Error() string {
	return fmt.Sprintf("reactive: dependency cycle detected after %d effect runs in one propagation", e.Depth)
}

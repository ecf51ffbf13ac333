package query

import "fmt"

// ResourceError pairs a cache key with the error from its most recent
// fetch attempt, so callers can tell which query failed without closing
// over the key themselves.
type ResourceError struct {
	Key string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("query %q: %v", e.Key, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

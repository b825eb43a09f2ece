// File: api/errors.go
// Author: wyfo
//
// Common error types and error handling utilities for the arc-slice library.
//
// License: Apache-2.0

package api

import "fmt"

// Common errors used across the library.
//
// Every allocating or mutating operation has an infallible form that panics
// with one of these values and a Try form that returns it.
var (
	// ErrNotUnique is returned when an in-place mutation is attempted on a
	// handle whose allocation is shared with another live handle. Mutation
	// is never satisfied by a silent copy; callers that want a copy must
	// request one explicitly.
	ErrNotUnique = fmt.Errorf("buffer reference is not unique")

	// ErrUnsupportedGrowth is returned when a reservation targets a buffer
	// type that cannot grow.
	ErrUnsupportedGrowth = fmt.Errorf("buffer type does not support growth")

	// ErrAllocation is returned when a fallible buffer growth fails in the
	// allocator.
	ErrAllocation = fmt.Errorf("allocation error")

	// ErrCapacityOverflow is returned when a requested capacity exceeds the
	// maximum slice length.
	ErrCapacityOverflow = fmt.Errorf("capacity overflow")

	// ErrNotSupported is returned by platform stubs for facilities that are
	// unavailable on the build target.
	ErrNotSupported = fmt.Errorf("operation not supported")
)

// BoundsError reports an out-of-range subslice, split, or borrow request.
type BoundsError struct {
	Start, End, Len int
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("range [%d:%d] out of bounds for length %d", e.Start, e.End, e.Len)
}

// CheckRange validates a half-open range against a view length, returning a
// *BoundsError exactly when start > end or end > n.
func CheckRange(start, end, n int) error {
	if start < 0 || start > end || end > n {
		return &BoundsError{Start: start, End: end, Len: n}
	}
	return nil
}

// File: api/buffer.go
// Author: wyfo
//
// Buffer capability interfaces for externally owned memory.
//
// Buffers may be mmap regions, shared memory, pooled slabs, or any other
// contiguous storage a caller wants to expose to arc-slice handles without
// copying. The core engages these interfaces only for non-built-in storage;
// handles over internally managed allocations never dispatch through them.
//
// License: Apache-2.0

package api

// Buffer is an owner of contiguous storage exposed to slice handles.
//
// Close runs the buffer teardown. It is invoked exactly once, on whichever
// goroutine drops the last reference, and must complete without blocking.
type Buffer[T any] interface {
	// View returns the read view of the buffer contents.
	View() []T

	// Close releases the underlying storage. The view obtained from View
	// must not be used afterward.
	Close()
}

// MutableBuffer is a Buffer supporting in-place mutation.
//
// MutView returns the writable window: len is the count of initialized
// items, cap the writable capacity. It must alias the same storage as View.
type MutableBuffer[T any] interface {
	Buffer[T]

	// MutView returns the mutable view of the buffer contents.
	MutView() []T
}

// GrowableBuffer is a MutableBuffer whose capacity can be extended.
type GrowableBuffer[T any] interface {
	MutableBuffer[T]

	// Grow extends capacity by at least n items, preserving contents.
	// Returns ErrAllocation on allocator failure.
	Grow(n int) error
}

// RefCounted is implemented by buffers that manage their own reference
// count (the raw-layout backing). Retain and Release must be safe for
// concurrent use from any goroutine.
type RefCounted interface {
	// Retain adds one reference.
	Retain()

	// Release drops one reference and reports whether it was the last.
	// The implementation runs its own teardown when it returns true.
	Release() bool

	// Unique reports whether exactly one reference is live.
	Unique() bool
}

// SharedBuffer is a self-refcounted buffer, wrappable with zero additional
// reference-count state.
type SharedBuffer[T any] interface {
	Buffer[T]
	RefCounted
}

// MetadataProvider lets a buffer expose a read-only side-channel value
// (a file path, a shared-memory key) retrievable from any handle over it.
type MetadataProvider interface {
	// Metadata returns the associated value. It must be safe to call at
	// any time between construction and Close.
	Metadata() any
}

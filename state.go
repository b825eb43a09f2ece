// File: state.go
// Author: wyfo
//
// Shared allocation header: reference count, buffer dispatch, metadata.
//
// License: Apache-2.0

package arcslice

import (
	"github.com/wyfo/arc-slice/api"
	"github.com/wyfo/arc-slice/internal/refcount"
)

// state is the shared allocation header referenced by every handle over one
// buffer. It exists while the count is positive and is torn down exactly
// once, by whichever release observes the count reach zero.
type state[T any] struct {
	refs refcount.Count

	// full is the full backing span. For internally managed storage it is
	// the full-capacity slice; for wrapped buffers it is the buffer's view.
	full []T

	// buf is the wrapped external buffer; nil for internal storage, which
	// needs no dispatch and no teardown beyond dropping full.
	buf api.Buffer[T]

	// rc is non-nil when buf manages its own reference count (raw-layout
	// backing); refs is then unused and all counting delegates to it.
	rc api.RefCounted

	// meta is the explicitly attached metadata, if any.
	meta any
}

// newStateOwned builds a header over internally managed storage, holding
// one reference.
func newStateOwned[T any](full []T, meta any) *state[T] {
	st := &state[T]{full: full[:cap(full)], meta: meta}
	st.refs.Reset(1)
	return st
}

// newStateBuffer builds a header wrapping an external buffer, holding one
// reference. Only the header is allocated; contents are not copied.
func newStateBuffer[T any](b api.Buffer[T], meta any) *state[T] {
	st := &state[T]{full: b.View(), buf: b, meta: meta}
	st.refs.Reset(1)
	return st
}

// newStateShared wraps a self-refcounted buffer, consuming the caller's
// reference. The header carries no count of its own.
func newStateShared[T any](b api.SharedBuffer[T], meta any) *state[T] {
	return &state[T]{full: b.View(), buf: b, rc: b, meta: meta}
}

func (st *state[T]) acquire() {
	if st.rc != nil {
		st.rc.Retain()
		return
	}
	st.refs.Acquire()
}

func (st *state[T]) release() {
	if st.rc != nil {
		// A self-refcounted buffer runs its own teardown.
		st.rc.Release()
		return
	}
	if st.refs.Release() {
		st.teardown()
	}
}

func (st *state[T]) teardown() {
	if st.buf != nil {
		st.buf.Close()
		st.buf = nil
	}
	st.full = nil
}

func (st *state[T]) isUnique() bool {
	if st.rc != nil {
		return st.rc.Unique()
	}
	return st.refs.IsUnique()
}

func (st *state[T]) metadata() any {
	if st.meta != nil {
		return st.meta
	}
	if p, ok := st.buf.(api.MetadataProvider); ok {
		return p.Metadata()
	}
	return nil
}

// sameStart reports whether two spans begin at the same storage location.
func sameStart[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}
	return &a[0] == &b[0]
}

// File: slice.go
// Author: wyfo
//
// Slice: the immutable, cloneable, zero-copy shared view.
//
// License: Apache-2.0

package arcslice

import (
	"unsafe"

	"github.com/wyfo/arc-slice/api"
)

// Slice is an immutable shared view over a reference-counted allocation.
//
// The zero value is an empty handle backed by no allocation. Distinct
// clones may be used from different goroutines without coordination; a
// single Slice value must not be used concurrently.
//
// Handles do not release their reference on garbage collection: callers
// own the reference and drop it with Release (or a consuming operation such
// as IntoItems or DowncastBuffer). Internally managed storage is reclaimed
// by the garbage collector either way; external buffers are torn down only
// through their count reaching zero.
type Slice[T any] struct {
	// data is the view window. Spare capacity beyond len, when present, is
	// reachable again through TryIntoMut and IntoItems.
	data  []T
	state *state[T]
	// owned marks exclusively owned storage whose shared header has not
	// been allocated yet; the first clone installs it.
	owned bool
}

// Empty returns an empty handle backed by no allocation.
func Empty[T any]() Slice[T] { return Slice[T]{} }

// FromSlice copies items into fresh storage under the default layout.
func FromSlice[T any](items []T) Slice[T] {
	return FromSliceIn(items, DefaultLayout)
}

// FromSliceIn copies items into fresh storage under layout l.
func FromSliceIn[T any](items []T, l Layout) Slice[T] {
	full := make([]T, len(items))
	copy(full, items)
	return FromOwnedIn(full, l)
}

// FromOwned takes ownership of items without copying, under the default
// layout. The caller must not use items afterward.
func FromOwned[T any](items []T) Slice[T] {
	return FromOwnedIn(items, DefaultLayout)
}

// FromOwnedIn takes ownership of items without copying, under layout l.
func FromOwnedIn[T any](items []T, l Layout) Slice[T] {
	if len(items) == 0 && cap(items) == 0 {
		return Slice[T]{}
	}
	if !l.eagerHeader {
		// Header deferred to the first clone.
		return Slice[T]{data: items, owned: true}
	}
	return Slice[T]{data: items, state: newStateOwned(items, nil)}
}

// NewStatic wraps caller memory without copying, counting, or teardown.
//
// The caller guarantees the slice stays immutable and live for as long as
// any derived handle exists; package-level literals qualify. Cloning a
// static handle never allocates.
func NewStatic[T any](items []T) Slice[T] {
	return Slice[T]{data: items}
}

// FromBuffer wraps an external buffer without copying. Only a header is
// allocated; the buffer is closed exactly once, when the last handle over
// it is released.
func FromBuffer[T any](b api.Buffer[T]) Slice[T] {
	return FromBufferWithMetadata(b, nil)
}

// FromBufferWithMetadata wraps an external buffer and attaches meta,
// retrievable from any derived handle via Metadata.
func FromBufferWithMetadata[T any](b api.Buffer[T], meta any) Slice[T] {
	st := newStateBuffer(b, meta)
	return Slice[T]{data: st.full, state: st}
}

// FromShared wraps a self-refcounted buffer (raw layout), consuming the
// caller's reference. Cloning delegates to the buffer's own count and
// never allocates.
func FromShared[T any](b api.SharedBuffer[T]) Slice[T] {
	st := newStateShared(b, nil)
	return Slice[T]{data: st.full, state: st}
}

// Items returns the view window. Callers must not mutate it.
func (s *Slice[T]) Items() []T { return s.data }

// Len returns the view length.
func (s *Slice[T]) Len() int { return len(s.data) }

// IsUnique reports whether this is the sole live handle over its
// allocation. Static handles report false: their memory is not owned by
// the handle at all.
func (s *Slice[T]) IsUnique() bool {
	if s.state == nil {
		return s.owned
	}
	return s.state.isUnique()
}

// promote installs the lazily deferred header over owned storage.
func (s *Slice[T]) promote() {
	s.state = newStateOwned(s.data[:len(s.data):cap(s.data)], nil)
	s.owned = false
}

// Clone returns a new handle over the same allocation, incrementing its
// reference count. Static handles clone for free; a handle over owned
// storage whose header was deferred allocates it on first clone.
func (s *Slice[T]) Clone() Slice[T] {
	if s.state == nil {
		if !s.owned {
			return Slice[T]{data: s.data}
		}
		s.promote()
	}
	s.state.acquire()
	return Slice[T]{data: s.data, state: s.state}
}

// Release drops this handle's reference. Whichever release observes the
// count reach zero runs the allocation teardown, synchronously, exactly
// once. The handle is reset to empty.
func (s *Slice[T]) Release() {
	st := s.state
	*s = Slice[T]{}
	if st != nil {
		st.release()
	}
}

// ReleaseUnique drops the handle, skipping the atomic decrement and running
// teardown directly.
//
// Precondition, never verified at runtime: this must be the last live
// handle over the allocation. Getting it wrong corrupts the system.
// Self-refcounted buffers delegate to their own count regardless.
func (s *Slice[T]) ReleaseUnique() {
	st := s.state
	*s = Slice[T]{}
	if st == nil {
		return
	}
	if st.rc != nil {
		st.rc.Release()
		return
	}
	st.teardown()
}

// Subslice returns a handle over the half-open range [start:end) of the
// view. No data is copied; the only cost is the implicit clone. Panics on
// an invalid range.
func (s *Slice[T]) Subslice(start, end int) Slice[T] {
	sub, err := s.TrySubslice(start, end)
	if err != nil {
		panic(err)
	}
	return sub
}

// TrySubslice is the fallible form of Subslice. It fails with a
// *api.BoundsError iff start > end or end > Len.
func (s *Slice[T]) TrySubslice(start, end int) (Slice[T], error) {
	if err := api.CheckRange(start, end, len(s.data)); err != nil {
		return Slice[T]{}, err
	}
	sub := s.Clone()
	sub.data = sub.data[start:end]
	return sub, nil
}

// SplitTo partitions the view at i: the returned handle holds [0:i) and the
// receiver keeps [i:Len). Both share the allocation and its single count;
// concatenating them reproduces the pre-split content. Panics if i is out
// of range.
func (s *Slice[T]) SplitTo(i int) Slice[T] {
	front, err := s.TrySplitTo(i)
	if err != nil {
		panic(err)
	}
	return front
}

// TrySplitTo is the fallible form of SplitTo.
func (s *Slice[T]) TrySplitTo(i int) (Slice[T], error) {
	if err := api.CheckRange(i, i, len(s.data)); err != nil {
		return Slice[T]{}, err
	}
	front := s.Clone()
	front.data = front.data[:i]
	s.data = s.data[i:]
	return front, nil
}

// SplitOff partitions the view at i: the returned handle holds [i:Len) and
// the receiver keeps [0:i). Panics if i is out of range.
func (s *Slice[T]) SplitOff(i int) Slice[T] {
	back, err := s.TrySplitOff(i)
	if err != nil {
		panic(err)
	}
	return back
}

// TrySplitOff is the fallible form of SplitOff.
func (s *Slice[T]) TrySplitOff(i int) (Slice[T], error) {
	if err := api.CheckRange(i, i, len(s.data)); err != nil {
		return Slice[T]{}, err
	}
	back := s.Clone()
	back.data = back.data[i:]
	s.data = s.data[:i]
	return back, nil
}

// Advance moves the view start forward by n items in place, without
// touching the reference count. Panics if n > Len.
func (s *Slice[T]) Advance(n int) {
	if err := api.CheckRange(n, n, len(s.data)); err != nil {
		panic(err)
	}
	s.data = s.data[n:]
}

// Truncate shortens the view to n items in place; a no-op when n >= Len.
func (s *Slice[T]) Truncate(n int) {
	if n < len(s.data) && n >= 0 {
		s.data = s.data[:n]
	}
}

// Equal reports content equality: two handles are equal iff their viewed
// items are equal, independent of allocation identity.
func Equal[T comparable](a, b Slice[T]) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	if len(a.data) == 0 || &a.data[0] == &b.data[0] {
		return true
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Metadata retrieves the allocation's attached metadata as type M.
// Explicitly attached metadata takes precedence over the wrapped buffer's
// api.MetadataProvider. A type mismatch is expected control flow and yields
// absence, not an error.
func Metadata[M any, T any](s *Slice[T]) (M, bool) {
	var zero M
	if s.state == nil {
		return zero, false
	}
	m, ok := s.state.metadata().(M)
	if !ok {
		return zero, false
	}
	return m, true
}

// DowncastBuffer recovers the original wrapped buffer value from a handle.
//
// It succeeds only when the handle is the sole live reference and its view
// covers the full original buffer span, in which case the handle is
// consumed and the buffer is returned without running teardown. Otherwise
// the handle is left untouched and absence is returned: partial or shared
// views are routine, not faults.
func DowncastBuffer[B any, T any](s *Slice[T]) (B, bool) {
	var zero B
	st := s.state
	if st == nil || st.buf == nil {
		return zero, false
	}
	if !st.isUnique() {
		return zero, false
	}
	if len(s.data) != len(st.full) || !sameStart(s.data, st.full) {
		return zero, false
	}
	b, ok := st.buf.(B)
	if !ok {
		return zero, false
	}
	*s = Slice[T]{}
	st.buf = nil
	st.rc = nil
	st.full = nil
	return b, true
}

// TryIntoMut converts the handle into a mutable one over the same
// allocation, without copying. It succeeds only when the handle is unique
// and the backing storage is writable (internally managed, owned, or an
// api.MutableBuffer). On failure the handle is left untouched.
func (s *Slice[T]) TryIntoMut() (SliceMut[T], bool) {
	if s.state == nil {
		if !s.owned {
			// Static memory is immutable by contract.
			return SliceMut[T]{}, false
		}
		m := SliceMut[T]{data: s.data, full: s.data[:cap(s.data)], owned: true, unique: true}
		*s = Slice[T]{}
		return m, true
	}
	st := s.state
	if st.buf != nil {
		if _, ok := st.buf.(api.MutableBuffer[T]); !ok {
			return SliceMut[T]{}, false
		}
	}
	if !st.isUnique() {
		return SliceMut[T]{}, false
	}
	m := SliceMut[T]{
		data:   s.data,
		state:  st,
		full:   st.full,
		off:    spanOffset(st.full, s.data),
		unique: true,
	}
	*s = Slice[T]{}
	return m, true
}

// IntoItems consumes the handle and returns its content as a plain slice.
// A unique handle over internally managed storage hands the storage back
// without reallocation, sliding the content to the start when the view was
// advanced; any other handle copies.
func (s *Slice[T]) IntoItems() []T {
	st := s.state
	if st == nil {
		data := s.data
		owned := s.owned
		*s = Slice[T]{}
		if owned {
			return data
		}
		out := make([]T, len(data))
		copy(out, data)
		return out
	}
	if st.buf == nil && st.isUnique() {
		n := len(s.data)
		if n > 0 && !sameStart(s.data, st.full) {
			copy(st.full[:n], s.data)
		}
		out := st.full[:n]
		*s = Slice[T]{}
		st.full = nil
		return out
	}
	out := make([]T, len(s.data))
	copy(out, s.data)
	s.Release()
	return out
}

// WithLayout converts the handle to layout l, consuming it. Content and
// metadata are preserved; a shared header is allocated only when the source
// representation had none and the target requires one.
func (s *Slice[T]) WithLayout(l Layout) Slice[T] {
	if l.eagerHeader && s.state == nil && s.owned {
		s.promote()
	}
	out := *s
	*s = Slice[T]{}
	if !l.keepCapacity {
		out.data = out.data[: len(out.data) : len(out.data)]
	}
	return out
}

// spanOffset returns the index of window's start within full. The window
// must have been derived from full.
func spanOffset[T any](full, window []T) int {
	if len(window) == 0 || len(full) == 0 {
		return 0
	}
	size := unsafe.Sizeof(full[0])
	if size == 0 {
		return 0
	}
	delta := uintptr(unsafe.Pointer(&window[0])) - uintptr(unsafe.Pointer(&full[0]))
	return int(delta / size)
}

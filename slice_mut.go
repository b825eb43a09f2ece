// File: slice_mut.go
// Author: wyfo
//
// SliceMut: the uniqueness-aware mutable view.
//
// License: Apache-2.0

package arcslice

import (
	"github.com/wyfo/arc-slice/api"
)

// SliceMut is a mutable view over a reference-counted allocation.
//
// In-place mutation is gated solely by uniqueness: an operation either
// proceeds immediately because this is provably the sole handle over the
// allocation, or fails immediately with api.ErrNotUnique. Mutation never
// silently duplicates the storage; a caller who wants a copy must request
// one explicitly.
//
// Uniqueness is known either statically (fresh constructions, or after a
// successful IntoUnique) or dynamically, re-verified on every mutating call
// through the atomic count. Statically-unique handles skip the atomic read
// entirely. Splitting a handle forfeits static uniqueness on both sides.
type SliceMut[T any] struct {
	// data is the writable window: len is the logical length, cap the
	// writable capacity. The window is exclusively writable by this handle.
	data  []T
	state *state[T]
	// full is the full backing span the window was carved from; off is the
	// window's start index within it. Together they keep the advanced-past
	// front region recoverable by TryReclaim.
	full []T
	off  int
	// owned marks exclusively owned storage with no shared header yet.
	owned bool
	// unique records statically known uniqueness. When set, no other live
	// handle shares the allocation; this is a documented precondition of
	// the fast path, not a checked property.
	unique bool
}

// NewMut returns an empty mutable handle with no allocation.
func NewMut[T any]() SliceMut[T] {
	return SliceMut[T]{owned: true, unique: true}
}

// WithCapacity returns an empty mutable handle over fresh storage of at
// least n items of capacity.
func WithCapacity[T any](n int) SliceMut[T] {
	data := make([]T, 0, n)
	return SliceMut[T]{data: data, full: data[:n], owned: true, unique: true}
}

// MutZeroed returns a mutable handle of length n over zeroed fresh storage.
func MutZeroed[T any](n int) SliceMut[T] {
	data := make([]T, n)
	return SliceMut[T]{data: data, full: data, owned: true, unique: true}
}

// MutFromOwned takes ownership of items without copying. The caller must
// not use items afterward.
func MutFromOwned[T any](items []T) SliceMut[T] {
	return SliceMut[T]{data: items, full: items[:cap(items)], owned: true, unique: true}
}

// MutFromBuffer wraps an external mutable buffer without copying. The
// caller hands exclusive ownership of the buffer to the handle, which is
// therefore statically unique.
func MutFromBuffer[T any](b api.MutableBuffer[T]) SliceMut[T] {
	return MutFromBufferWithMetadata(b, nil)
}

// MutFromBufferWithMetadata wraps an external mutable buffer and attaches
// meta.
func MutFromBufferWithMetadata[T any](b api.MutableBuffer[T], meta any) SliceMut[T] {
	mv := b.MutView()
	st := newStateBuffer[T](b, meta)
	st.full = mv[:cap(mv)]
	return SliceMut[T]{data: mv, state: st, full: st.full, unique: true}
}

// Items returns the initialized window. Callers must not grow it.
func (m *SliceMut[T]) Items() []T { return m.data }

// MutItems returns the writable window. Its items may be assigned freely:
// the window is exclusively writable by this handle even when the
// allocation is shared, since split siblings hold disjoint windows.
func (m *SliceMut[T]) MutItems() []T { return m.data }

// Len returns the logical length.
func (m *SliceMut[T]) Len() int { return len(m.data) }

// Cap returns the writable capacity.
func (m *SliceMut[T]) Cap() int { return cap(m.data) }

// isUnique is the per-call uniqueness predicate: static knowledge first,
// the atomic count otherwise.
func (m *SliceMut[T]) isUnique() bool {
	if m.unique || m.state == nil {
		return true
	}
	return m.state.isUnique()
}

// IntoUnique verifies uniqueness dynamically once and, on success, records
// it statically so subsequent mutating calls skip the check. Returns false,
// leaving the handle unchanged, when the allocation is shared.
func (m *SliceMut[T]) IntoUnique() bool {
	if m.isUnique() {
		m.unique = true
		return true
	}
	return false
}

// IntoShared discards static uniqueness knowledge, forcing every subsequent
// mutating call to re-verify through the count.
func (m *SliceMut[T]) IntoShared() {
	m.unique = false
}

// Append appends items in place. Panics when the allocation is shared or
// cannot grow; use TryAppendSlice for the fallible form.
func (m *SliceMut[T]) Append(items ...T) {
	if err := m.TryAppendSlice(items); err != nil {
		panic(err)
	}
}

// AppendSlice appends items in place, with the same contract as Append.
func (m *SliceMut[T]) AppendSlice(items []T) {
	if err := m.TryAppendSlice(items); err != nil {
		panic(err)
	}
}

// TryAppendSlice appends items in place. It fails with api.ErrNotUnique
// when the allocation is shared, or with a reservation error when capacity
// is insufficient and cannot grow. Nothing is appended on failure.
func (m *SliceMut[T]) TryAppendSlice(items []T) error {
	if !m.isUnique() {
		return api.ErrNotUnique
	}
	if cap(m.data)-len(m.data) < len(items) {
		if err := m.reserve(len(items)); err != nil {
			return err
		}
	}
	m.data = append(m.data, items...)
	return nil
}

// Reserve grows the writable capacity by at least n items. Panics where
// TryReserve would fail.
func (m *SliceMut[T]) Reserve(n int) {
	if err := m.TryReserve(n); err != nil {
		panic(err)
	}
}

// TryReserve grows the writable capacity by at least n items. It fails with
// api.ErrNotUnique when the allocation is shared, api.ErrUnsupportedGrowth
// when the buffer type cannot grow, api.ErrCapacityOverflow when the total
// exceeds the maximum slice length, or the buffer's own allocation error.
//
// Capacity is monotonically non-decreasing; reallocation doubles, bounded
// below by the requested minimum, to amortize repeated small reservations.
func (m *SliceMut[T]) TryReserve(n int) error {
	if n < 0 {
		return api.ErrCapacityOverflow
	}
	if !m.isUnique() {
		return api.ErrNotUnique
	}
	return m.reserve(n)
}

// reserve grows capacity after uniqueness has been established.
func (m *SliceMut[T]) reserve(n int) error {
	if cap(m.data)-len(m.data) >= n {
		return nil
	}
	needed := len(m.data) + n
	if needed < 0 {
		return api.ErrCapacityOverflow
	}
	st := m.state
	if st != nil && st.buf != nil {
		gb, ok := st.buf.(api.GrowableBuffer[T])
		if !ok {
			return api.ErrUnsupportedGrowth
		}
		if err := gb.Grow(needed - cap(m.data)); err != nil {
			return err
		}
		mv := gb.MutView()
		grown := mv[:cap(mv)]
		st.full = grown
		m.full = grown
		m.data = grown[m.off : m.off+len(m.data)]
		return nil
	}
	full := make([]T, len(m.data), growCapacity(cap(m.data), needed))
	copy(full, m.data)
	m.data = full
	m.full = full[:cap(full)]
	m.off = 0
	if st != nil {
		// Unique, so no other handle observes the storage swap.
		st.full = m.full
	}
	return nil
}

// growCapacity doubles the current capacity, bounded below by minimum. The
// exact growth curve is not part of the contract.
func growCapacity(cur, minimum int) int {
	next := cur * 2
	if next < minimum {
		next = minimum
	}
	return next
}

// TryReclaim makes n items of spare capacity available without growing the
// allocation, sliding the content back over the advanced-past front region
// when the handle is unique. Returns false when n items cannot be made
// available this way.
func (m *SliceMut[T]) TryReclaim(n int) bool {
	if cap(m.data)-len(m.data) >= n {
		return true
	}
	if m.off == 0 {
		return false
	}
	if m.off+cap(m.data)-len(m.data) < n {
		return false
	}
	if !m.isUnique() {
		return false
	}
	end := m.off + cap(m.data)
	copy(m.full[:len(m.data)], m.data)
	m.data = m.full[0:len(m.data):end]
	m.off = 0
	return true
}

// Truncate shortens the logical length to n. Panics when the allocation is
// shared; a no-op when n >= Len.
func (m *SliceMut[T]) Truncate(n int) {
	if err := m.TryTruncate(n); err != nil {
		panic(err)
	}
}

// TryTruncate is the fallible form of Truncate.
func (m *SliceMut[T]) TryTruncate(n int) error {
	if n < 0 || n >= len(m.data) {
		return nil
	}
	if !m.isUnique() {
		return api.ErrNotUnique
	}
	m.data = m.data[:n]
	return nil
}

// Advance moves the window start forward by n items, giving up the
// passed-over region (recoverable later via TryReclaim). Panics if n > Len.
func (m *SliceMut[T]) Advance(n int) {
	if err := api.CheckRange(n, n, len(m.data)); err != nil {
		panic(err)
	}
	m.data = m.data[n:]
	m.off += n
}

// SetLen sets the logical length to n, which must not exceed Cap. Items
// between the old and new length are zero-valued (Go storage is always
// initialized), so no uninitialized memory is ever exposed. Used to claim
// items written directly through the spare window of MutItems.
func (m *SliceMut[T]) SetLen(n int) {
	if n < 0 || n > cap(m.data) {
		panic(&api.BoundsError{Start: n, End: n, Len: cap(m.data)})
	}
	m.data = m.data[:n]
}

// share installs the lazily deferred header, so the allocation can be
// referenced by more than one handle.
func (m *SliceMut[T]) share() {
	if m.state != nil {
		return
	}
	if m.full == nil {
		m.full = m.data[:cap(m.data)]
	}
	m.state = newStateOwned(m.full, nil)
	m.owned = false
}

// SplitTo partitions the handle at i: the returned handle holds [0:i) and
// the receiver keeps [i:Len). The two windows are disjoint, including their
// writable capacity, and share the allocation's single count; both sides
// lose static uniqueness. Panics if i is out of range.
func (m *SliceMut[T]) SplitTo(i int) SliceMut[T] {
	front, err := m.TrySplitTo(i)
	if err != nil {
		panic(err)
	}
	return front
}

// TrySplitTo is the fallible form of SplitTo.
func (m *SliceMut[T]) TrySplitTo(i int) (SliceMut[T], error) {
	if err := api.CheckRange(i, i, len(m.data)); err != nil {
		return SliceMut[T]{}, err
	}
	m.share()
	m.state.acquire()
	front := SliceMut[T]{data: m.data[0:i:i], state: m.state, full: m.full, off: m.off}
	m.data = m.data[i:]
	m.off += i
	m.unique = false
	return front, nil
}

// SplitOff partitions the handle at i: the returned handle holds [i:Len)
// and the receiver keeps [0:i). Panics if i is out of range.
func (m *SliceMut[T]) SplitOff(i int) SliceMut[T] {
	back, err := m.TrySplitOff(i)
	if err != nil {
		panic(err)
	}
	return back
}

// TrySplitOff is the fallible form of SplitOff.
func (m *SliceMut[T]) TrySplitOff(i int) (SliceMut[T], error) {
	if err := api.CheckRange(i, i, len(m.data)); err != nil {
		return SliceMut[T]{}, err
	}
	m.share()
	m.state.acquire()
	back := SliceMut[T]{data: m.data[i:], state: m.state, full: m.full, off: m.off + i}
	m.data = m.data[0:i:i]
	m.unique = false
	return back, nil
}

// Unsplit reabsorbs other when it is the contiguous continuation of the
// receiver over the same allocation, releasing other's reference. Returns
// false, leaving both handles untouched, when they are not contiguous
// siblings.
func (m *SliceMut[T]) Unsplit(other *SliceMut[T]) bool {
	if m.state == nil || other.state != m.state {
		return false
	}
	if other.off != m.off+len(m.data) {
		return false
	}
	st := m.state
	n := len(m.data) + len(other.data)
	end := other.off + cap(other.data)
	m.data = m.full[m.off : m.off+n : end]
	*other = SliceMut[T]{}
	// The receiver still holds a reference, so this cannot reach zero.
	st.release()
	return true
}

// Freeze consumes the handle, producing an immutable view over the same
// allocation with no copy. Writable capacity beyond the logical length
// becomes unreachable through the immutable type.
func (m *SliceMut[T]) Freeze() Slice[T] {
	out := Slice[T]{
		data:  m.data[:len(m.data):len(m.data)],
		state: m.state,
		owned: m.state == nil && m.owned,
	}
	*m = SliceMut[T]{}
	return out
}

// Release drops this handle's reference; see Slice.Release.
func (m *SliceMut[T]) Release() {
	st := m.state
	*m = SliceMut[T]{}
	if st != nil {
		st.release()
	}
}

// MetadataMut retrieves the allocation's attached metadata as type M; see
// Metadata.
func MetadataMut[M any, T any](m *SliceMut[T]) (M, bool) {
	var zero M
	if m.state == nil {
		return zero, false
	}
	v, ok := m.state.metadata().(M)
	if !ok {
		return zero, false
	}
	return v, true
}

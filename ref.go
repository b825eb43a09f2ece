// File: ref.go
// Author: wyfo
//
// Ref: the ephemeral borrowed view.
//
// License: Apache-2.0

package arcslice

import "github.com/wyfo/arc-slice/api"

// Ref is a borrowed view into an immutable handle's content. Deriving one
// costs no allocation and no atomic operation: it never holds a reference
// of its own, and is valid only while the originating handle is live.
type Ref[T any] struct {
	data []T
	src  *Slice[T]
}

// GetRef borrows the half-open range [start:end) of the view. Panics on an
// invalid range.
func (s *Slice[T]) GetRef(start, end int) Ref[T] {
	r, err := s.TryGetRef(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// TryGetRef is the fallible form of GetRef.
func (s *Slice[T]) TryGetRef(start, end int) (Ref[T], error) {
	if err := api.CheckRange(start, end, len(s.data)); err != nil {
		return Ref[T]{}, err
	}
	return Ref[T]{data: s.data[start:end], src: s}, nil
}

// Items returns the borrowed window. Callers must not mutate it.
func (r Ref[T]) Items() []T { return r.data }

// Len returns the borrowed window length.
func (r Ref[T]) Len() int { return len(r.data) }

// CloneArc promotes the borrow to an owned handle over the same range,
// incrementing the count exactly once. The bounds check already performed
// when the borrow was derived is not repeated.
func (r Ref[T]) CloneArc() Slice[T] {
	s := r.src.Clone()
	s.data = r.data
	return s
}

// File: layout.go
// Author: wyfo
//
// Physical layout variants for slice handles.
//
// License: Apache-2.0

package arcslice

// Layout fixes how a handle binds to its backing allocation. The four
// variants form a closed set and are losslessly interconvertible; a
// conversion allocates a shared header only when the source representation
// had none and the target requires one.
//
// Hot-path operations (Items, Subslice, SplitTo, SplitOff) never branch on
// the layout: the view window is materialized in the handle itself, and
// layout variation is confined to construction, clone promotion, and
// teardown.
type Layout struct {
	name string

	// eagerHeader allocates the shared header at construction, so cloning
	// never allocates. When false, handles over owned storage defer the
	// header to the first clone.
	eagerHeader bool

	// keepCapacity preserves spare capacity through layout conversions,
	// keeping storage reusable by IntoItems and TryIntoMut.
	keepCapacity bool
}

// The layout variants.
//
//   - Optimized: header allocated eagerly, cloning never allocates; empty
//     and static handles exist without any allocation.
//   - BoxedSlice: handles over owned storage start without a header; the
//     first clone allocates it lazily.
//   - Vector: like Optimized, but spare capacity survives conversions, so
//     unique handles can hand their storage back without reallocation.
//   - Raw: for buffers that are already independently reference-counted
//     through a single pointer (api.SharedBuffer); cloning never allocates
//     and the count lives in the buffer itself. Owned storage constructed
//     under Raw degrades to the Vector representation.
var (
	Optimized  = Layout{name: "optimized", eagerHeader: true}
	BoxedSlice = Layout{name: "boxed-slice"}
	Vector     = Layout{name: "vector", eagerHeader: true, keepCapacity: true}
	Raw        = Layout{name: "raw", eagerHeader: true, keepCapacity: true}
)

// String returns the layout name.
func (l Layout) String() string { return l.name }

// Package arcslice provides generic, zero-copy, reference-counted slice
// handles for passing contiguous memory between owners without copying.
//
// Author: wyfo
//
// A Slice is an immutable shared view over a single allocation: clones,
// subslices, and splits all reference the same storage through one atomic
// count, and teardown runs exactly once when the last reference is
// released. A SliceMut is the uniqueness-aware mutable counterpart: it
// mutates in place only while it is provably the sole handle over its
// allocation, and never falls back to a silent copy. A Ref is an ephemeral
// borrowed view costing no reference-count traffic.
//
// Storage may be internally managed, or any caller type satisfying the
// capability interfaces in the api package (mmap regions, shared memory,
// pooled slabs), optionally carrying side-channel metadata.
//
// License: Apache-2.0
package arcslice

// File: internal/refcount/policy_abort.go
// Author: wyfo
//
// Default overflow policy: abort on reference-count overflow.
//
// No safe recovery exists once the counter range is exhausted, so overflow
// is never surfaced as an error. The alternate saturating policy is selected
// with the arcslice_refcount_saturate build tag.
//
// License: Apache-2.0

//go:build !arcslice_refcount_saturate

package refcount

// maxCount leaves headroom so a racing burst of increments past the limit
// still panics before the counter can wrap.
const maxCount = 1 << 62

// Acquire adds one reference. Panics on counter overflow.
func (c *Count) Acquire() {
	if c.n.Add(1) > maxCount {
		panic("arcslice: reference count overflow")
	}
}

// Release drops one reference and reports whether it was the last, in which
// case the caller must run teardown, exactly once.
func (c *Count) Release() bool {
	return c.n.Add(-1) == 0
}

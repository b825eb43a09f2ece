// File: internal/refcount/policy_saturate.go
// Author: wyfo
//
// Saturating overflow policy, selected with the arcslice_refcount_saturate
// build tag. On overflow the counter pins at its maximum and the allocation
// is never freed again: a deliberate leak, for deployments where aborting
// the process is unacceptable.
//
// License: Apache-2.0

//go:build arcslice_refcount_saturate

package refcount

const maxCount = 1 << 62

// Acquire adds one reference, pinning the counter at maxCount on overflow.
func (c *Count) Acquire() {
	if c.n.Add(1) > maxCount {
		c.n.Store(maxCount)
	}
}

// Release drops one reference and reports whether it was the last. A
// saturated counter never decrements, so its allocation leaks by design.
func (c *Count) Release() bool {
	for {
		v := c.n.Load()
		if v >= maxCount {
			return false
		}
		if c.n.CompareAndSwap(v, v-1) {
			return v == 1
		}
	}
}

// File: internal/refcount/refcount.go
// Author: wyfo
//
// Atomic reference count shared by all handles over one allocation.
//
// Go atomics are sequentially consistent, which is strictly stronger than
// the minimum this algorithm needs: increments are pure bookkeeping,
// decrements release prior writes, and the decrement that observes zero is
// synchronized-after every other goroutine's last access through any clone,
// so teardown may run immediately on the releasing goroutine.
//
// License: Apache-2.0

package refcount

import "sync/atomic"

// Count is an atomic reference count. The zero value holds zero references;
// call Reset before first use.
type Count struct {
	n atomic.Int64
}

// Reset sets the count to refs without synchronization. Only valid while
// the owning allocation is not yet published to other goroutines.
func (c *Count) Reset(refs int64) {
	c.n.Store(refs)
}

// Load returns the current count. Intended for stats and tests; a non-one
// result is stale by the time the caller observes it.
func (c *Count) Load() int64 {
	return c.n.Load()
}

// IsUnique reports whether exactly one reference is live, with ordering
// sufficient to authorize in-place mutation: once true is returned, no other
// goroutine can hold a path to this allocation, so no concurrent increment
// can be in flight.
func (c *Count) IsUnique() bool {
	uniqueChecks.Add(1)
	return c.n.Load() == 1
}

// uniqueChecks counts dynamic uniqueness checks, letting tests verify that
// statically-unique handles never reach the atomic read.
var uniqueChecks atomic.Uint64

// UniqueChecks returns the total number of dynamic uniqueness checks
// performed since process start.
func UniqueChecks() uint64 {
	return uniqueChecks.Load()
}

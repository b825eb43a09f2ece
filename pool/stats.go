// File: pool/stats.go
// Author: wyfo
//
// Resource accounting counters for observability.
//
// License: Apache-2.0

package pool

import "sync/atomic"

// Stats aggregates buffer allocation and reuse counters.
type Stats struct {
	TotalAlloc int64 // buffers newly allocated
	TotalReuse int64 // buffers served from a free list
	TotalFree  int64 // buffers whose count reached zero
	InUse      int64 // live references to pool storage
}

type statCounters struct {
	totalAlloc atomic.Int64
	totalReuse atomic.Int64
	totalFree  atomic.Int64
	inUse      atomic.Int64
}

func (c *statCounters) alloc() {
	c.totalAlloc.Add(1)
	c.inUse.Add(1)
}

func (c *statCounters) reuse() {
	c.totalReuse.Add(1)
	c.inUse.Add(1)
}

func (c *statCounters) free() {
	c.totalFree.Add(1)
	c.inUse.Add(-1)
}

func (c *statCounters) snapshot() Stats {
	return Stats{
		TotalAlloc: c.totalAlloc.Load(),
		TotalReuse: c.totalReuse.Load(),
		TotalFree:  c.totalFree.Load(),
		InUse:      c.inUse.Load(),
	}
}

// File: pool/pool.go
// Package pool implements size-classed pooling of self-refcounted byte
// buffers, the raw-layout backing for arc-slice handles.
// Author: wyfo
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/wyfo/arc-slice/internal/refcount"
)

// Predefined (power-of-two) buffer size classes (bytes).
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	2 * 1024,        // 2K
	4 * 1024,        // 4K
	8 * 1024,        // 8K
	16 * 1024,       // 16K
	32 * 1024,       // 32K
	64 * 1024,       // 64K
	128 * 1024,      // 128K
	256 * 1024,      // 256K
	512 * 1024,      // 512K
	1 * 1024 * 1024, // 1M
}

// maxFreePerClass bounds each class free list; buffers recycled beyond it
// are dropped to the garbage collector.
const maxFreePerClass = 4096

// Pool manages one free list per size class. Safe for concurrent use.
type Pool struct {
	classes []*slab
	stats   statCounters
}

// New returns a Pool with an empty free list per size class.
func New() *Pool {
	p := &Pool{classes: make([]*slab, len(sizeClasses))}
	for i, size := range sizeClasses {
		p.classes[i] = &slab{size: size, free: queue.New(), pool: p}
	}
	return p
}

// Get returns a buffer with zero initialized length and capacity of at
// least size bytes, holding one reference. Requests above the largest
// class are served by a fresh unpooled buffer.
func (p *Pool) Get(size int) *Buffer {
	for _, s := range p.classes {
		if size <= s.size {
			return s.get()
		}
	}
	p.stats.alloc()
	b := &Buffer{data: make([]byte, 0, size), pool: p}
	b.refs.Reset(1)
	return b
}

// Stats returns a snapshot of allocation counters.
func (p *Pool) Stats() Stats {
	return p.stats.snapshot()
}

// slab is the free list of one size class.
type slab struct {
	size int
	mu   sync.Mutex
	free *queue.Queue // FIFO of *Buffer
	pool *Pool
}

func (s *slab) get() *Buffer {
	s.mu.Lock()
	if s.free.Length() > 0 {
		b := s.free.Remove().(*Buffer)
		s.mu.Unlock()
		s.pool.stats.reuse()
		b.data = b.data[:0]
		b.refs.Reset(1)
		return b
	}
	s.mu.Unlock()
	s.pool.stats.alloc()
	b := &Buffer{data: make([]byte, 0, s.size), slab: s, pool: s.pool}
	b.refs.Reset(1)
	return b
}

func (s *slab) put(b *Buffer) {
	s.mu.Lock()
	if s.free.Length() < maxFreePerClass {
		s.free.Add(b)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	// Free list full: let the GC take it.
}

// Buffer is a pooled byte buffer carrying its own reference count, so
// arc-slice handles can wrap it under the raw layout with zero additional
// state (arcslice.FromShared). It also satisfies api.MutableBuffer[byte]
// for header-counted wrapping. A pooled buffer cannot grow: its capacity is
// fixed by its size class.
type Buffer struct {
	data []byte
	refs refcount.Count
	slab *slab
	pool *Pool
}

// View returns the initialized contents.
func (b *Buffer) View() []byte { return b.data }

// MutView returns the writable window: len is the initialized length, cap
// the class capacity.
func (b *Buffer) MutView() []byte { return b.data }

// SetLen marks the first n bytes as initialized, for direct writes into
// the spare capacity of MutView.
func (b *Buffer) SetLen(n int) { b.data = b.data[:n] }

// Retain adds one reference.
func (b *Buffer) Retain() { b.refs.Acquire() }

// Release drops one reference, recycling the buffer into its class free
// list when it was the last. Reports whether it was the last.
func (b *Buffer) Release() bool {
	if !b.refs.Release() {
		return false
	}
	b.Close()
	return true
}

// Unique reports whether exactly one reference is live.
func (b *Buffer) Unique() bool { return b.refs.IsUnique() }

// Close recycles the buffer. Called directly only through header-counted
// teardown; self-refcounted users go through Release.
func (b *Buffer) Close() {
	b.pool.stats.free()
	if b.slab != nil {
		b.slab.put(b)
	}
}

// Metadata exposes the buffer's pool provenance to handle metadata lookup.
func (b *Buffer) Metadata() any {
	return Info{ClassSize: cap(b.data), Pooled: b.slab != nil}
}

// Info is the metadata value attached to pooled buffers.
type Info struct {
	ClassSize int
	Pooled    bool
}

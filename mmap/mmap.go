// File: mmap/mmap.go
// Package mmap exposes memory-mapped files as arc-slice buffers.
// Author: wyfo
// License: Apache-2.0
//
// A mapped file is externally owned memory: wrapping it in a handle copies
// nothing, and the region is unmapped exactly once, when the last handle
// over it is released. The mapping's provenance is exposed as handle
// metadata.

package mmap

// Info is the metadata value attached to mapped buffers.
type Info struct {
	Path string
	Size int64
}

// File: mmap/mmap_stub.go
// Author: wyfo
//
// Stub for platforms without mmap support.
//
// License: Apache-2.0

//go:build !linux

package mmap

import "github.com/wyfo/arc-slice/api"

// Buffer is unavailable on this platform.
type Buffer struct {
	info Info
}

// Open always fails with api.ErrNotSupported.
func Open(path string) (*Buffer, error) {
	return nil, api.ErrNotSupported
}

// View returns an empty view.
func (b *Buffer) View() []byte { return nil }

// Close is a no-op.
func (b *Buffer) Close() {}

// Metadata returns the mapping provenance as an Info value.
func (b *Buffer) Metadata() any { return b.info }

// File: mmap/mmap_linux.go
// Author: wyfo
//
// Linux mmap-backed read-only buffer.
//
// License: Apache-2.0

//go:build linux

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Buffer is a read-only buffer over a private file mapping. It satisfies
// api.Buffer[byte] and api.MetadataProvider.
type Buffer struct {
	data []byte
	info Info
}

// Open maps the file at path read-only.
func Open(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	info := Info{Path: path, Size: st.Size()}
	if st.Size() == 0 {
		// Zero-length mappings are invalid; an empty view needs none.
		return &Buffer{info: info}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &Buffer{data: data, info: info}, nil
}

// View returns the mapped contents.
func (b *Buffer) View() []byte { return b.data }

// Close unmaps the region. Invoked exactly once by handle teardown.
func (b *Buffer) Close() {
	if b.data != nil {
		_ = unix.Munmap(b.data)
		b.data = nil
	}
}

// Metadata returns the mapping provenance as an Info value.
func (b *Buffer) Metadata() any { return b.info }

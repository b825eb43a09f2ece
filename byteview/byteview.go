// File: byteview/byteview.go
// Package byteview reproduces the groupcache ByteView API on top of
// arc-slice handles, as a pure client of their public operations.
// Author: wyfo
// License: Apache-2.0
//
// ByteView keeps the exact method set callers of the original type expect
// (immutable, value-semantics byte window) while subviews share the backing
// allocation instead of copying it.

package byteview

import (
	"errors"
	"io"

	arcslice "github.com/wyfo/arc-slice"
)

// ByteView holds an immutable view of bytes.
type ByteView struct {
	b arcslice.Bytes
}

// Of wraps an existing handle. The view takes over the caller's reference.
func Of(b arcslice.Bytes) ByteView {
	return ByteView{b: b}
}

// FromBytes copies data into a fresh view.
func FromBytes(data []byte) ByteView {
	return ByteView{b: arcslice.FromSlice(data)}
}

// FromString copies s into a fresh view.
func FromString(s string) ByteView {
	return ByteView{b: arcslice.FromString(s)}
}

// Bytes returns the underlying handle, sharing the allocation.
func (v ByteView) Bytes() arcslice.Bytes {
	return v.b.Clone()
}

// Len returns the view's length.
func (v ByteView) Len() int {
	return v.b.Len()
}

// ByteSlice returns a copy of the data as a byte slice.
func (v ByteView) ByteSlice() []byte {
	out := make([]byte, v.b.Len())
	copy(out, v.b.Items())
	return out
}

// String returns the data as a string, making a copy.
func (v ByteView) String() string {
	return arcslice.BytesString(v.b)
}

// At returns the byte at index i.
func (v ByteView) At(i int) byte {
	return v.b.Items()[i]
}

// Slice slices the view between from and to, sharing the allocation.
func (v ByteView) Slice(from, to int) ByteView {
	return ByteView{b: v.b.Subslice(from, to)}
}

// SliceFrom slices the view from the provided index until the end.
func (v ByteView) SliceFrom(from int) ByteView {
	return ByteView{b: v.b.Subslice(from, v.b.Len())}
}

// Copy copies the view into dest and returns the number of bytes copied.
func (v ByteView) Copy(dest []byte) int {
	return copy(dest, v.b.Items())
}

// Equal reports whether the bytes in the view are the same as b2's.
func (v ByteView) Equal(b2 ByteView) bool {
	return arcslice.Equal(v.b, b2.b)
}

// EqualBytes reports whether the bytes in the view are the same as b2.
func (v ByteView) EqualBytes(b2 []byte) bool {
	items := v.b.Items()
	if len(items) != len(b2) {
		return false
	}
	for i := range items {
		if items[i] != b2[i] {
			return false
		}
	}
	return true
}

// EqualString reports whether the bytes in the view are the same as s.
func (v ByteView) EqualString(s string) bool {
	items := v.b.Items()
	if len(items) != len(s) {
		return false
	}
	for i := range items {
		if items[i] != s[i] {
			return false
		}
	}
	return true
}

// ReadAt implements io.ReaderAt on the bytes of the view.
func (v ByteView) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, errors.New("byteview: invalid offset")
	}
	if off >= int64(v.Len()) {
		return 0, io.EOF
	}
	n = copy(p, v.b.Items()[off:])
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}

// WriteTo implements io.WriterTo on the bytes of the view.
func (v ByteView) WriteTo(w io.Writer) (n int64, err error) {
	m, err := w.Write(v.b.Items())
	if err == nil && m < v.Len() {
		err = io.ErrShortWrite
	}
	return int64(m), err
}

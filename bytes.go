// File: bytes.go
// Author: wyfo
//
// Byte-slice conveniences, the most common instantiation.
//
// License: Apache-2.0

package arcslice

// Bytes is an immutable handle over bytes.
type Bytes = Slice[byte]

// BytesMut is a mutable handle over bytes.
type BytesMut = SliceMut[byte]

// FromString copies s into fresh storage. The string conversion is the only
// copy; all derived handles share it.
func FromString(s string) Bytes {
	return FromOwned([]byte(s))
}

// BytesString returns the viewed content as a string, copying it.
func BytesString(b Bytes) string {
	return string(b.Items())
}

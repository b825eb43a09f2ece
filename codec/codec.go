// File: codec/codec.go
// Package codec implements a zero-copy length-prefixed frame codec over
// arc-slice read views, with frame size enforcement.
// Author: wyfo
// License: Apache-2.0
//
// The codec is a pure client of the read-view interface: encoding consumes
// byte spans, decoding partitions a shared view into per-frame handles
// without copying payloads.

package codec

import (
	"encoding/binary"
	"errors"
	"io"

	arcslice "github.com/wyfo/arc-slice"
)

// MaxFramePayload defines the maximum allowed payload size for a single
// frame. This limit protects against excessively large frames that could
// exhaust memory.
const MaxFramePayload = 1 << 20 // 1 MiB

// ErrFrameTooLarge is returned when a frame length exceeds MaxFramePayload.
var ErrFrameTooLarge = errors.New("frame payload exceeds maximum allowed size")

// headerSize is the u32 big-endian length prefix.
const headerSize = 4

// Encoder writes length-prefixed frames to an underlying writer.
type Encoder struct {
	w      io.Writer
	header [headerSize]byte
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes one frame: a big-endian u32 payload length followed by the
// payload bytes. The frame handle is only read, never retained.
func (e *Encoder) Encode(frame arcslice.Bytes) error {
	payload := frame.Items()
	if len(payload) > MaxFramePayload {
		return ErrFrameTooLarge
	}
	binary.BigEndian.PutUint32(e.header[:], uint32(len(payload)))
	if _, err := e.w.Write(e.header[:]); err != nil {
		return err
	}
	_, err := e.w.Write(payload)
	return err
}

// Decoder partitions a shared view into frames. Each decoded frame is a
// handle over the source allocation; no payload bytes are copied.
type Decoder struct {
	src arcslice.Bytes
}

// NewDecoder returns a Decoder consuming src. Remaining references are
// dropped by Close or by decoding to exhaustion.
func NewDecoder(src arcslice.Bytes) *Decoder {
	return &Decoder{src: src}
}

// Decode extracts the next frame. It returns io.EOF when the source is
// exhausted, io.ErrUnexpectedEOF on a truncated frame, and
// ErrFrameTooLarge when the length prefix violates MaxFramePayload.
func (d *Decoder) Decode() (arcslice.Bytes, error) {
	raw := d.src.Items()
	if len(raw) == 0 {
		return arcslice.Bytes{}, io.EOF
	}
	if len(raw) < headerSize {
		return arcslice.Bytes{}, io.ErrUnexpectedEOF
	}
	length := int(binary.BigEndian.Uint32(raw))
	if length > MaxFramePayload {
		return arcslice.Bytes{}, ErrFrameTooLarge
	}
	if len(raw) < headerSize+length {
		return arcslice.Bytes{}, io.ErrUnexpectedEOF
	}
	d.src.Advance(headerSize)
	return d.src.SplitTo(length), nil
}

// Remaining returns the undecoded byte count.
func (d *Decoder) Remaining() int { return d.src.Len() }

// Close releases the decoder's reference to the source view. Frames already
// decoded stay valid: they hold their own references.
func (d *Decoder) Close() { d.src.Release() }

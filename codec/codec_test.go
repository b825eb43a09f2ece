// File: codec/codec_test.go
// Author: wyfo
//
// License: Apache-2.0

package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arcslice "github.com/wyfo/arc-slice"
)

func TestRoundTrip(t *testing.T) {
	var wire bytes.Buffer
	enc := NewEncoder(&wire)

	frames := []string{"first", "", "third frame with more payload"}
	for _, f := range frames {
		require.NoError(t, enc.Encode(arcslice.FromString(f)))
	}

	dec := NewDecoder(arcslice.FromOwned(wire.Bytes()))
	for _, want := range frames {
		got, err := dec.Decode()
		require.NoError(t, err)
		assert.Equal(t, want, arcslice.BytesString(got))
		got.Release()
	}
	_, err := dec.Decode()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 0, dec.Remaining())
	dec.Close()
}

func TestDecodeZeroCopy(t *testing.T) {
	var wire bytes.Buffer
	enc := NewEncoder(&wire)
	require.NoError(t, enc.Encode(arcslice.FromString("payload")))

	backing := wire.Bytes()
	dec := NewDecoder(arcslice.FromOwned(backing))
	frame, err := dec.Decode()
	require.NoError(t, err)

	// The frame aliases the source bytes past the header.
	assert.Same(t, &backing[headerSize], &frame.Items()[0])
	frame.Release()
	dec.Close()
}

func TestDecodeTruncated(t *testing.T) {
	var wire bytes.Buffer
	enc := NewEncoder(&wire)
	require.NoError(t, enc.Encode(arcslice.FromString("whole frame")))

	raw := wire.Bytes()
	for _, cut := range []int{1, 3, headerSize, len(raw) - 1} {
		dec := NewDecoder(arcslice.FromSlice(raw[:cut]))
		_, err := dec.Decode()
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "cut at %d", cut)
		dec.Close()
	}
}

func TestFrameTooLarge(t *testing.T) {
	oversize := arcslice.FromOwned(make([]byte, MaxFramePayload+1))
	var wire bytes.Buffer
	assert.ErrorIs(t, NewEncoder(&wire).Encode(oversize), ErrFrameTooLarge)

	// A forged oversize length prefix is rejected before any slicing.
	forged := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00}
	dec := NewDecoder(arcslice.FromSlice(forged))
	_, err := dec.Decode()
	assert.ErrorIs(t, err, ErrFrameTooLarge)
	dec.Close()
}

func TestDecodedFramesOutliveDecoder(t *testing.T) {
	var wire bytes.Buffer
	enc := NewEncoder(&wire)
	require.NoError(t, enc.Encode(arcslice.FromString("survivor")))

	dec := NewDecoder(arcslice.FromOwned(wire.Bytes()))
	frame, err := dec.Decode()
	require.NoError(t, err)
	dec.Close()

	assert.Equal(t, "survivor", arcslice.BytesString(frame))
	frame.Release()
}

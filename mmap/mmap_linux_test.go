// File: mmap/mmap_linux_test.go
// Author: wyfo
//
// License: Apache-2.0

//go:build linux

package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arcslice "github.com/wyfo/arc-slice"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapped.dat")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenAndView(t *testing.T) {
	path := writeTemp(t, "mapped file content")

	b, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "mapped file content", string(b.View()))

	s := arcslice.FromBuffer[byte](b)
	assert.Equal(t, 19, s.Len())

	info, ok := arcslice.Metadata[Info](&s)
	require.True(t, ok)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(19), info.Size)

	s.Release()
	assert.Nil(t, b.View())
}

func TestHandlesOutliveEachOther(t *testing.T) {
	path := writeTemp(t, "0123456789")

	b, err := Open(path)
	require.NoError(t, err)
	s := arcslice.FromBuffer[byte](b)

	tail := s.SplitOff(5)
	s.Release()

	// The mapping survives until the last handle over it goes away.
	assert.Equal(t, "56789", string(tail.Items()))
	tail.Release()
	assert.Nil(t, b.View())
}

func TestOpenEmptyFile(t *testing.T) {
	path := writeTemp(t, "")

	b, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, b.View())

	s := arcslice.FromBuffer[byte](b)
	assert.Equal(t, 0, s.Len())
	s.Release()
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

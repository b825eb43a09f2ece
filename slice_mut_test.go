// File: slice_mut_test.go
// Author: wyfo
//
// License: Apache-2.0

package arcslice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfo/arc-slice/api"
	"github.com/wyfo/arc-slice/internal/refcount"
)

// fixedBuffer is mutable but cannot grow.
type fixedBuffer struct {
	data []byte
}

func (b *fixedBuffer) View() []byte    { return b.data }
func (b *fixedBuffer) MutView() []byte { return b.data }
func (b *fixedBuffer) Close()          {}

// growingBuffer supports fallible growth.
type growingBuffer struct {
	data  []byte
	fail  bool
	grown int
}

func (b *growingBuffer) View() []byte    { return b.data }
func (b *growingBuffer) MutView() []byte { return b.data }
func (b *growingBuffer) Close()          {}
func (b *growingBuffer) Grow(n int) error {
	if b.fail {
		return api.ErrAllocation
	}
	next := make([]byte, len(b.data), cap(b.data)+n)
	copy(next, b.data)
	b.data = next
	b.grown++
	return nil
}

func TestAppendInPlaceWhenUnique(t *testing.T) {
	m := WithCapacity[byte](16)
	m.Append('a', 'b')
	m.AppendSlice([]byte("cd"))
	assert.Equal(t, "abcd", string(m.Items()))
	assert.GreaterOrEqual(t, m.Cap(), 16)
}

func TestStaticUniqueSkipsCheck(t *testing.T) {
	m := WithCapacity[byte](64)
	before := refcount.UniqueChecks()
	for i := 0; i < 100; i++ {
		m.Append(byte(i))
	}
	m.Truncate(10)
	m.Reserve(8)
	assert.Equal(t, before, refcount.UniqueChecks(),
		"statically-unique handle must never reach the atomic check")
}

func TestDynamicCheckPerMutatingCall(t *testing.T) {
	s := FromString("dynamic")
	m, ok := s.TryIntoMut()
	require.True(t, ok)
	m.IntoShared()

	before := refcount.UniqueChecks()
	require.NoError(t, m.TryAppendSlice([]byte("!")))
	require.NoError(t, m.TryAppendSlice([]byte("!")))
	assert.Equal(t, before+2, refcount.UniqueChecks(),
		"uniqueness is re-verified on every mutating call")
}

func TestNotUniqueRejected(t *testing.T) {
	m := WithCapacity[byte](32)
	m.AppendSlice([]byte("abcdef"))
	front := m.SplitTo(3)

	// Both sides share the allocation now; mutation is rejected, never
	// silently copied.
	err := m.TryAppendSlice([]byte("x"))
	assert.ErrorIs(t, err, api.ErrNotUnique)
	err = m.TryReserve(100)
	assert.ErrorIs(t, err, api.ErrNotUnique)
	err = m.TryTruncate(1)
	assert.ErrorIs(t, err, api.ErrNotUnique)
	assert.Equal(t, "def", string(m.Items()), "content untouched by rejected calls")

	// Releasing the sibling restores uniqueness, observed dynamically.
	front.Release()
	require.NoError(t, m.TryAppendSlice([]byte("x")))
	assert.Equal(t, "defx", string(m.Items()))
}

func TestIntoUnique(t *testing.T) {
	m := WithCapacity[byte](8)
	m.AppendSlice([]byte("ab"))
	back := m.SplitOff(1)
	assert.False(t, m.IntoUnique())
	back.Release()
	require.True(t, m.IntoUnique())

	before := refcount.UniqueChecks()
	m.Append('c')
	assert.Equal(t, before, refcount.UniqueChecks(),
		"promotion makes the fast path static again")
}

func TestReserveGrowthMonotonic(t *testing.T) {
	m := NewMut[byte]()
	prev := m.Cap()
	for i := 0; i < 50; i++ {
		m.Reserve(i + 1)
		require.GreaterOrEqual(t, m.Cap(), prev, "capacity never shrinks")
		require.GreaterOrEqual(t, m.Cap()-m.Len(), i+1, "at least the requested minimum")
		prev = m.Cap()
		m.Append(byte(i))
	}
}

func TestReserveUnsupportedGrowth(t *testing.T) {
	b := &fixedBuffer{data: make([]byte, 0, 4)}
	m := MutFromBuffer[byte](b)
	m.AppendSlice([]byte("1234")) // fits in place
	err := m.TryAppendSlice([]byte("5"))
	assert.ErrorIs(t, err, api.ErrUnsupportedGrowth)
}

func TestReserveGrowableBuffer(t *testing.T) {
	b := &growingBuffer{data: make([]byte, 0, 2)}
	m := MutFromBuffer[byte](b)
	m.AppendSlice([]byte("abcdef"))
	assert.Equal(t, "abcdef", string(m.Items()))
	assert.Greater(t, b.grown, 0)

	b.fail = true
	err := m.TryReserve(1 << 20)
	assert.ErrorIs(t, err, api.ErrAllocation)
}

func TestReserveCapacityOverflow(t *testing.T) {
	m := NewMut[byte]()
	assert.ErrorIs(t, m.TryReserve(-1), api.ErrCapacityOverflow)
}

func TestFreezePreservesContent(t *testing.T) {
	m := NewMut[byte]()
	m.AppendSlice([]byte("hello"))
	m.Append(' ')
	m.AppendSlice([]byte("world!"))
	m.Truncate(11)
	want := string(m.Items())

	s := m.Freeze()
	assert.Equal(t, want, BytesString(s))
	assert.Equal(t, 0, m.Len(), "freeze consumes the mutable handle")
	assert.Equal(t, s.Len(), cap(s.data), "spare capacity is unreachable after freeze")
}

func TestFreezeThenShare(t *testing.T) {
	m := WithCapacity[byte](8)
	m.AppendSlice([]byte("shared"))
	s := m.Freeze()
	c := s.Clone()
	assert.True(t, Equal(s, c))

	_, ok := s.TryIntoMut()
	assert.False(t, ok, "a clone forces the uniqueness check to fail")
	c.Release()

	m2, ok := s.TryIntoMut()
	require.True(t, ok)
	assert.Equal(t, "shared", string(m2.Items()))
}

func TestSplitDisjointWindows(t *testing.T) {
	m := WithCapacity[byte](16)
	m.AppendSlice([]byte("aabb"))
	front := m.SplitTo(2)

	assert.Equal(t, "aa", string(front.Items()))
	assert.Equal(t, "bb", string(m.Items()))
	assert.Equal(t, front.Len(), front.Cap(),
		"front capacity is trimmed at the boundary")

	// Direct writes stay within each side's exclusive window.
	front.MutItems()[0] = 'x'
	m.MutItems()[1] = 'y'
	assert.Equal(t, "xa", string(front.Items()))
	assert.Equal(t, "by", string(m.Items()))
}

func TestUnsplit(t *testing.T) {
	m := WithCapacity[byte](16)
	m.AppendSlice([]byte("abcdef"))
	back := m.SplitOff(2)
	require.Equal(t, "ab", string(m.Items()))
	require.Equal(t, "cdef", string(back.Items()))

	require.True(t, m.Unsplit(&back))
	assert.Equal(t, "abcdef", string(m.Items()))
	assert.Equal(t, 0, back.Len())

	// Having reabsorbed the only sibling, mutation works again.
	require.NoError(t, m.TryAppendSlice([]byte("g")))
	assert.Equal(t, "abcdefg", string(m.Items()))
}

func TestUnsplitRejectsForeign(t *testing.T) {
	a := MutFromOwned([]byte("aa"))
	b := MutFromOwned([]byte("bb"))
	assert.False(t, a.Unsplit(&b))
	assert.Equal(t, "bb", string(b.Items()))
}

func TestTryReclaim(t *testing.T) {
	m := WithCapacity[byte](8)
	m.AppendSlice([]byte("abcdefgh"))
	s := m.Freeze()
	m2, ok := s.TryIntoMut()
	require.True(t, ok)

	m2.Advance(6)
	require.Equal(t, "gh", string(m2.Items()))
	require.True(t, m2.TryReclaim(4), "the advanced-past front region is reusable")
	require.NoError(t, m2.TryAppendSlice([]byte("側")))
	assert.Equal(t, "gh側", string(m2.Items()))
}

func TestSetLen(t *testing.T) {
	m := WithCapacity[byte](4)
	spare := m.MutItems()[:cap(m.MutItems())]
	copy(spare, "wxyz")
	m.SetLen(4)
	assert.Equal(t, "wxyz", string(m.Items()))
	assert.Panics(t, func() { m.SetLen(5) })
	assert.Panics(t, func() { m.SetLen(-1) })
}

func TestMutZeroed(t *testing.T) {
	m := MutZeroed[int](3)
	assert.Equal(t, []int{0, 0, 0}, m.Items())
}

func TestMutMetadata(t *testing.T) {
	type tag struct{ N int }
	b := &fixedBuffer{data: make([]byte, 0, 4)}
	m := MutFromBufferWithMetadata[byte](b, tag{N: 7})
	got, ok := MetadataMut[tag](&m)
	require.True(t, ok)
	assert.Equal(t, 7, got.N)
	_, ok = MetadataMut[string](&m)
	assert.False(t, ok)
}

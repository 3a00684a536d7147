package rowgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixels(g *Generator) []uint8 {
	out := make([]uint8, g.Width())
	for i := range out {
		out[i] = g.Pixel(i)
	}
	return out
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-3, 4}, {4, -1}} {
		g, err := New(dims[0], dims[1], nil)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestInitialRow(t *testing.T) {
	g, err := New(4, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 1}, pixels(g))
	assert.Equal(t, []byte{0x10}, g.Row().bits)

	g, err = New(9, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 0, 0, 1, 1, 1, 1}, pixels(g))
	assert.Equal(t, []byte{0x07, 0x80}, g.Row().bits)
}

func TestSingleColumn(t *testing.T) {
	g, err := New(1, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), g.Pixel(0))

	for i := 0; i < 5; i++ {
		assert.Equal(t, []byte{0x00}, g.NextRow(i))
	}
}

func TestNextRowSwaps(t *testing.T) {
	g, err := New(4, 2, &Sequence{Values: []int{3, 0, 1, 1}})
	require.NoError(t, err)

	assert.Equal(t, []byte{0x80}, g.NextRow(0))
	assert.Equal(t, []uint8{1, 0, 0, 0}, pixels(g))

	// i == j leaves the row untouched
	assert.Equal(t, []byte{0x80}, g.NextRow(1))
}

func TestNextRowIgnoresIndex(t *testing.T) {
	a, err := New(16, 4, &Sequence{Values: []int{2, 13, 5, 9}})
	require.NoError(t, err)
	b, err := New(16, 4, &Sequence{Values: []int{2, 13, 5, 9}})
	require.NoError(t, err)

	assert.Equal(t, a.NextRow(0), b.NextRow(42))
	assert.Equal(t, a.NextRow(1), b.NextRow(-7))
}

func TestNextRowReturnsSharedBuffer(t *testing.T) {
	g, err := New(8, 2, nil)
	require.NoError(t, err)

	first := g.NextRow(0)
	second := g.NextRow(1)
	assert.Same(t, &first[0], &second[0])
}

func TestCountsInvariant(t *testing.T) {
	for _, w := range []int{1, 2, 3, 4, 7, 8, 9, 32, 33, 100} {
		g, err := New(w, 1, NewSeeded(uint64(w)))
		require.NoError(t, err)

		zeros, ones := g.Counts()
		assert.Equal(t, w/2+1, zeros, "width %d", w)
		assert.Equal(t, w-w/2-1, ones, "width %d", w)

		for i := 0; i < 500; i++ {
			row := g.NextRow(i)
			assert.Len(t, row, Stride(w))
		}

		z, o := g.Counts()
		assert.Equal(t, zeros, z, "width %d", w)
		assert.Equal(t, ones, o, "width %d", w)
	}
}

func TestPaddingStaysZero(t *testing.T) {
	g, err := New(11, 1, NewSeeded(7))
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		row := g.NextRow(i)
		assert.Zero(t, row[1]&0x1f)
	}
}

func TestSeededIsDeterministic(t *testing.T) {
	a, err := New(32, 32, NewSeeded(99))
	require.NoError(t, err)
	b, err := New(32, 32, NewSeeded(99))
	require.NoError(t, err)

	for i := 0; i < 32; i++ {
		assert.Equal(t, a.NextRow(i), b.NextRow(i))
	}
}

func TestSequence(t *testing.T) {
	s := &Sequence{Values: []int{5, -1, 2}}
	assert.Equal(t, 1, s.IntN(4))
	assert.Equal(t, 3, s.IntN(4))
	assert.Equal(t, 2, s.IntN(4))
	assert.Equal(t, 1, s.IntN(4))

	assert.Equal(t, 0, (&Sequence{}).IntN(10))
}

func TestGlobalInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := Global{}.IntN(3)
		assert.True(t, v >= 0 && v < 3)
	}
}

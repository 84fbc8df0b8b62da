package lattice_test

import (
	"testing"

	"github.com/katalvlaran/nalign/lattice"
	"github.com/katalvlaran/nalign/moves"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BadShape(t *testing.T) {
	_, err := lattice.New[float64](nil, 0)
	assert.ErrorIs(t, err, lattice.ErrBadShape)

	_, err = lattice.New[float64](lattice.Shape{3, 0}, 0)
	assert.ErrorIs(t, err, lattice.ErrBadShape)
}

func TestNew_TooLarge(t *testing.T) {
	_, err := lattice.New[float64](lattice.Shape{10, 10, 10}, 999)
	assert.ErrorIs(t, err, lattice.ErrTooLarge)

	d, err := lattice.New[float64](lattice.Shape{10, 10, 10}, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, d.Len())
}

func TestShapeOf(t *testing.T) {
	assert.Equal(t, lattice.Shape{3, 1, 5}, lattice.ShapeOf([]int{2, 0, 4}))
}

// TestDense_OffsetRoundTrip checks the strided layout against CoordOf.
func TestDense_OffsetRoundTrip(t *testing.T) {
	d, err := lattice.New[int](lattice.Shape{2, 3, 4}, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Dims())
	assert.Equal(t, 12, d.Stride(0))
	assert.Equal(t, 4, d.Stride(1))
	assert.Equal(t, 1, d.Stride(2))

	for off := 0; off < d.Len(); off++ {
		c, err := d.CoordOf(off)
		require.NoError(t, err)
		back, err := d.Offset(c)
		require.NoError(t, err)
		assert.Equal(t, off, back)
	}

	_, err = d.CoordOf(d.Len())
	assert.ErrorIs(t, err, lattice.ErrOutOfRange)
}

func TestDense_AtSet(t *testing.T) {
	d, err := lattice.New[float64](lattice.Shape{3, 3}, 0)
	require.NoError(t, err)

	require.NoError(t, d.Set(lattice.Coord{1, 2}, 7.5))
	v, err := d.At(lattice.Coord{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)
	assert.Equal(t, 7.5, d.AtOffset(5))

	d.SetOffset(0, -1)
	v, err = d.At(d.Origin())
	require.NoError(t, err)
	assert.Equal(t, -1.0, v)

	assert.ErrorIs(t, d.Set(lattice.Coord{3, 0}, 1), lattice.ErrOutOfRange)
	_, err = d.At(lattice.Coord{0, -1})
	assert.ErrorIs(t, err, lattice.ErrOutOfRange)
	_, err = d.At(lattice.Coord{0})
	assert.ErrorIs(t, err, lattice.ErrOutOfRange)
}

func TestDense_OriginCorner(t *testing.T) {
	d, err := lattice.New[float64](lattice.Shape{3, 1, 4}, 0)
	require.NoError(t, err)
	assert.Equal(t, lattice.Coord{0, 0, 0}, d.Origin())
	assert.Equal(t, lattice.Coord{2, 0, 3}, d.Corner())

	off, err := d.Offset(d.Corner())
	require.NoError(t, err)
	assert.Equal(t, d.Len()-1, off)
}

// TestDense_NextVisitsOffsetsInOrder ensures Next enumerates cells by offset.
func TestDense_NextVisitsOffsetsInOrder(t *testing.T) {
	d, err := lattice.New[float64](lattice.Shape{2, 3, 2}, 0)
	require.NoError(t, err)

	c := d.Origin()
	seen := 1
	for d.Next(c) {
		off, err := d.Offset(c)
		require.NoError(t, err)
		assert.Equal(t, seen, off)
		seen++
	}
	assert.Equal(t, d.Len(), seen)
	assert.Equal(t, d.Origin(), c, "Next wraps back to the origin")
}

func TestDense_Delta(t *testing.T) {
	d, err := lattice.New[float64](lattice.Shape{3, 4, 5}, 0)
	require.NoError(t, err)

	m := moves.FromVector([]int{-1, 0, -1})
	from := lattice.Coord{2, 3, 4}
	off, err := d.Offset(from)
	require.NoError(t, err)

	pred, err := d.Offset(lattice.Coord{1, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, pred, off+d.Delta(m))
}

func TestStep(t *testing.T) {
	var zero lattice.Step
	assert.Equal(t, lattice.StepUnset, zero.Kind())
	assert.False(t, zero.IsStart())

	s := lattice.StartStep()
	assert.True(t, s.IsStart())
	_, ok := s.Move()
	assert.False(t, ok)

	m := moves.FromVector([]int{0, -1})
	s = lattice.MoveStep(m)
	assert.Equal(t, lattice.StepMove, s.Kind())
	got, ok := s.Move()
	assert.True(t, ok)
	assert.Equal(t, m, got)
}

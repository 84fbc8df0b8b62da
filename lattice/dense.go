package lattice

import "github.com/katalvlaran/nalign/moves"

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxOffset = "Offset"
)

// Dense is an N-dimensional row-major array.
//   - shape holds the extent per axis.
//   - strides[k] is the flat distance between neighbours along axis k.
//   - data is the flat buffer, len == ∏ shape.
type Dense[T any] struct {
	shape   Shape
	strides []int
	data    []T
}

// New allocates a zero-filled lattice of the given shape.
//
// Errors:
//   - ErrBadShape if shape is empty or has a non-positive extent.
//   - ErrTooLarge if the cell count exceeds maxCells (<= 0 means unbounded).
//
// Complexity: O(∏ shape) time and memory.
func New[T any](shape Shape, maxCells int) (*Dense[T], error) {
	n, err := Cells(shape, maxCells)
	if err != nil {
		return nil, err
	}

	own := append(Shape(nil), shape...)
	strides := make([]int, len(own))
	stride := 1
	for k := len(own) - 1; k >= 0; k-- {
		strides[k] = stride
		stride *= own[k]
	}

	return &Dense[T]{shape: own, strides: strides, data: make([]T, n)}, nil
}

// Dims returns the number of axes.
func (d *Dense[T]) Dims() int { return len(d.shape) }

// Len returns the number of cells.
func (d *Dense[T]) Len() int { return len(d.data) }

// Shape returns a copy of the extents.
func (d *Dense[T]) Shape() Shape { return append(Shape(nil), d.shape...) }

// Stride returns the flat distance between neighbours along axis k.
func (d *Dense[T]) Stride(k int) int { return d.strides[k] }

// Origin returns the all-zero coordinate.
func (d *Dense[T]) Origin() Coord { return make(Coord, len(d.shape)) }

// Corner returns the coordinate of the last cell (extent-1 on every axis).
func (d *Dense[T]) Corner() Coord {
	c := make(Coord, len(d.shape))
	for k, e := range d.shape {
		c[k] = e - 1
	}

	return c
}

// Offset computes the flat index of c or returns ErrOutOfRange.
// Complexity: O(N).
func (d *Dense[T]) Offset(c Coord) (int, error) {
	if len(c) != len(d.shape) {
		return 0, denseErrorf(ctxOffset, c, ErrOutOfRange)
	}
	off := 0
	for k, v := range c {
		if v < 0 || v >= d.shape[k] {
			return 0, denseErrorf(ctxOffset, c, ErrOutOfRange)
		}
		off += v * d.strides[k]
	}

	return off, nil
}

// CoordOf is the inverse of Offset. It returns ErrOutOfRange for offsets
// outside [0, Len()).
func (d *Dense[T]) CoordOf(off int) (Coord, error) {
	if off < 0 || off >= len(d.data) {
		return nil, ErrOutOfRange
	}
	c := make(Coord, len(d.shape))
	for k, s := range d.strides {
		c[k] = off / s
		off %= s
	}

	return c, nil
}

// At returns the value stored at c.
func (d *Dense[T]) At(c Coord) (T, error) {
	off, err := d.Offset(c)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, c, ErrOutOfRange)
	}

	return d.data[off], nil
}

// Set stores v at c.
func (d *Dense[T]) Set(c Coord, v T) error {
	off, err := d.Offset(c)
	if err != nil {
		return denseErrorf(ctxSet, c, ErrOutOfRange)
	}
	d.data[off] = v

	return nil
}

// AtOffset is the unchecked fast path of At.
func (d *Dense[T]) AtOffset(off int) T { return d.data[off] }

// SetOffset is the unchecked fast path of Set.
func (d *Dense[T]) SetOffset(off int, v T) { d.data[off] = v }

// Delta returns the (negative) flat offset change of taking move m.
// The predecessor of the cell at off is off + Delta(m), provided every axis
// advanced by m is positive at that cell.
func (d *Dense[T]) Delta(m moves.Move) int {
	delta := 0
	for k, s := range d.strides {
		if m.Advances(k) {
			delta -= s
		}
	}

	return delta
}

// Next advances c in place to the coordinate of the next offset (last axis
// fastest). It returns false once c has wrapped past the last cell, leaving
// c at the origin.
func (d *Dense[T]) Next(c Coord) bool {
	for k := len(c) - 1; k >= 0; k-- {
		c[k]++
		if c[k] < d.shape[k] {
			return true
		}
		c[k] = 0
	}

	return false
}

package lattice

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates an empty shape or a non-positive extent.
	ErrBadShape = errors.New("lattice: invalid shape")

	// ErrOutOfRange indicates a coordinate or offset outside the lattice.
	ErrOutOfRange = errors.New("lattice: index out of range")

	// ErrTooLarge indicates that the cell count overflows int or exceeds the
	// caller's cap.
	ErrTooLarge = errors.New("lattice: too many cells")
)

// denseErrorf wraps err with the method tag and the offending coordinate.
func denseErrorf(method string, c Coord, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, []int(c), err)
}

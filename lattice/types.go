package lattice

import (
	"math"

	"github.com/katalvlaran/nalign/moves"
)

// Coord is a lattice coordinate, one component per sequence.
type Coord []int

// Shape lists the extent of every axis (sequence length + 1).
type Shape []int

// ShapeOf returns the lattice shape for sequences of the given lengths.
func ShapeOf(lengths []int) Shape {
	s := make(Shape, len(lengths))
	for k, l := range lengths {
		s[k] = l + 1
	}

	return s
}

// Cells returns ∏ extent, or ErrTooLarge if the product exceeds limit.
// A limit <= 0 means "bounded only by int".
func Cells(s Shape, limit int) (int, error) {
	if len(s) == 0 {
		return 0, ErrBadShape
	}
	if limit <= 0 {
		limit = math.MaxInt
	}
	n := 1
	for _, e := range s {
		if e <= 0 {
			return 0, ErrBadShape
		}
		if n > limit/e {
			return 0, ErrTooLarge
		}
		n *= e
	}

	return n, nil
}

// StepKind tags a backtrack entry.
type StepKind uint8

const (
	// StepUnset is the zero value: the cell has not been filled.
	StepUnset StepKind = iota

	// StepStart marks a cell without predecessor.
	StepStart

	// StepMove marks a cell whose predecessor is cell + move.
	StepMove
)

// Step is one backtrack entry: either a start marker or a move towards the
// predecessor cell.
type Step struct {
	kind StepKind
	move moves.Move
}

// StartStep returns the start marker.
func StartStep() Step { return Step{kind: StepStart} }

// MoveStep returns a step pointing at cell + m.
func MoveStep(m moves.Move) Step { return Step{kind: StepMove, move: m} }

// Kind returns the entry tag.
func (s Step) Kind() StepKind { return s.kind }

// IsStart reports whether s is a start marker.
func (s Step) IsStart() bool { return s.kind == StepStart }

// Move returns the stored move and true, or 0 and false for non-move entries.
func (s Step) Move() (moves.Move, bool) {
	if s.kind != StepMove {
		return 0, false
	}

	return s.move, true
}

package pairwise

import "errors"

var (
	// ErrGapInInput indicates an input containing the gap symbol.
	ErrGapInInput = errors.New("pairwise: input contains the gap symbol")
)

// DefaultGapSymbol pads aligned sequences.
const DefaultGapSymbol byte = '.'

// Alignment is a pairwise alignment.
//
// Fields:
//   - A, B       – aligned rows of equal length.
//   - Score      – alignment score.
//   - StartA/B   – residues of a / b preceding the aligned region.
//   - EndA/B     – residues of a / b up to the end of the aligned region.
type Alignment struct {
	A, B           string
	Score          float64
	StartA, StartB int
	EndA, EndB     int
}

// direction is a backtrack entry of the 2-D grid.
type direction uint8

const (
	dirStart direction = iota
	dirLeft            // gap in a: only b advances
	dirUp              // gap in b: only a advances
	dirDiag            // both advance
)

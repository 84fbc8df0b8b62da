package msa

import (
	"fmt"

	"github.com/katalvlaran/nalign/scoring"
)

// SumOfPairs scores an existing alignment column by column with s.
//
// For every pair (i, j) a column contributes Match when both rows hold a
// residue, GapRight / GapLeft when exactly one row is gapped, and CoGap when
// both are gapped while some other row holds a residue. Columns gapped in
// every row contribute nothing.
//
// A global alignment produced by this package re-scores to its Result.Score.
func SumOfPairs(aligned []string, s scoring.Scheme, gap byte) (float64, error) {
	if len(aligned) == 0 {
		return 0, ErrNoSequences
	}
	width := len(aligned[0])
	for k, row := range aligned {
		if len(row) != width {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedAlignment, k, len(row), width)
		}
	}

	total := 0.0
	for col := 0; col < width; col++ {
		occupied := false
		for _, row := range aligned {
			if row[col] != gap {
				occupied = true
				break
			}
		}
		if !occupied {
			continue
		}
		for i := 0; i < len(aligned); i++ {
			for j := i + 1; j < len(aligned); j++ {
				x, y := aligned[i][col], aligned[j][col]
				total += s.PairScore(columnAction(x != gap, y != gap), x, y)
			}
		}
	}

	return total, nil
}

// columnAction maps residue presence of a pair to its action.
func columnAction(left, right bool) scoring.Action {
	switch {
	case left && right:
		return scoring.Match
	case left:
		return scoring.GapRight
	case right:
		return scoring.GapLeft
	default:
		return scoring.CoGap
	}
}

package pairwise

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/nalign/scoring"
	"gonum.org/v1/gonum/mat"
)

// NeedlemanWunsch returns the optimal global alignment of a and b.
//
// Algorithm Outline:
//  1. Allocate an (n+1)x(m+1) grid D with D[0][0] = 0.
//  2. For every other cell take the best of
//     left = D[i][j-1] + indel, up = D[i-1][j] + indel,
//     diag = D[i-1][j-1] + match/mismatch(a[i-1], b[j-1]),
//     considering only predecessors inside the grid; the first maximum in
//     that order wins.
//  3. Backtrack from (n, m) to (0, 0).
//
// Errors: scoring.ErrNonFinite for a bad scheme, ErrGapInInput if a or b
// contains DefaultGapSymbol.
func NeedlemanWunsch(a, b string, s scoring.Scheme) (Alignment, error) {
	return align(a, b, s, false)
}

// SmithWaterman returns the optimal local alignment of a and b.
// Cells are floored at 0; a cell whose best candidate is <= 0 starts a new
// alignment. Backtrack begins at the first maximum in row-major order.
func SmithWaterman(a, b string, s scoring.Scheme) (Alignment, error) {
	return align(a, b, s, true)
}

func align(a, b string, s scoring.Scheme, local bool) (Alignment, error) {
	if err := s.Validate(); err != nil {
		return Alignment{}, fmt.Errorf("pairwise: %w", err)
	}
	if strings.IndexByte(a, DefaultGapSymbol) >= 0 || strings.IndexByte(b, DefaultGapSymbol) >= 0 {
		return Alignment{}, ErrGapInInput
	}

	n, m := len(a), len(b)
	dp := mat.NewDense(n+1, m+1, nil)
	dirs := make([]direction, (n+1)*(m+1))
	at := func(i, j int) int { return i*(m+1) + j }

	bestI, bestJ := 0, 0
	for i := 0; i <= n; i++ {
		for j := 0; j <= m; j++ {
			if i == 0 && j == 0 {
				continue // D[0][0] = 0, dirStart
			}
			best := math.Inf(-1)
			dir := dirStart
			if j > 0 {
				if v := dp.At(i, j-1) + s.PairScore(scoring.GapLeft, 0, b[j-1]); v > best {
					best, dir = v, dirLeft
				}
			}
			if i > 0 {
				if v := dp.At(i-1, j) + s.PairScore(scoring.GapRight, a[i-1], 0); v > best {
					best, dir = v, dirUp
				}
			}
			if i > 0 && j > 0 {
				if v := dp.At(i-1, j-1) + s.PairScore(scoring.Match, a[i-1], b[j-1]); v > best {
					best, dir = v, dirDiag
				}
			}
			if local && best <= 0 {
				best, dir = 0, dirStart
			}
			dp.Set(i, j, best)
			dirs[at(i, j)] = dir

			if local && best > dp.At(bestI, bestJ) {
				bestI, bestJ = i, j
			}
		}
	}
	if !local {
		bestI, bestJ = n, m
	}

	// Backtrack
	var ra, rb []byte
	i, j := bestI, bestJ
	for {
		d := dirs[at(i, j)]
		if d == dirStart {
			break
		}
		switch d {
		case dirLeft:
			ra = append(ra, DefaultGapSymbol)
			rb = append(rb, b[j-1])
			j--
		case dirUp:
			ra = append(ra, a[i-1])
			rb = append(rb, DefaultGapSymbol)
			i--
		case dirDiag:
			ra = append(ra, a[i-1])
			rb = append(rb, b[j-1])
			i--
			j--
		}
	}
	reverse(ra)
	reverse(rb)

	return Alignment{
		A:      string(ra),
		B:      string(rb),
		Score:  dp.At(bestI, bestJ),
		StartA: i,
		StartB: j,
		EndA:   bestI,
		EndB:   bestJ,
	}, nil
}

// reverse reverses b in place.
func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}

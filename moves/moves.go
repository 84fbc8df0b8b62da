package moves

import (
	"errors"

	"github.com/katalvlaran/nalign/scoring"
	"gonum.org/v1/gonum/stat/combin"
)

// MaxSequences bounds N. The lattice is exponential in N long before this
// limit matters; it only keeps a Move within its bitmask.
const MaxSequences = 16

var (
	// ErrBadCount indicates n < 1.
	ErrBadCount = errors.New("moves: sequence count must be >= 1")

	// ErrTooMany indicates n > MaxSequences.
	ErrTooMany = errors.New("moves: too many sequences")
)

// Move is a bitmask over sequence indices; bit k set means sequence k
// consumes a residue (vector component -1).
type Move uint32

// Advances reports whether sequence k consumes a residue under m.
func (m Move) Advances(k int) bool {
	return m&(1<<uint(k)) != 0
}

// Vector expands m into its {0,-1} tuple of length n.
func (m Move) Vector(n int) []int {
	v := make([]int, n)
	for k := 0; k < n; k++ {
		if m.Advances(k) {
			v[k] = -1
		}
	}

	return v
}

// FromVector packs a {0,-1} tuple into a Move. Any non-zero component counts
// as -1.
func FromVector(v []int) Move {
	var m Move
	for k, c := range v {
		if c != 0 {
			m |= 1 << uint(k)
		}
	}

	return m
}

// Enumerate returns the 2^n-1 moves for n sequences in the fixed tie-break
// order described in the package documentation.
//
// Errors: ErrBadCount if n < 1, ErrTooMany if n > MaxSequences.
// Complexity: O(n·2^n).
func Enumerate(n int) ([]Move, error) {
	if n < 1 {
		return nil, ErrBadCount
	}
	if n > MaxSequences {
		return nil, ErrTooMany
	}

	lens := make([]int, n)
	for k := range lens {
		lens[k] = 2 // 0 = stay, 1 = advance
	}

	product := combin.Cartesian(lens)
	out := make([]Move, 0, len(product)-1)
	for _, choice := range product {
		var m Move
		for k, c := range choice {
			if c == 1 {
				m |= 1 << uint(k)
			}
		}
		if m == 0 {
			continue
		}
		out = append(out, m)
	}

	return out, nil
}

// Pairs returns the C(n,2) unordered index pairs (i < j).
func Pairs(n int) [][2]int {
	if n < 2 {
		return nil
	}
	combos := combin.Combinations(n, 2)
	out := make([][2]int, len(combos))
	for idx, c := range combos {
		out[idx] = [2]int{c[0], c[1]}
	}

	return out
}

// Decompose returns the pairwise action move m represents for sequences i and j.
// The caller guarantees m != 0; a CoGap therefore always sits in a column where
// some other sequence advances.
func Decompose(m Move, i, j int) scoring.Action {
	ai, aj := m.Advances(i), m.Advances(j)
	switch {
	case ai && aj:
		return scoring.Match
	case ai:
		return scoring.GapRight
	case aj:
		return scoring.GapLeft
	default:
		return scoring.CoGap
	}
}

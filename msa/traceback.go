package msa

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/nalign/lattice"
	"github.com/katalvlaran/nalign/moves"
)

var (
	// ErrLatticeMismatch indicates lattices that do not fit the sequences.
	ErrLatticeMismatch = errors.New("msa: lattices do not match sequences")

	// ErrIncompleteLattice indicates an unfilled backtrack cell on the path.
	ErrIncompleteLattice = errors.New("msa: backtrack lattice is incomplete")
)

// Traceback reconstructs the alignment encoded in l.
//
// Global walks from the corner; Local walks from the first cell (in offset
// order) holding the maximum score. At every step each sequence either
// emits the residue its coordinate consumes or the gap symbol. The walk is
// done when a start marker is read; every move strictly lowers the offset,
// so it takes at most Σ L_k steps. A stored move that is empty or would step
// below zero on some axis yields ErrIncompleteLattice.
func Traceback(l *Lattices, seqs []string, gap byte) (*Result, error) {
	if l == nil || l.Score == nil || l.Backtrack == nil {
		return nil, ErrLatticeMismatch
	}
	if err := checkShape(l, seqs); err != nil {
		return nil, err
	}

	var endOff int
	switch l.Method {
	case Global:
		endOff = l.Score.Len() - 1
	case Local:
		endOff = argmax(l.Score)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, l.Method)
	}

	end, err := l.Score.CoordOf(endOff)
	if err != nil {
		return nil, err
	}

	n := len(seqs)
	total := 0
	for _, v := range end {
		total += v
	}
	rows := make([][]byte, n)
	for k := range rows {
		rows[k] = make([]byte, 0, total)
	}

	cur := append(lattice.Coord(nil), end...)
	off := endOff
	for {
		step := l.Backtrack.AtOffset(off)
		if step.IsStart() {
			break
		}
		m, ok := step.Move()
		if !ok || !admissible(m, cur) {
			return nil, fmt.Errorf("%w: cell %v", ErrIncompleteLattice, []int(cur))
		}
		for k := 0; k < n; k++ {
			if m.Advances(k) {
				cur[k]--
				rows[k] = append(rows[k], seqs[k][cur[k]])
			} else {
				rows[k] = append(rows[k], gap)
			}
		}
		off += l.Backtrack.Delta(m)
	}

	aligned := make([]string, n)
	for k, r := range rows {
		reverse(r)
		aligned[k] = string(r)
	}

	return &Result{
		Aligned: aligned,
		Score:   l.Score.AtOffset(endOff),
		Begin:   cur,
		End:     end,
	}, nil
}

// checkShape verifies that l was built for sequences of these lengths.
func checkShape(l *Lattices, seqs []string) error {
	shape := l.Score.Shape()
	if len(shape) != len(seqs) || !slices.Equal(shape, l.Backtrack.Shape()) {
		return ErrLatticeMismatch
	}
	for k, s := range seqs {
		if shape[k] != len(s)+1 {
			return fmt.Errorf("%w: axis %d has extent %d, sequence length %d", ErrLatticeMismatch, k, shape[k], len(s))
		}
	}

	return nil
}

// admissible reports whether m is a real move whose predecessor of cur stays
// inside the lattice.
func admissible(m moves.Move, cur lattice.Coord) bool {
	if m == 0 || m>>uint(len(cur)) != 0 {
		return false
	}
	for k, v := range cur {
		if m.Advances(k) && v == 0 {
			return false
		}
	}

	return true
}

// argmax returns the first offset holding the maximum value.
func argmax(d *lattice.Dense[float64]) int {
	best, at := d.AtOffset(0), 0
	for off := 1; off < d.Len(); off++ {
		if v := d.AtOffset(off); v > best {
			best, at = v, off
		}
	}

	return at
}

func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}

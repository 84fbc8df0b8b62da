package msa

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/nalign/lattice"
	"github.com/katalvlaran/nalign/moves"
	"github.com/katalvlaran/nalign/scoring"
)

// movePlan is the pairwise decomposition of one move, resolved once per
// invocation. Gap and co-gap pairs do not depend on symbols and are folded
// into fixed; match pairs are compared per cell.
type movePlan struct {
	move    moves.Move
	delta   int      // flat offset from a cell to its predecessor
	fixed   float64  // Σ pairScore over GapLeft/GapRight/CoGap pairs
	matches [][2]int // pairs that consume a residue on both sides
}

// planMoves decomposes every move against every pair, in enumeration order.
func planMoves(ms []moves.Move, pairs [][2]int, s scoring.Scheme, score *lattice.Dense[float64]) []movePlan {
	plans := make([]movePlan, len(ms))
	for idx, m := range ms {
		p := movePlan{move: m, delta: score.Delta(m)}
		for _, pr := range pairs {
			act := moves.Decompose(m, pr[0], pr[1])
			if act == scoring.Match {
				p.matches = append(p.matches, pr)
				continue
			}
			p.fixed += s.PairScore(act, 0, 0)
		}
		plans[idx] = p
	}

	return plans
}

// validate runs every configuration check before lattice allocation.
func validate(seqs []string, method Method, o Options) (lattice.Shape, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, method)
	}
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}
	if len(seqs) > moves.MaxSequences {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManySequences, len(seqs), moves.MaxSequences)
	}
	if err := o.Scheme.Validate(); err != nil {
		return nil, fmt.Errorf("msa: scheme: %w", err)
	}

	lengths := make([]int, len(seqs))
	for k, s := range seqs {
		if strings.IndexByte(s, o.GapSymbol) >= 0 {
			return nil, fmt.Errorf("%w: sequence %d contains %q", ErrGapSymbolInSequence, k, o.GapSymbol)
		}
		lengths[k] = len(s)
	}

	shape := lattice.ShapeOf(lengths)
	if _, err := lattice.Cells(shape, o.MaxCells); err != nil {
		if errors.Is(err, lattice.ErrTooLarge) {
			return nil, fmt.Errorf("%w: shape %v exceeds %d cells", ErrLatticeTooLarge, []int(shape), o.MaxCells)
		}
		return nil, err
	}

	return shape, nil
}

// BuildLattices fills the score and backtrack lattices for seqs.
//
// Every cell c other than the origin takes the best candidate over all moves
// m whose predecessor c+m stays inside the lattice:
//
//	cand(m) = S[c+m] + Σ_{i<j} pairScore(Decompose(m,i,j), seq_i[c_i-1], seq_j[c_j-1])
//
// Inadmissible moves score -Inf and never win. Ties keep the move that comes
// first in moves.Enumerate order. Under Local the value is floored at 0 and a
// cell whose best candidate is <= 0 stores a start marker.
//
// Cells are filled by increasing flat offset; every predecessor has a smaller
// offset, so it is final before it is read.
//
// Errors: see package documentation. No cell is touched on error.
// Complexity: O(cells · 2^N · N²) time, O(cells) memory.
func BuildLattices(seqs []string, method Method, opts ...Option) (*Lattices, error) {
	o := gatherOptions(opts)
	shape, err := validate(seqs, method, o)
	if err != nil {
		return nil, err
	}

	return buildLattices(seqs, method, shape, o)
}

func buildLattices(seqs []string, method Method, shape lattice.Shape, o Options) (*Lattices, error) {
	score, err := lattice.New[float64](shape, o.MaxCells)
	if err != nil {
		return nil, err
	}
	back, err := lattice.New[lattice.Step](shape, o.MaxCells)
	if err != nil {
		return nil, err
	}

	n := len(seqs)
	ms, err := moves.Enumerate(n)
	if err != nil {
		return nil, err
	}
	plans := planMoves(ms, moves.Pairs(n), o.Scheme, score)

	// Origin: S = 0, no predecessor.
	score.SetOffset(0, 0)
	back.SetOffset(0, lattice.StartStep())

	c := score.Origin()
	for off := 1; score.Next(c); off++ {
		var avail moves.Move
		for k, v := range c {
			if v > 0 {
				avail |= 1 << uint(k)
			}
		}

		best := math.Inf(-1)
		var bestMove moves.Move
		for i := range plans {
			p := &plans[i]
			if p.move&^avail != 0 {
				continue // predecessor would leave the lattice
			}
			cand := score.AtOffset(off+p.delta) + p.fixed
			for _, pr := range p.matches {
				a, b := pr[0], pr[1]
				cand += o.Scheme.PairScore(scoring.Match, seqs[a][c[a]-1], seqs[b][c[b]-1])
			}
			if cand > best {
				best, bestMove = cand, p.move
			}
		}

		if method == Local && best <= 0 {
			score.SetOffset(off, 0)
			back.SetOffset(off, lattice.StartStep())
			continue
		}
		score.SetOffset(off, best)
		back.SetOffset(off, lattice.MoveStep(bestMove))
	}

	return &Lattices{Score: score, Backtrack: back, Method: method}, nil
}

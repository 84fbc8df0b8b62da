package msa

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nalign/lattice"
)

// Sentinel errors. All of them are reported before lattice work starts.
var (
	// ErrUnknownMethod indicates an alignment method other than global/local.
	ErrUnknownMethod = errors.New("msa: unknown alignment method")

	// ErrNoSequences indicates an empty sequence list.
	ErrNoSequences = errors.New("msa: no sequences to align")

	// ErrTooManySequences indicates more sequences than a move can address.
	ErrTooManySequences = errors.New("msa: too many sequences")

	// ErrLatticeTooLarge indicates that ∏(L_k+1) exceeds the configured cap.
	ErrLatticeTooLarge = errors.New("msa: lattice too large")

	// ErrGapSymbolInSequence indicates that an input contains the gap symbol,
	// which would make the aligned output ambiguous.
	ErrGapSymbolInSequence = errors.New("msa: sequence contains the gap symbol")

	// ErrRaggedAlignment indicates aligned rows of different lengths.
	ErrRaggedAlignment = errors.New("msa: aligned sequences differ in length")
)

// Method selects global or local alignment.
type Method int

const (
	// Global aligns every sequence end to end.
	Global Method = iota

	// Local aligns the best-scoring substrings.
	Local
)

// String returns "global" or "local".
func (m Method) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// valid reports whether m is one of the two known methods.
func (m Method) valid() bool { return m == Global || m == Local }

// ParseMethod accepts exactly "global" or "local".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Lattices holds the filled score and backtrack lattices of one invocation.
// They are private to that invocation; nothing else mutates them.
type Lattices struct {
	// Score holds S[c] for every coordinate.
	Score *lattice.Dense[float64]

	// Backtrack holds the winning move (or start marker) of every coordinate.
	Backtrack *lattice.Dense[lattice.Step]

	// Method is the method the lattices were built for.
	Method Method
}

// Result is an alignment together with its score and the lattice region
// it spans.
type Result struct {
	// Aligned holds one row per input, in input order, all of equal length.
	Aligned []string

	// Score is the lattice value at End.
	Score float64

	// Begin is where traceback stopped (origin for global alignments).
	// Begin[k] is the number of residues of sequence k before the alignment.
	Begin lattice.Coord

	// End is where traceback started (corner for global alignments).
	// End[k] is the number of residues of sequence k up to the alignment end.
	End lattice.Coord
}

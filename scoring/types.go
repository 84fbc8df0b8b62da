package scoring

import (
	"errors"
	"math"
)

// ErrNonFinite indicates that a scheme parameter is NaN or ±Inf.
// Lattice cells use -Inf as the "inadmissible" sentinel, so scoring
// parameters must stay finite.
var ErrNonFinite = errors.New("scoring: parameter must be finite")

// Action is the pairwise action a single move represents for one pair of
// sequences. It is a closed set of plain values; Start marks the absence of
// a predecessor and is never produced by a real move.
type Action uint8

const (
	// Start marks a lattice cell without predecessor (origin or local re-anchor).
	Start Action = iota

	// Match means both sequences of the pair consume a residue.
	Match

	// GapLeft means the left sequence of the pair is gapped.
	GapLeft

	// GapRight means the right sequence of the pair is gapped.
	GapRight

	// CoGap means both sequences of the pair are gapped in a non-empty column.
	CoGap
)

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case Start:
		return "start"
	case Match:
		return "match"
	case GapLeft:
		return "gap_left"
	case GapRight:
		return "gap_right"
	case CoGap:
		return "co_gap"
	default:
		return "unknown"
	}
}

// Default parameter values.
const (
	DefaultMatch    = 5.0
	DefaultMismatch = -2.0
	DefaultIndel    = -4.0
	DefaultCoGap    = 0.0
)

// Scheme is a linear sum-of-pairs scoring model.
//
// Fields:
//   - Match    – reward for identical symbols in a Match pair.
//   - Mismatch – score for differing symbols in a Match pair.
//   - Indel    – applied once per GapLeft / GapRight pair.
//   - CoGap    – applied once per CoGap pair (on top of the indel charges the
//     pair members already received against the advancing sequences).
type Scheme struct {
	Match    float64 `json:"match"`
	Mismatch float64 `json:"mismatch"`
	Indel    float64 `json:"indel"`
	CoGap    float64 `json:"co_gap"`
}

// DefaultScheme returns match=5, mismatch=-2, indel=-4, co_gap=0.
func DefaultScheme() Scheme {
	return Scheme{
		Match:    DefaultMatch,
		Mismatch: DefaultMismatch,
		Indel:    DefaultIndel,
		CoGap:    DefaultCoGap,
	}
}

// Validate returns ErrNonFinite if any parameter is NaN or ±Inf.
func (s Scheme) Validate() error {
	for _, v := range [...]float64{s.Match, s.Mismatch, s.Indel, s.CoGap} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}

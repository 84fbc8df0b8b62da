package scoring

// PairScore returns the score contribution of one sequence pair.
//
//   - Match:            s.Match if x == y, else s.Mismatch.
//   - GapLeft/GapRight: s.Indel, symbols ignored.
//   - CoGap:            s.CoGap, symbols ignored.
//   - Start:            0.
//
// Symbols are only inspected for Match; callers may pass zero bytes otherwise.
// Complexity: O(1).
func (s Scheme) PairScore(a Action, x, y byte) float64 {
	switch a {
	case Match:
		if x == y {
			return s.Match
		}
		return s.Mismatch
	case GapLeft, GapRight:
		return s.Indel
	case CoGap:
		return s.CoGap
	default:
		return 0
	}
}

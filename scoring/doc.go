// Package scoring holds the sum-of-pairs scoring model used by the
// multiple-sequence aligner.
//
// What is scored?
//
//	Every alignment column is scored pair by pair. For each unordered pair of
//	sequences (i, j) the column shows one of four pairwise actions:
//	  • Match    – both sequences consume a residue (identical or not).
//	  • GapLeft  – sequence i is gapped, sequence j consumes a residue.
//	  • GapRight – sequence i consumes a residue, sequence j is gapped.
//	  • CoGap    – both are gapped while some third sequence advances.
//
// Parameters:
//
//	Scheme carries four scalars: Match (identical symbols), Mismatch (different
//	symbols), Indel (linear, once per gapped residue step) and CoGap (extra
//	adjustment per simultaneously gapped pair, default 0).
//
// Usage:
//
//	s := scoring.DefaultScheme()        // match=5 mismatch=-2 indel=-4 co_gap=0
//	v := s.PairScore(scoring.Match, 'A', 'A') // 5
//
// Schemes can also be loaded from a JSON file with LoadScheme; omitted fields
// keep their default values.
package scoring

// Package pairwise implements the classic two-sequence alignments:
// Needleman–Wunsch (global) and Smith–Waterman (local) with a linear gap
// penalty.
//
// 🚀 Why a separate 2-D aligner?
//
//	The N-dimensional engine in package msa must reduce to these algorithms
//	for N=2. This package is the independent 2-D reference: a plain
//	(n+1)×(m+1) grid and three predecessors per cell.
//
// ✨ Key features:
//   - Scores and tie-breaks identical to msa for two sequences: among equal
//     candidates the gap in a (left), then the gap in b (up), then the
//     diagonal wins.
//   - Local alignment floors cells at 0 and re-anchors there.
//   - Same gap symbol convention ('.' by default, see Options).
//
// ⚙️ Usage:
//
//	aln, err := pairwise.NeedlemanWunsch("GATTACA", "GCATGCU", scoring.DefaultScheme())
//	fmt.Println(aln.A, aln.B, aln.Score)
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m)
package pairwise

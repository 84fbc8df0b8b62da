// Package nalign is an exact multiple sequence aligner: the sum-of-pairs
// generalization of Needleman–Wunsch and Smith–Waterman from two sequences
// to N.
//
// 🚀 What is inside?
//
//   - scoring/  – match / mismatch / indel / co-gap scheme and pairwise actions
//   - moves/    – the 2^N−1 lattice moves and their pairwise decomposition
//   - lattice/  – dense N-dimensional strided storage and backtrack steps
//   - msa/      – lattice fill, traceback and the Align entry points
//   - pairwise/ – classic 2-D Needleman–Wunsch / Smith–Waterman reference
//   - seqio/    – FASTA input, FASTA / plain aligned output
//   - cmd/nalign – command-line driver
//
// ✨ Why exact?
//
//	Progressive aligners are fast but order-dependent. nalign explores the
//	full ∏(L_k+1) lattice, so the result is optimal for the scheme and fully
//	deterministic (ties resolve by a fixed move order). The price is memory
//	exponential in N: use it for a handful of sequences of moderate length.
//
// Quick example:
//
//	aligned, _ := msa.Align([]string{"ABC", "AC", "AB"}, msa.Global)
//	// ABC
//	// A.C
//	// AB.
//
//	go get github.com/katalvlaran/nalign
package nalign

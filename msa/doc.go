// Package msa computes optimal multiple sequence alignments under a
// sum-of-pairs scoring model, generalizing Needleman–Wunsch (global) and
// Smith–Waterman (local) from two sequences to N.
//
// 🚀 How it works
//
//	For N sequences of lengths L_1..L_N the aligner fills an N-dimensional
//	score lattice of ∏(L_k+1) cells. Cell c holds the best score of the
//	prefixes ending at c. Each cell considers the 2^N−1 moves m ∈ {0,−1}^N
//	(see package moves); the predecessor p = c + m must stay inside the
//	lattice. A move scores as the sum over all C(N,2) sequence pairs of the
//	pairwise action it represents (match/mismatch, gap, co-gap):
//
//	  S[c] = max_m ( S[c+m] + Σ_{i<j} pairScore(m_i, m_j) )
//
//	The winning move (first maximum in enumeration order) is recorded in a
//	parallel backtrack lattice. Traceback walks those moves back from the
//	corner (global) or from the highest-scoring cell (local), emitting a
//	residue for every sequence that advances and the gap symbol otherwise.
//
// ✨ Methods
//
//   - Global: every residue of every sequence is aligned. S[origin] = 0 and
//     traceback ends at the origin.
//   - Local: cell values are floored at 0; a cell whose best predecessor
//     path is ≤ 0 becomes a start marker and traceback stops there.
//
// ⚙️ Usage
//
//	aligned, err := msa.Align([]string{"ABC", "AC", "AB"}, msa.Global)
//	// aligned == []string{"ABC", "A.C", "AB."}
//
//	res, err := msa.AlignResult(seqs, msa.Local,
//	    msa.WithScheme(scoring.Scheme{Match: 2, Mismatch: -1, Indel: -2}),
//	    msa.WithGapSymbol('-'),
//	)
//
// Performance
//
//   - Time:   O(∏(L_k+1) · 2^N · N²)
//   - Memory: O(∏(L_k+1)) score cells plus as many backtrack steps.
//
// The lattice is exponential in N; WithMaxCells guards against runaway
// allocations and is checked before any cell is touched.
//
// Errors (sentinel):
//
//   - ErrUnknownMethod        – method is neither Global nor Local.
//   - ErrNoSequences          – empty input.
//   - ErrTooManySequences     – N exceeds moves.MaxSequences.
//   - ErrLatticeTooLarge      – lattice would exceed the cell cap.
//   - ErrGapSymbolInSequence  – an input already contains the gap symbol.
//   - scoring.ErrNonFinite    – the scheme has NaN/±Inf parameters.
package msa

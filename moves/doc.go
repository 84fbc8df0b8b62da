// Package moves enumerates the lattice steps of an N-sequence alignment and
// decomposes each step into pairwise actions.
//
// A move is a vector in {0,-1}^N: component k is -1 when sequence k consumes
// a residue at this alignment column and 0 when it is gapped. The all-zero
// vector is not a move. Internally a Move is a bitmask; bit k set means
// component k is -1.
//
// Enumeration order:
//
//	Enumerate(n) yields the 2^N-1 moves as the Cartesian product of {0,-1}
//	per sequence with the last sequence varying fastest, skipping the all-zero
//	vector. For N=3:
//
//	  (0,0,-1) (0,-1,0) (0,-1,-1) (-1,0,0) (-1,0,-1) (-1,-1,0) (-1,-1,-1)
//
//	The order is observable: when several moves reach the same best score the
//	aligner keeps the one that appears first here.
//
// Decomposition:
//
//	For a pair (i, j), Decompose maps (m_i, m_j) to a scoring.Action:
//	  (-1,-1) → Match, (-1,0) → GapRight, (0,-1) → GapLeft, (0,0) → CoGap.
package moves

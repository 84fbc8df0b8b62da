// Package lattice provides dense N-dimensional storage for alignment lattices.
//
// Purpose:
//   - Store one value per Coordinate of a box [0,L_1]×…×[0,L_N] in a single
//     flat slice, addressed by a computed strided offset.
//   - Keep the row-major layout (last axis fastest) so that scanning offsets
//     in increasing order visits every cell after all of its component-wise
//     predecessors.
//   - Model backtrack entries as an explicit tagged Step instead of a
//     sentinel coordinate.
//
// Layout:
//
//	offset(c) = Σ_k c[k]·stride[k],  stride[N-1] = 1,  stride[k] = stride[k+1]·extent[k+1]
//
// Safety:
//   - At/Set/Offset validate their input and return ErrOutOfRange.
//   - AtOffset/SetOffset are unchecked fast paths for hot loops that already
//     iterate over [0, Len()).
//
// Complexity quicksheet:
//   - New: O(∏ extent) zero-init; At/Set: O(N); AtOffset/SetOffset: O(1).
package lattice

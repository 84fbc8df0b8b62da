package pairwise_test

import (
	"fmt"

	"github.com/katalvlaran/nalign/pairwise"
	"github.com/katalvlaran/nalign/scoring"
)

// ExampleNeedlemanWunsch aligns two short nucleotide strings end to end.
func ExampleNeedlemanWunsch() {
	aln, err := pairwise.NeedlemanWunsch("GATTACA", "GCATGCU",
		scoring.Scheme{Match: 1, Mismatch: -1, Indel: -1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(aln.A)
	fmt.Println(aln.B)
	fmt.Println("score:", aln.Score)
	// Output:
	// G.ATTACA
	// GCATG.CU
	// score: 0
}

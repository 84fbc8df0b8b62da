package msa_test

import (
	"fmt"

	"github.com/katalvlaran/nalign/msa"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three short nucleotide reads aligned end to end under the default
//	scheme (match=5, mismatch=-2, indel=-4, co_gap=0).
//
// Complexity: O(9·9·11 · 2^3 · 3²) time, O(9·9·11) memory.
func ExampleAlign() {
	aligned, err := msa.Align([]string{"ACTGGTCA", "CAGGGTCA", "CCAGGGACCA"}, msa.Global)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range aligned {
		fmt.Println(row)
	}
	// Output:
	// ACTGG.TC.A
	// .CAGGGTC.A
	// CCAGGGACCA
}

// ExampleAlignResult_local extracts the shared core of two sequences.
func ExampleAlignResult_local() {
	res, err := msa.AlignResult([]string{"ABCDEF", "CD"}, msa.Local)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Aligned, res.Score, res.Begin, res.End)
	// Output:
	// [CD CD] 10 [2 0] [4 2]
}

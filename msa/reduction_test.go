package msa_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/nalign/msa"
	"github.com/katalvlaran/nalign/pairwise"
	"github.com/katalvlaran/nalign/scoring"
	"github.com/stretchr/testify/require"
)

// TestAlign_ReducesToPairwise compares the N-dimensional engine at N=2 with
// the dedicated Needleman–Wunsch / Smith–Waterman implementation.
func TestAlign_ReducesToPairwise(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	schemes := []scoring.Scheme{
		scoring.DefaultScheme(),
		{Match: 1, Mismatch: -1, Indel: -1},
		{Match: 2, Mismatch: -3, Indel: -2, CoGap: -5},
	}

	for iter := 0; iter < 80; iter++ {
		seqs := randomSeqs(r, 2, 9, "ACGT")
		s := schemes[iter%len(schemes)]

		global, err := msa.AlignResult(seqs, msa.Global, msa.WithScheme(s))
		require.NoError(t, err)
		nw, err := pairwise.NeedlemanWunsch(seqs[0], seqs[1], s)
		require.NoError(t, err)
		if diff := cmp.Diff([]string{nw.A, nw.B}, global.Aligned); diff != "" {
			t.Fatalf("global %q mismatch (-nw +msa):\n%s", seqs, diff)
		}
		require.Equal(t, nw.Score, global.Score)

		local, err := msa.AlignResult(seqs, msa.Local, msa.WithScheme(s))
		require.NoError(t, err)
		sw, err := pairwise.SmithWaterman(seqs[0], seqs[1], s)
		require.NoError(t, err)
		if diff := cmp.Diff([]string{sw.A, sw.B}, local.Aligned); diff != "" {
			t.Fatalf("local %q mismatch (-sw +msa):\n%s", seqs, diff)
		}
		require.Equal(t, sw.Score, local.Score)
		require.Equal(t, []int{sw.StartA, sw.StartB}, []int(local.Begin))
		require.Equal(t, []int{sw.EndA, sw.EndB}, []int(local.End))
	}
}

package msa_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/nalign/msa"
)

// benchmarkAlign aligns n random sequences of length l with method.
func benchmarkAlign(b *testing.B, n, l int, method msa.Method) {
	r := rand.New(rand.NewSource(int64(n*1000 + l)))
	seqs := make([]string, n)
	for k := range seqs {
		buf := make([]byte, l)
		for i := range buf {
			buf[i] = "ACGT"[r.Intn(4)]
		}
		seqs[k] = string(buf)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := msa.Align(seqs, method); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

func BenchmarkAlign(b *testing.B) {
	for _, tc := range []struct{ n, l int }{{2, 200}, {3, 40}, {4, 15}} {
		for _, method := range []msa.Method{msa.Global, msa.Local} {
			b.Run(fmt.Sprintf("n=%d/l=%d/%v", tc.n, tc.l, method), func(b *testing.B) {
				benchmarkAlign(b, tc.n, tc.l, method)
			})
		}
	}
}

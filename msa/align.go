package msa

// AlignResult builds the lattices for seqs and traces the optimal alignment.
// The lattices are discarded once the result is produced.
func AlignResult(seqs []string, method Method, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	shape, err := validate(seqs, method, o)
	if err != nil {
		return nil, err
	}
	l, err := buildLattices(seqs, method, shape, o)
	if err != nil {
		return nil, err
	}

	return Traceback(l, seqs, o.GapSymbol)
}

// Align returns one aligned row per input sequence, in input order, padded
// with the gap symbol to a common length.
//
// Example:
//
//	aligned, err := msa.Align([]string{"AB", "BA", "BA"}, msa.Global)
//	// aligned == []string{"AB.", ".BA", ".BA"}
func Align(seqs []string, method Method, opts ...Option) ([]string, error) {
	res, err := AlignResult(seqs, method, opts...)
	if err != nil {
		return nil, err
	}

	return res.Aligned, nil
}

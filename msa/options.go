package msa

import "github.com/katalvlaran/nalign/scoring"

// Defaults.
const (
	// DefaultGapSymbol pads aligned sequences.
	DefaultGapSymbol byte = '.'

	// DefaultMaxCells caps the lattice at 64Mi cells per lattice.
	DefaultMaxCells = 1 << 26
)

// Options configures an alignment.
//
// Scheme    – sum-of-pairs scoring parameters (default scoring.DefaultScheme()).
// GapSymbol – byte emitted for gapped positions (default '.').
// MaxCells  – upper bound on ∏(L_k+1) (default DefaultMaxCells).
type Options struct {
	Scheme    scoring.Scheme
	GapSymbol byte
	MaxCells  int
}

// Option represents a functional option for configuring an alignment.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Scheme:    scoring.DefaultScheme(),
		GapSymbol: DefaultGapSymbol,
		MaxCells:  DefaultMaxCells,
	}
}

// WithScheme sets the scoring parameters. The scheme is validated when the
// alignment starts; non-finite values yield scoring.ErrNonFinite.
func WithScheme(s scoring.Scheme) Option {
	return func(o *Options) {
		o.Scheme = s
	}
}

// WithGapSymbol sets the padding byte. Panics on 0, which cannot be told
// apart from an unset option.
func WithGapSymbol(gap byte) Option {
	if gap == 0 {
		panic("msa: WithGapSymbol(0)")
	}
	return func(o *Options) {
		o.GapSymbol = gap
	}
}

// WithMaxCells bounds the lattice size. Panics on n <= 0.
func WithMaxCells(n int) Option {
	if n <= 0 {
		panic("msa: WithMaxCells must be positive")
	}
	return func(o *Options) {
		o.MaxCells = n
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

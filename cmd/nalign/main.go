// Command nalign aligns the sequences of one or more FASTA files with the
// N-dimensional sum-of-pairs aligner.
//
// Usage:
//
//	nalign [flags] family.fa [more.fa ...]
//
// Each file is aligned as one set; files are processed concurrently (see
// -jobs) and reported in the order given.
package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/nalign/msa"
	"github.com/katalvlaran/nalign/scoring"
	"github.com/katalvlaran/nalign/seqio"
	"golang.org/x/sync/errgroup"
)

// config is the resolved command line.
type config struct {
	method   msa.Method
	scheme   scoring.Scheme
	gap      byte
	format   string
	width    int
	maxCells int
	jobs     int
	score    bool
	inputs   []string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("nalign: ")

	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// parseFlags builds a config from args. Scoring flags given explicitly
// override the values of -scheme.
func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	method := fs.String("method", "global", "alignment method: global or local")
	schemePath := fs.String("scheme", "", "JSON scoring scheme file (match, mismatch, indel, co_gap)")
	match := fs.Float64("match", scoring.DefaultMatch, "score for identical symbols")
	mismatch := fs.Float64("mismatch", scoring.DefaultMismatch, "score for differing symbols")
	indel := fs.Float64("indel", scoring.DefaultIndel, "linear gap penalty")
	coGap := fs.Float64("cogap", scoring.DefaultCoGap, "adjustment per simultaneously gapped pair")
	gap := fs.String("gap", string(msa.DefaultGapSymbol), "gap symbol (single byte)")
	format := fs.String("format", "plain", "output format: plain or fasta")
	width := fs.Int("width", 60, "FASTA line width (0 = no wrapping)")
	maxCells := fs.Int("max-cells", msa.DefaultMaxCells, "maximum lattice cells per alignment")
	jobs := fs.Int("jobs", 4, "files aligned concurrently")
	score := fs.Bool("score", false, "report the alignment score and region")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	m, err := msa.ParseMethod(*method)
	if err != nil {
		return config{}, err
	}

	scheme := scoring.DefaultScheme()
	if *schemePath != "" {
		if scheme, err = scoring.LoadScheme(*schemePath); err != nil {
			return config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "match":
			scheme.Match = *match
		case "mismatch":
			scheme.Mismatch = *mismatch
		case "indel":
			scheme.Indel = *indel
		case "cogap":
			scheme.CoGap = *coGap
		}
	})

	if len(*gap) != 1 || (*gap)[0] == 0 {
		return config{}, fmt.Errorf("-gap must be a single byte, got %q", *gap)
	}
	if *format != "plain" && *format != "fasta" {
		return config{}, fmt.Errorf("-format must be plain or fasta, got %q", *format)
	}
	if *maxCells <= 0 {
		return config{}, fmt.Errorf("-max-cells must be positive, got %d", *maxCells)
	}
	if *jobs < 1 {
		return config{}, fmt.Errorf("-jobs must be >= 1, got %d", *jobs)
	}
	if fs.NArg() == 0 {
		return config{}, fmt.Errorf("no input files")
	}

	return config{
		method:   m,
		scheme:   scheme,
		gap:      (*gap)[0],
		format:   *format,
		width:    *width,
		maxCells: *maxCells,
		jobs:     *jobs,
		score:    *score,
		inputs:   fs.Args(),
	}, nil
}

// run aligns every input file and writes the reports to w in input order.
func run(ctx context.Context, cfg config, w io.Writer) error {
	reports := make([][]byte, len(cfg.inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for i, path := range cfg.inputs {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := alignFile(cfg, path)
			if err != nil {
				return err
			}
			reports[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for i, r := range reports {
		if len(cfg.inputs) > 1 {
			if i > 0 {
				if err := bw.WriteByte('\n'); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "# %s\n", cfg.inputs[i]); err != nil {
				return err
			}
		}
		if _, err := bw.Write(r); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// alignFile reads, aligns and renders one file.
func alignFile(cfg config, path string) ([]byte, error) {
	recs, err := seqio.ReadFile(path)
	if err != nil {
		return nil, err
	}

	log.Printf("%s: aligning %d sequences (%v)", path, len(recs), cfg.method)
	res, err := msa.AlignResult(seqio.Seqs(recs), cfg.method,
		msa.WithScheme(cfg.scheme),
		msa.WithGapSymbol(cfg.gap),
		msa.WithMaxCells(cfg.maxCells),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	aligned := make([]seqio.Record, len(recs))
	for i, r := range recs {
		aligned[i] = seqio.Record{ID: r.ID, Seq: res.Aligned[i]}
	}

	var buf bytes.Buffer
	if cfg.score {
		fmt.Fprintf(&buf, "# score=%g begin=%v end=%v\n", res.Score, []int(res.Begin), []int(res.End))
	}
	switch cfg.format {
	case "fasta":
		err = seqio.WriteFASTA(&buf, aligned, cfg.width)
	default:
		err = seqio.WritePlain(&buf, aligned)
	}
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

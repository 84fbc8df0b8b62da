package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	bioseqio "github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// ErrNoRecords indicates input without any sequence record.
var ErrNoRecords = errors.New("seqio: no sequence records")

// Record is one named sequence.
type Record struct {
	ID  string
	Seq string
}

// IDs returns the identifiers of recs in order.
func IDs(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}

	return out
}

// Seqs returns the sequences of recs in order.
func Seqs(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Seq
	}

	return out
}

// ReadFASTA parses every record of r in input order.
func ReadFASTA(r io.Reader) ([]Record, error) {
	sc := bioseqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein)))

	var recs []Record
	for sc.Next() {
		s := sc.Seq()
		recs = append(recs, Record{ID: s.Name(), Seq: letters(s)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("seqio: read fasta: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}

	return recs, nil
}

// ReadFile opens path and parses it with ReadFASTA.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: %w", err)
	}
	defer f.Close()

	recs, err := ReadFASTA(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// letters copies the residues of s into a string.
func letters(s seq.Sequence) string {
	var b strings.Builder
	b.Grow(s.Len())
	for i := s.Start(); i < s.End(); i++ {
		b.WriteByte(byte(s.At(i).L))
	}

	return b.String()
}

// WriteFASTA writes recs as FASTA, wrapping sequence lines at width
// residues (width <= 0 disables wrapping).
func WriteFASTA(w io.Writer, recs []Record, width int) error {
	if width <= 0 {
		width = 1
		for _, r := range recs {
			width = max(width, len(r.Seq))
		}
	}
	fw := fasta.NewWriter(w, width)
	for _, r := range recs {
		s := linear.NewSeq(r.ID, alphabet.BytesToLetters([]byte(r.Seq)), alphabet.Protein)
		if _, err := fw.Write(s); err != nil {
			return fmt.Errorf("seqio: write %s: %w", r.ID, err)
		}
	}

	return nil
}

// WritePlain writes one line per record: the identifier left-aligned to the
// longest identifier, two spaces, then the aligned row.
func WritePlain(w io.Writer, recs []Record) error {
	pad := 0
	for _, r := range recs {
		if len(r.ID) > pad {
			pad = len(r.ID)
		}
	}

	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if pad > 0 {
			if _, err := fmt.Fprintf(bw, "%-*s  ", pad, r.ID); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, r.Seq); err != nil {
			return err
		}
	}

	return bw.Flush()
}

package seqio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/nalign/seqio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const family = `>seq1 first read
ACTGG
TCA
>seq2
CAGGGTCA
>seq3
CCAGGGACCA
`

func TestReadFASTA(t *testing.T) {
	recs, err := seqio.ReadFASTA(strings.NewReader(family))
	require.NoError(t, err)

	want := []seqio.Record{
		{ID: "seq1", Seq: "ACTGGTCA"},
		{ID: "seq2", Seq: "CAGGGTCA"},
		{ID: "seq3", Seq: "CCAGGGACCA"},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"seq1", "seq2", "seq3"}, seqio.IDs(recs))
	assert.Equal(t, []string{"ACTGGTCA", "CAGGGTCA", "CCAGGGACCA"}, seqio.Seqs(recs))
}

func TestReadFASTA_Empty(t *testing.T) {
	_, err := seqio.ReadFASTA(strings.NewReader(""))
	assert.ErrorIs(t, err, seqio.ErrNoRecords)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.fa")
	require.NoError(t, os.WriteFile(path, []byte(family), 0o600))

	recs, err := seqio.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, recs, 3)

	_, err = seqio.ReadFile(filepath.Join(t.TempDir(), "missing.fa"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestWriteFASTA_RoundTrip writes aligned rows and reads them back.
func TestWriteFASTA_RoundTrip(t *testing.T) {
	recs := []seqio.Record{
		{ID: "a", Seq: "ACTGG.TC.A"},
		{ID: "b", Seq: ".CAGGGTC.A"},
	}
	var buf bytes.Buffer
	require.NoError(t, seqio.WriteFASTA(&buf, recs, 4))

	back, err := seqio.ReadFASTA(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(recs, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWritePlain(t *testing.T) {
	recs := []seqio.Record{
		{ID: "short", Seq: "AB."},
		{ID: "x", Seq: ".BA"},
	}
	var buf bytes.Buffer
	require.NoError(t, seqio.WritePlain(&buf, recs))
	assert.Equal(t, "short  AB.\nx      .BA\n", buf.String())

	buf.Reset()
	require.NoError(t, seqio.WritePlain(&buf, []seqio.Record{{Seq: "AB"}, {Seq: "BA"}}))
	assert.Equal(t, "AB\nBA\n", buf.String())
}

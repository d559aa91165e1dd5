package fasta

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `>read1 first sequence
ACGT
ACGT
>read2
TTTT

GGGG
>read3 empty
`

func TestReader_Next(t *testing.T) {
	r := NewReader(strings.NewReader(sample))

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "read1", rec.ID)
	assert.Equal(t, "first sequence", rec.Description)
	assert.Equal(t, "ACGTACGT", string(rec.Seq))

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "read2", rec.ID)
	assert.Empty(t, rec.Description)
	assert.Equal(t, "TTTTGGGG", string(rec.Seq))

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "read3", rec.ID)
	assert.Empty(t, rec.Seq)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_CRLFAndNoTrailingNewline(t *testing.T) {
	r := NewReader(strings.NewReader(">r1 x\r\nAC\r\nGT\r\n>r2\r\nTTAA"))

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "ACGT", string(rec.Seq))

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, "r2", rec.ID)
	assert.Equal(t, "TTAA", string(rec.Seq))

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_DataBeforeHeader(t *testing.T) {
	r := NewReader(strings.NewReader("ACGT\n>r1\nACGT\n"))
	_, err := r.Next()
	assert.Error(t, err)
}

func TestReader_Empty(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	_, err := r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestOpen_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "reads.fa")
	require.NoError(t, os.WriteFile(plain, []byte(sample), 0o644))

	gzPath := filepath.Join(dir, "reads.fa.gz")
	f, err := os.Create(gzPath)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{plain, gzPath} {
		r, err := Open(path)
		require.NoError(t, err, path)

		var ids []string
		require.NoError(t, r.Process(func(rec *Record) error {
			ids = append(ids, rec.ID)
			return nil
		}))
		assert.Equal(t, []string{"read1", "read2", "read3"}, ids, path)
		require.NoError(t, r.Close())
	}
}

func TestProcessParallel(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString(">r\nACGTACGT\n")
	}
	r := NewReader(strings.NewReader(sb.String()))

	var mu sync.Mutex
	seen := 0
	err := ProcessParallel(context.Background(), r, 4, func(rec *Record) error {
		mu.Lock()
		seen++
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 50, seen)
}

func TestProcessParallel_PropagatesError(t *testing.T) {
	r := NewReader(strings.NewReader(sample))
	wantErr := assert.AnError
	err := ProcessParallel(context.Background(), r, 2, func(rec *Record) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

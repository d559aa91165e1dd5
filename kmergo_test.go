package kmergo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmergo/dbg"
	"github.com/hupe1980/kmergo/kmer"
)

func testSource(seqs ...string) Source {
	s := make(SliceSource, 0, len(seqs))
	for _, seq := range seqs {
		s = append(s, []byte(seq))
	}
	return &s
}

func TestBuild_NilArguments(t *testing.T) {
	space := kmer.MustNew[uint16](4)

	_, _, err := Build[uint16](context.Background(), space, nil, testSource("ACGT"))
	assert.ErrorIs(t, err, ErrNilBuilder)

	_, _, err = Build(context.Background(), space, dbg.NewHashBuilder(space), nil)
	assert.ErrorIs(t, err, ErrNilSource)
}

func TestBuild_Sequential(t *testing.T) {
	space := kmer.MustNew[uint16](4)
	metrics := &BasicMetricsCollector{}

	g, stats, err := Build(context.Background(), space, dbg.NewHashBuilder(space),
		testSource("ACGTACGTACGT", "TTNTT"),
		WithMetrics(metrics),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, 16, stats.Bases)  // 12 + 4 valid bases
	assert.Equal(t, 10, stats.Kmers)  // 9 from the first record, 1 from the second
	assert.Equal(t, g.Len(), stats.Distinct)

	for km := range space.CanonicalKmers([]byte("ACGTACGTACGT")) {
		require.True(t, g.Contains(km))
	}
	assert.Equal(t, int64(2), metrics.Records.Load())
	assert.Equal(t, int64(10), metrics.Kmers.Load())
	assert.Equal(t, int64(1), metrics.Builds.Load())
}

func TestBuild_RecordBoundary(t *testing.T) {
	// The same bases split across two records must not produce the k-mer
	// spanning the split.
	space := kmer.MustNew[uint16](4)

	g1, _, err := Build(context.Background(), space, dbg.NewHashBuilder(space),
		testSource("ACGTAC"), WithCanonical(false))
	require.NoError(t, err)

	g2, _, err := Build(context.Background(), space, dbg.NewHashBuilder(space),
		testSource("ACG", "TAC"), WithCanonical(false))
	require.NoError(t, err)

	assert.Equal(t, 3, g1.Len())
	assert.Equal(t, 0, g2.Len())
}

func TestBuild_CanonicalToggle(t *testing.T) {
	space := kmer.MustNew[uint16](4)
	seq := "AAAACCCC"

	raw, _, err := Build(context.Background(), space, dbg.NewHashBuilder(space),
		testSource(seq), WithCanonical(false))
	require.NoError(t, err)

	can, _, err := Build(context.Background(), space, dbg.NewHashBuilder(space),
		testSource(seq))
	require.NoError(t, err)

	for km := range space.Kmers([]byte(seq)) {
		assert.True(t, raw.Contains(km))
		assert.True(t, can.Contains(space.Canonical(km)))
	}
	// GGGGTTTT is the reverse complement strand; only the canonical index
	// matches it.
	for km := range space.Kmers([]byte("GGGGTTTT")) {
		assert.True(t, can.Contains(space.Canonical(km)))
		assert.False(t, raw.Contains(km))
	}
}

func TestBuild_ParallelMatchesSequential(t *testing.T) {
	space := kmer.MustNew[uint32](6)
	seqs := []string{
		"ACGATTACAGGATCCAGATTTACACGATGCA",
		"TTGACCATGGCATGCATGACCATTTGGAC",
		"NNNNACGTNNNN",
		"GATTACA",
	}

	seqG, _, err := Build(context.Background(), space, dbg.NewSparseBuilder(space),
		testSource(seqs...))
	require.NoError(t, err)

	parG, parStats, err := Build(context.Background(), space, dbg.NewSparseBuilder(space),
		testSource(seqs...), WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, seqG.Len(), parG.Len())
	assert.Equal(t, len(seqs), parStats.Records)
	for _, seq := range seqs {
		for km := range space.CanonicalKmers([]byte(seq)) {
			require.True(t, parG.Contains(km))
		}
	}
}

func TestBuild_ContextCancelled(t *testing.T) {
	space := kmer.MustNew[uint16](4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Build(ctx, space, dbg.NewHashBuilder(space), testSource("ACGTACGT"))
	assert.ErrorIs(t, err, context.Canceled)
}

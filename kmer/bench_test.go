package kmer_test

import (
	"testing"

	"github.com/hupe1980/kmergo/kmer"
	"github.com/hupe1980/kmergo/util"
)

func BenchmarkKmers(b *testing.B) {
	space := kmer.MustNew[uint64](31)
	seq := util.NewRNG(7).GenerateRandomSequence(10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for km := range space.Kmers(seq) {
			_ = km
		}
	}
}

func BenchmarkCanonical(b *testing.B) {
	space := kmer.MustNew[uint64](31)
	km := space.FromBytes(util.NewRNG(7).GenerateRandomSequence(31))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		km = space.Canonical(space.Slide(km, kmer.Code(i&3)))
	}
}

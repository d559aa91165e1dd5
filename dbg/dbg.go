package dbg

import (
	"github.com/hupe1980/kmergo/kmer"
)

// Graph is the shared membership contract of all index backends. An
// implementation is immutable once obtained from its builder's Build.
//
// A Graph is strand-agnostic: it stores exactly the keys it was given.
// Callers wanting strand-independent membership must insert and query
// canonical k-mers.
type Graph[T kmer.Uint] interface {
	// Contains reports whether the exact packed key is present.
	Contains(km kmer.Kmer[T]) bool

	// Len returns the number of distinct keys stored.
	Len() int

	// Space returns the k-mer space the graph was built over.
	Space() *kmer.Space[T]
}

// Builder accumulates keys for one index instantiation. Builders are not
// safe for concurrent use; shard externally and merge before the single
// Build call. After Build the builder is spent, and any further Insert or
// Build panics.
type Builder[T kmer.Uint] interface {
	// Insert records a key. Duplicates are tolerated and order is
	// irrelevant.
	Insert(km kmer.Kmer[T])

	// Build finalizes the accumulated keys into an immutable Graph.
	Build() (Graph[T], error)
}

// Successors returns the one-base right-extensions of km that are present
// in g, in base enumeration order. The candidate set comes solely from the
// k-mer space; backends contribute nothing but membership.
func Successors[T kmer.Uint](g Graph[T], km kmer.Kmer[T]) []kmer.Kmer[T] {
	out := make([]kmer.Kmer[T], 0, 4)
	for _, s := range g.Space().Successors(km) {
		if g.Contains(s) {
			out = append(out, s)
		}
	}
	return out
}

package dbg

import (
	"github.com/hupe1980/kmergo/kmer"
)

// HashDBG is the hash-backed membership index. Memory is proportional to
// the number of distinct keys, and any K the space admits works. It is the
// default choice when the key set is not known to be small or sparse.
//
// HashDBG has no persisted format.
type HashDBG[T kmer.Uint] struct {
	space *kmer.Space[T]
	keys  map[T]struct{}
}

// Contains implements Graph.
func (g *HashDBG[T]) Contains(km kmer.Kmer[T]) bool {
	_, ok := g.keys[km.Uint()]
	return ok
}

// Len implements Graph.
func (g *HashDBG[T]) Len() int { return len(g.keys) }

// Space implements Graph.
func (g *HashDBG[T]) Space() *kmer.Space[T] { return g.space }

// HashBuilder accumulates keys into a hash set. Build is an identity
// finalization: the accumulated set becomes the index directly.
type HashBuilder[T kmer.Uint] struct {
	g     *HashDBG[T]
	built bool
}

// NewHashBuilder returns an empty hash-backed builder over space.
func NewHashBuilder[T kmer.Uint](space *kmer.Space[T]) *HashBuilder[T] {
	return &HashBuilder[T]{
		g: &HashDBG[T]{
			space: space,
			keys:  make(map[T]struct{}),
		},
	}
}

// Insert implements Builder.
func (b *HashBuilder[T]) Insert(km kmer.Kmer[T]) {
	if b.built {
		panic("dbg: HashBuilder used after Build")
	}
	b.g.keys[km.Uint()] = struct{}{}
}

// Build implements Builder.
func (b *HashBuilder[T]) Build() (Graph[T], error) {
	if b.built {
		panic("dbg: HashBuilder used after Build")
	}
	b.built = true
	return b.g, nil
}

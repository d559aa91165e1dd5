package dbg

import (
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/kmergo/kmer"
)

// SparseDBG is the compressed membership index for key sets that are
// sparse in a large universe. Keys live in a roaring bitmap, which stores
// the sorted deduplicated set in compressed containers close to the
// information-theoretic minimum for sparse data.
//
// Contains deliberately goes through rank and select rather than a plain
// lookup: rank(key) counts stored keys <= key, and only select(rank-1)
// landing back on key distinguishes "present" from "between two present
// keys".
type SparseDBG[T kmer.Uint] struct {
	space *kmer.Space[T]
	keys  *roaring64.Bitmap
}

// Contains implements Graph.
func (g *SparseDBG[T]) Contains(km kmer.Kmer[T]) bool {
	key := uint64(km.Uint())
	rank := g.keys.Rank(key)
	if rank == 0 {
		return false
	}
	v, err := g.keys.Select(rank - 1)
	return err == nil && v == key
}

// Len implements Graph.
func (g *SparseDBG[T]) Len() int { return int(g.keys.GetCardinality()) }

// Space implements Graph.
func (g *SparseDBG[T]) Space() *kmer.Space[T] { return g.space }

// WritePayload writes the raw roaring encoding to w.
func (g *SparseDBG[T]) WritePayload(w io.Writer) (int64, error) {
	return g.keys.WriteTo(w)
}

// PayloadSize returns the encoded payload size in bytes.
func (g *SparseDBG[T]) PayloadSize() int {
	return int(g.keys.GetSerializedSizeInBytes())
}

// ReadSparsePayload reconstructs a SparseDBG from a payload previously
// written by WritePayload. Malformed input is returned as an error.
func ReadSparsePayload[T kmer.Uint](r io.Reader, space *kmer.Space[T]) (*SparseDBG[T], error) {
	keys := roaring64.NewBitmap()
	if _, err := keys.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("dbg: read sparse payload: %w", err)
	}
	if !keys.IsEmpty() && keys.Maximum() > uint64(space.Mask()) {
		return nil, fmt.Errorf("dbg: sparse payload key %d outside universe", keys.Maximum())
	}
	return &SparseDBG[T]{space: space, keys: keys}, nil
}

// SparseBuilder accumulates keys into a roaring bitmap; the bitmap keeps
// them sorted and deduplicated as it goes, so Build only has to settle the
// final container encoding.
type SparseBuilder[T kmer.Uint] struct {
	g     *SparseDBG[T]
	built bool
}

// NewSparseBuilder returns an empty sparse builder over space.
func NewSparseBuilder[T kmer.Uint](space *kmer.Space[T]) *SparseBuilder[T] {
	return &SparseBuilder[T]{
		g: &SparseDBG[T]{
			space: space,
			keys:  roaring64.NewBitmap(),
		},
	}
}

// Insert implements Builder.
func (b *SparseBuilder[T]) Insert(km kmer.Kmer[T]) {
	if b.built {
		panic("dbg: SparseBuilder used after Build")
	}
	b.g.keys.Add(uint64(km.Uint()))
}

// Build implements Builder. This is the one backend whose finalization
// transforms the accumulated data: container runs are optimized into their
// most compact representation before the index is frozen.
func (b *SparseBuilder[T]) Build() (Graph[T], error) {
	if b.built {
		panic("dbg: SparseBuilder used after Build")
	}
	b.built = true
	b.g.keys.RunOptimize()
	return b.g, nil
}

package dbg

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/kmergo/kmer"
)

// DenseDBG is the dense bit-vector membership index: one bit per value of
// the 4^K universe, regardless of occupancy. Contains is a direct bit read.
//
// The full universe is allocated up front by NewDenseBuilder, so the
// backend is only viable for small K; an oversized K fails at construction
// with an allocation fault rather than being handled.
type DenseDBG[T kmer.Uint] struct {
	space *kmer.Space[T]
	bits  *bitset.BitSet
	count int
}

// Contains implements Graph. A key outside the universe is a caller bug
// and panics.
func (g *DenseDBG[T]) Contains(km kmer.Kmer[T]) bool {
	return g.bits.Test(uint(g.checkKey(km)))
}

// Len implements Graph.
func (g *DenseDBG[T]) Len() int { return g.count }

// Space implements Graph.
func (g *DenseDBG[T]) Space() *kmer.Space[T] { return g.space }

func (g *DenseDBG[T]) checkKey(km kmer.Kmer[T]) uint64 {
	key := uint64(km.Uint())
	if key >= g.space.Universe() {
		panic(fmt.Sprintf("dbg: key %d outside dense universe %d", key, g.space.Universe()))
	}
	return key
}

// WritePayload writes the raw bit-vector encoding to w.
func (g *DenseDBG[T]) WritePayload(w io.Writer) (int64, error) {
	return g.bits.WriteTo(w)
}

// PayloadSize returns the encoded payload size in bytes.
func (g *DenseDBG[T]) PayloadSize() int {
	return g.bits.BinaryStorageSize()
}

// ReadDensePayload reconstructs a DenseDBG from a payload previously
// written by WritePayload. Malformed input is an external-data fault and is
// returned as an error, never panicked on.
func ReadDensePayload[T kmer.Uint](r io.Reader, space *kmer.Space[T]) (*DenseDBG[T], error) {
	bits := &bitset.BitSet{}
	if _, err := bits.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("dbg: read dense payload: %w", err)
	}
	if uint64(bits.Len()) != space.Universe() {
		return nil, fmt.Errorf("dbg: dense payload covers %d keys, space universe is %d", bits.Len(), space.Universe())
	}
	return &DenseDBG[T]{
		space: space,
		bits:  bits,
		count: int(bits.Count()),
	}, nil
}

// DenseBuilder accumulates keys by setting bits in the preallocated
// universe. Build is an identity finalization.
type DenseBuilder[T kmer.Uint] struct {
	g     *DenseDBG[T]
	built bool
}

// NewDenseBuilder returns an empty dense builder over space. The whole
// 4^K-bit vector is allocated here.
func NewDenseBuilder[T kmer.Uint](space *kmer.Space[T]) *DenseBuilder[T] {
	return &DenseBuilder[T]{
		g: &DenseDBG[T]{
			space: space,
			bits:  bitset.New(uint(space.Universe())),
		},
	}
}

// Insert implements Builder. A key outside the universe panics.
func (b *DenseBuilder[T]) Insert(km kmer.Kmer[T]) {
	if b.built {
		panic("dbg: DenseBuilder used after Build")
	}
	key := uint(b.g.checkKey(km))
	if !b.g.bits.Test(key) {
		b.g.bits.Set(key)
		b.g.count++
	}
}

// Build implements Builder.
func (b *DenseBuilder[T]) Build() (Graph[T], error) {
	if b.built {
		panic("dbg: DenseBuilder used after Build")
	}
	b.built = true
	return b.g, nil
}

package kmer

import (
	"fmt"
	"unsafe"
)

// Uint is the set of unsigned integer widths a k-mer can be packed into.
// A width-W integer holds up to W/2 bases.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Kmer is a packed k-mer: K bases at 2 bits each, most-significant pair
// holding the leftmost base. Kmer values are immutable and compare by their
// packed integer value. Interpretation of the value (K, masking, string
// projection) is the job of the Space that produced it.
type Kmer[T Uint] struct {
	v T
}

// Uint returns the packed integer value.
func (km Kmer[T]) Uint() T { return km.v }

// FromUint wraps a packed integer value as a Kmer. The caller is
// responsible for the value fitting the target Space's 2K bits.
func FromUint[T Uint](v T) Kmer[T] {
	return Kmer[T]{v: v}
}

// ErrInvalidLength indicates a K that does not fit the backing width.
type ErrInvalidLength struct {
	K     int
	Width int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid k-mer length %d for %d-bit backing", e.K, e.Width)
}

// Space fixes the two parameters of a k-mer instantiation: the k-mer length
// K and the backing width W (the bit size of T). Every mask, shift, and
// allocation size downstream derives from these, so they are validated once
// here and never change.
type Space[T Uint] struct {
	k     int
	width int
	mask  T
}

// New creates a Space for k-mers of length k packed into T.
// It fails unless 1 <= k and 2k <= bits(T).
func New[T Uint](k int) (*Space[T], error) {
	var zero T
	width := int(unsafe.Sizeof(zero)) * 8
	if k < 1 || 2*k > width {
		return nil, &ErrInvalidLength{K: k, Width: width}
	}
	var mask T
	if 2*k == width {
		mask = ^T(0)
	} else {
		mask = T(1)<<(2*k) - 1
	}
	return &Space[T]{k: k, width: width, mask: mask}, nil
}

// MustNew is like New but panics on an invalid k. Intended for
// package-level instantiations with constant parameters.
func MustNew[T Uint](k int) *Space[T] {
	s, err := New[T](k)
	if err != nil {
		panic(err)
	}
	return s
}

// K returns the k-mer length.
func (s *Space[T]) K() int { return s.k }

// Width returns the backing integer width in bits.
func (s *Space[T]) Width() int { return s.width }

// Mask returns the low-2K-bit mask.
func (s *Space[T]) Mask() T { return s.mask }

// Universe returns the number of distinct packed values, 4^K.
func (s *Space[T]) Universe() uint64 {
	if 2*s.k == 64 {
		panic("kmer: universe size overflows uint64 for k=32")
	}
	return 1 << (2 * s.k)
}

// Grow shifts km left by one base and appends c without masking. It is the
// priming operation: starting from the zero value, exactly K Grow calls
// produce a valid K-length k-mer. Growing an already full k-mer overflows
// into the padding bits (or off the top of T) and is a caller bug.
func (s *Space[T]) Grow(km Kmer[T], c Code) Kmer[T] {
	return Kmer[T]{v: km.v<<2 | T(c)}
}

// Slide shifts km left by one base, appends c, and masks to 2K bits,
// dropping the oldest base. This is the steady-state window update.
func (s *Space[T]) Slide(km Kmer[T], c Code) Kmer[T] {
	return Kmer[T]{v: (km.v<<2 | T(c)) & s.mask}
}

// Successors returns the four one-base right-extensions of km, in base
// enumeration order. Each result overlaps km by K-1 bases.
func (s *Space[T]) Successors(km Kmer[T]) [4]Kmer[T] {
	var out [4]Kmer[T]
	for i, c := range Bases() {
		out[i] = s.Slide(km, c)
	}
	return out
}

// FromBytes packs the first K valid bases of seq, skipping bytes outside
// the alphabet. If seq holds fewer than K valid bases the fold stops early
// and the result packs only the bases found; it is then not a K-length
// k-mer. Callers that need exactly K bases should iterate with Kmers
// instead, which never emits a short window.
func (s *Space[T]) FromBytes(seq []byte) Kmer[T] {
	var km Kmer[T]
	n := 0
	for _, b := range seq {
		c, ok := DecodeBase(b)
		if !ok {
			continue
		}
		km = s.Grow(km, c)
		n++
		if n == s.k {
			break
		}
	}
	return km
}

// Bytes decodes km back into its K characters, leftmost base first.
func (s *Space[T]) Bytes(km Kmer[T]) []byte {
	out := make([]byte, s.k)
	v := km.v
	for i := s.k - 1; i >= 0; i-- {
		out[i] = EncodeBase(Code(v & 3))
		v >>= 2
	}
	return out
}

// String is Bytes as a string.
func (s *Space[T]) String(km Kmer[T]) string {
	return string(s.Bytes(km))
}

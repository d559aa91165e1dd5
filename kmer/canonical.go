package kmer

import "math/bits"

// RevComp returns the reverse complement of km: every base complemented and
// the base order reversed.
//
// The computation works on a uint64 widening of the packed value: bitwise
// NOT complements each 2-bit code (valid because A↔T and C↔G are exact
// 2-bit complements), bit reversal flips base order but also the bit order
// inside each code, the 0x55 swap restores it, and the final shift discards
// the padding above the 2K used bits.
func (s *Space[T]) RevComp(km Kmer[T]) Kmer[T] {
	v := ^bits.Reverse64(uint64(km.v))
	v = v>>1&0x5555555555555555 | v&0x5555555555555555<<1
	v >>= 64 - uint(2*s.k)
	return Kmer[T]{v: T(v)}
}

// Canonical returns the strand-independent representative of km: whichever
// of km and its reverse complement has the smaller packed value. A
// self-palindromic k-mer equals its reverse complement and is returned
// as-is. Canonical is idempotent, and Canonical(km) == Canonical(RevComp(km)).
func (s *Space[T]) Canonical(km Kmer[T]) Kmer[T] {
	rc := s.RevComp(km)
	if km.v <= rc.v {
		return km
	}
	return rc
}

package kmer

import "iter"

// Kmers returns a single-pass lazy sequence of all overlapping k-mers in
// seq. Bytes outside the alphabet are skipped. The first K valid bases
// prime the window via Grow; every further valid base Slides the window and
// yields one more k-mer. An input with fewer than K valid bases yields
// nothing: for filtered length L the sequence has max(0, L-K+1) elements.
//
// The sequence is forward-only and not restartable; range over it once.
func (s *Space[T]) Kmers(seq []byte) iter.Seq[Kmer[T]] {
	return func(yield func(Kmer[T]) bool) {
		var km Kmer[T]
		n := 0
		for _, b := range seq {
			c, ok := DecodeBase(b)
			if !ok {
				continue
			}
			if n < s.k {
				km = s.Grow(km, c)
				n++
				if n < s.k {
					continue
				}
			} else {
				km = s.Slide(km, c)
			}
			if !yield(km) {
				return
			}
		}
	}
}

// CanonicalKmers is Kmers with every window replaced by its canonical
// representative.
func (s *Space[T]) CanonicalKmers(seq []byte) iter.Seq[Kmer[T]] {
	return func(yield func(Kmer[T]) bool) {
		for km := range s.Kmers(seq) {
			if !yield(s.Canonical(km)) {
				return
			}
		}
	}
}

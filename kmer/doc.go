// Package kmer packs fixed-length DNA substrings into unsigned integers.
//
// A k-mer of length K occupies 2K bits of a backing integer type chosen by
// the caller (uint8 through uint64), with each base encoded as a 2-bit code
// whose bitwise complement is the complementary base. A Space fixes K and
// the backing width once and provides the window operations (Grow, Slide,
// Successors), string projection, reverse complement, and canonical
// (strand-independent) resolution, plus a lazy iterator over all
// overlapping k-mers of a sequence.
package kmer

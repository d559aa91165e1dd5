package kmer

import "fmt"

// Code is a 2-bit nucleotide code.
//
// The encoding is chosen so that the bitwise complement of a code is the
// code of the complementary base (A↔T, C↔G). Reverse-complement computation
// relies on this property.
type Code uint8

// The four nucleotide codes, in canonical enumeration order.
const (
	A Code = 0
	C Code = 1
	G Code = 2
	T Code = 3
)

// codeTable maps input bytes to 2-bit codes. 0xFF marks bytes outside the
// valid alphabet.
var codeTable = [256]Code{}

// baseChars is the inverse mapping, indexed by code.
var baseChars = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range codeTable {
		codeTable[i] = 0xFF
	}
	codeTable['A'] = A
	codeTable['C'] = C
	codeTable['G'] = G
	codeTable['T'] = T
}

// DecodeBase returns the 2-bit code for one of 'A', 'C', 'G', 'T'.
// Any other byte reports ok=false; callers skip such bytes rather than
// treating them as errors.
func DecodeBase(b byte) (Code, bool) {
	c := codeTable[b]
	return c, c != 0xFF
}

// EncodeBase returns the character for a 2-bit code. Codes outside {0..3}
// cannot arise from DecodeBase or any Space operation, so hitting one is an
// internal invariant violation and panics.
func EncodeBase(c Code) byte {
	if c > T {
		panic(fmt.Sprintf("kmer: invalid base code %d", c))
	}
	return baseChars[c]
}

// Bases returns the four codes in their fixed enumeration order. Successor
// generation iterates this order, so derived key sequences are reproducible
// across runs.
func Bases() [4]Code {
	return [4]Code{A, C, G, T}
}

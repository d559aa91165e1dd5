// Package util provides test and benchmark helpers.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomSequence generates a random DNA sequence of the given
// length using the given RNG.
func (r *RNG) GenerateRandomSequence(length int) []byte {
	const alphabet = "ACGT"
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = alphabet[r.rand.Intn(4)]
	}
	return seq
}

// GenerateRandomReads generates num random DNA reads of the given length.
func (r *RNG) GenerateRandomReads(num, length int) [][]byte {
	reads := make([][]byte, num)
	for i := range reads {
		reads[i] = r.GenerateRandomSequence(length)
	}
	return reads
}

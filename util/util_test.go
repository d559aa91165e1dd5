package util

import (
	"bytes"
	"testing"
)

func TestGenerateRandomSequence(t *testing.T) {
	r := NewRNG(42)
	seq := r.GenerateRandomSequence(1000)
	if len(seq) != 1000 {
		t.Fatalf("expected length 1000, got %d", len(seq))
	}
	for _, b := range seq {
		if bytes.IndexByte([]byte("ACGT"), b) < 0 {
			t.Fatalf("unexpected byte %q", b)
		}
	}

	// Same seed, same sequence.
	again := NewRNG(42).GenerateRandomSequence(1000)
	if !bytes.Equal(seq, again) {
		t.Error("expected deterministic output for a fixed seed")
	}
}

func TestGenerateRandomReads(t *testing.T) {
	reads := NewRNG(1).GenerateRandomReads(10, 50)
	if len(reads) != 10 {
		t.Fatalf("expected 10 reads, got %d", len(reads))
	}
	for _, read := range reads {
		if len(read) != 50 {
			t.Fatalf("expected read length 50, got %d", len(read))
		}
	}
}

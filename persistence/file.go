package persistence

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hupe1980/kmergo/dbg"
	"github.com/hupe1980/kmergo/kmer"
)

// SaveFile writes g to path atomically: the index is written to a
// temporary file in the same directory and renamed into place, so a crash
// mid-write never leaves a truncated index behind.
func SaveFile[T kmer.Uint](path string, g dbg.Graph[T], opts ...Option) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("persistence: create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	bw := bufio.NewWriter(tmp)
	if err := Save(bw, g, opts...); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("persistence: flush: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("persistence: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persistence: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("persistence: rename: %w", err)
	}
	return nil
}

// LoadFile reads an index from path.
func LoadFile[T kmer.Uint](path string, space *kmer.Space[T]) (dbg.Graph[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("persistence: open: %w", err)
	}
	defer f.Close()

	return Load(bufio.NewReader(f), space)
}

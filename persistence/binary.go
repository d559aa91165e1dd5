package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/kmergo/dbg"
	"github.com/hupe1980/kmergo/kmer"
)

var byteOrder = binary.LittleEndian

type options struct {
	compress bool
}

// Option configures Save behavior. Load needs no options; everything it
// needs is in the header.
type Option func(*options)

// WithLZ4 enables LZ4 frame compression of the payload. Dense payloads of
// low occupancy compress well; roaring payloads are already compact and
// usually gain little.
func WithLZ4() Option {
	return func(o *options) {
		o.compress = true
	}
}

// payloader is the serialization surface the dense and sparse backends
// expose. The hash backend deliberately does not implement it.
type payloader interface {
	WritePayload(w io.Writer) (int64, error)
	PayloadSize() int
}

// Save writes g to w: a fixed header followed by the backend payload.
// Saving a hash-backed graph returns ErrUnsupportedBackend.
func Save[T kmer.Uint](w io.Writer, g dbg.Graph[T], opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var backend uint8
	var p payloader
	switch v := g.(type) {
	case *dbg.DenseDBG[T]:
		backend, p = BackendDense, v
	case *dbg.SparseDBG[T]:
		backend, p = BackendSparse, v
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedBackend, g)
	}

	var buf bytes.Buffer
	buf.Grow(p.PayloadSize())
	if o.compress {
		zw := lz4.NewWriter(&buf)
		if _, err := p.WritePayload(zw); err != nil {
			return fmt.Errorf("persistence: write payload: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("persistence: close compressor: %w", err)
		}
	} else {
		if _, err := p.WritePayload(&buf); err != nil {
			return fmt.Errorf("persistence: write payload: %w", err)
		}
	}

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Backend:     backend,
		K:           uint8(g.Space().K()),
		Width:       uint8(g.Space().Width()),
		Checksum:    crc32.ChecksumIEEE(buf.Bytes()),
		PayloadSize: uint64(buf.Len()),
	}
	if o.compress {
		header.Flags |= FlagLZ4
	}

	if err := binary.Write(w, byteOrder, &header); err != nil {
		return fmt.Errorf("persistence: write header: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("persistence: write payload: %w", err)
	}
	return nil
}

// Load reads an index from r and reconstructs it over space. All input is
// treated as untrusted: malformed or truncated data, parameter mismatches,
// and checksum failures come back as errors so the caller can rebuild
// instead of trusting corrupted state.
func Load[T kmer.Uint](r io.Reader, space *kmer.Space[T]) (dbg.Graph[T], error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if int(header.K) != space.K() || int(header.Width) != space.Width() {
		return nil, fmt.Errorf("%w: stored K=%d/W=%d, space K=%d/W=%d",
			ErrSpaceMismatch, header.K, header.Width, space.K(), space.Width())
	}

	payload, err := io.ReadAll(io.LimitReader(r, int64(header.PayloadSize)))
	if err != nil {
		return nil, fmt.Errorf("persistence: read payload: %w", err)
	}
	if uint64(len(payload)) != header.PayloadSize {
		return nil, fmt.Errorf("persistence: truncated payload: got %d of %d bytes",
			len(payload), header.PayloadSize)
	}
	if crc32.ChecksumIEEE(payload) != header.Checksum {
		return nil, ErrChecksum
	}

	var pr io.Reader = bytes.NewReader(payload)
	if header.Flags&FlagLZ4 != 0 {
		pr = lz4.NewReader(pr)
	}

	switch header.Backend {
	case BackendDense:
		return dbg.ReadDensePayload(pr, space)
	case BackendSparse:
		return dbg.ReadSparsePayload(pr, space)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidBackend, header.Backend)
	}
}

// ReadHeader reads and validates the file header, leaving r positioned at
// the payload.
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return nil, fmt.Errorf("persistence: read header: %w", err)
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	if header.Backend != BackendDense && header.Backend != BackendSparse {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBackend, header.Backend)
	}
	return &header, nil
}

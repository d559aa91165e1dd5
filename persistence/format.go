// Package persistence frames serialized membership indexes for storage.
//
// A stored index is a fixed little-endian header followed by the backend's
// raw payload, optionally LZ4-compressed. The layout is backend-specific
// and opaque; the only guarantee is that Load(Save(index)) answers Contains
// identically for every key. The hash backend has no persisted format.
package persistence

import "errors"

const (
	// MagicNumber identifies stored index files (ASCII "DBG0").
	MagicNumber = 0x44424730
	// Version is the current format version.
	Version = 0x00010000

	// Backend identifiers.
	BackendDense  = 1
	BackendSparse = 2

	// FlagLZ4 marks an LZ4-compressed payload.
	FlagLZ4 = 1 << 0
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidBackend     = errors.New("invalid backend type")
	ErrUnsupportedBackend = errors.New("backend has no persisted format")
	ErrSpaceMismatch      = errors.New("stored k-mer parameters do not match space")
	ErrChecksum           = errors.New("payload checksum mismatch")
)

// FileHeader is the 32-byte header at the start of every stored index.
type FileHeader struct {
	Magic       uint32 // "DBG0"
	Version     uint32 // Format version
	Backend     uint8  // 1=Dense, 2=Sparse
	Flags       uint8  // FlagLZ4
	K           uint8  // K-mer length
	Width       uint8  // Backing integer width in bits
	Checksum    uint32 // CRC32 (IEEE) of the stored payload bytes
	PayloadSize uint64 // Stored payload size in bytes
	Reserved    [8]byte
}

// Package fasta reads sequence records from FASTA files.
//
// The reader hands out one Record per logical sequence, which keeps k-mer
// windows from spanning record boundaries downstream. Gzipped input is
// detected and decompressed transparently.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Record is one FASTA record: the header line (without '>') split into ID
// and description, and the concatenated sequence bytes.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// Reader parses FASTA records from a stream.
type Reader struct {
	br      *bufio.Reader
	closer  io.Closer
	gz      *gzip.Reader
	pending []byte // header line of the next record, '>' stripped
	started bool
	done    bool
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Open opens a FASTA file, decompressing transparently when the gzip magic
// is present.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: open: %w", err)
	}

	br := bufio.NewReader(f)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("fasta: read: %w", err)
	}

	r := &Reader{closer: f}
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("fasta: gzip: %w", err)
		}
		r.gz = gz
		r.br = bufio.NewReader(gz)
	} else {
		r.br = br
	}
	return r, nil
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.gz != nil {
		r.gz.Close()
	}
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Next returns the next record, or io.EOF when the input is exhausted.
// Sequence lines are concatenated; blank lines and trailing CR are
// dropped.
func (r *Reader) Next() (*Record, error) {
	if r.done {
		return nil, io.EOF
	}

	// Scan forward to the first header.
	for r.pending == nil {
		line, err := r.readLine()
		if err != nil {
			r.done = true
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			r.pending = line[1:]
			break
		}
		if !r.started {
			r.done = true
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
	}
	r.started = true

	rec := &Record{}
	rec.ID, rec.Description = splitHeader(r.pending)
	r.pending = nil

	for {
		line, err := r.readLine()
		if err == io.EOF {
			r.done = true
			break
		}
		if err != nil {
			r.done = true
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			r.pending = line[1:]
			break
		}
		rec.Seq = append(rec.Seq, line...)
	}
	return rec, nil
}

// readLine returns the next line without its terminator. CRLF input is
// handled.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.br.ReadBytes('\n')
	if len(line) == 0 && err != nil {
		return nil, err
	}
	line = bytes.TrimRight(line, "\r\n")
	// A final line without newline is still a line.
	if err == io.EOF && len(line) == 0 {
		return nil, io.EOF
	}
	return append([]byte(nil), line...), nil
}

func splitHeader(line []byte) (id, desc string) {
	line = bytes.TrimSpace(line)
	if i := bytes.IndexByte(line, ' '); i >= 0 {
		return string(line[:i]), string(bytes.TrimSpace(line[i+1:]))
	}
	return string(line), ""
}

// Process drives fn over every record in order. Iteration stops at the
// first error from fn or from the parser.
func (r *Reader) Process(fn func(rec *Record) error) error {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

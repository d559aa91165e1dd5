package kmergo

import (
	"context"
	"errors"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kmergo/dbg"
	"github.com/hupe1980/kmergo/fasta"
	"github.com/hupe1980/kmergo/kmer"
)

var (
	// ErrNilBuilder is returned when Build is called without a builder.
	ErrNilBuilder = errors.New("nil builder")
	// ErrNilSource is returned when Build is called without a source.
	ErrNilSource = errors.New("nil source")
)

// Source supplies one byte sequence per logical record. Next returns
// io.EOF when the input is exhausted. The pipeline never joins sequences
// across records, so k-mers cannot span a record boundary.
type Source interface {
	Next() ([]byte, error)
}

// FASTA adapts a fasta.Reader to the Source contract.
func FASTA(r *fasta.Reader) Source {
	return fastaSource{r: r}
}

type fastaSource struct {
	r *fasta.Reader
}

func (s fastaSource) Next() ([]byte, error) {
	rec, err := s.r.Next()
	if err != nil {
		return nil, err
	}
	return rec.Seq, nil
}

// SliceSource serves in-memory sequences, one record per element.
type SliceSource [][]byte

// Next implements Source.
func (s *SliceSource) Next() ([]byte, error) {
	if len(*s) == 0 {
		return nil, io.EOF
	}
	seq := (*s)[0]
	*s = (*s)[1:]
	return seq, nil
}

// BuildStats summarizes one Build run.
type BuildStats struct {
	Records  int // records consumed from the source
	Bases    int // valid bases after filtering
	Kmers    int // k-mers inserted (duplicates included)
	Distinct int // distinct keys in the finished index
	Elapsed  time.Duration
}

// Build scans every record of source, generates its k-mers, and inserts
// them into builder, then finalizes the index. With canonicalization
// enabled (the default) each k-mer is replaced by its strand-independent
// representative before insertion, so queries must canonicalize too.
//
// With WithWorkers(n > 1), records are decoded on n workers into private
// key buffers which are merged into builder before the single Build call;
// the builder itself is never shared.
func Build[T kmer.Uint](ctx context.Context, space *kmer.Space[T], builder dbg.Builder[T], source Source, opts ...Option) (dbg.Graph[T], *BuildStats, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if builder == nil {
		return nil, nil, ErrNilBuilder
	}
	if source == nil {
		return nil, nil, ErrNilSource
	}

	start := time.Now()
	stats := &BuildStats{}

	var err error
	if o.workers > 1 {
		err = scanParallel(ctx, space, builder, source, &o, stats)
	} else {
		err = scanSequential(ctx, space, builder, source, &o, stats)
	}
	if err != nil {
		o.metrics.RecordBuild(time.Since(start), err)
		o.logger.LogBuild(ctx, stats, err)
		return nil, nil, err
	}

	g, err := builder.Build()
	stats.Elapsed = time.Since(start)
	if err == nil {
		stats.Distinct = g.Len()
	}
	o.metrics.RecordBuild(stats.Elapsed, err)
	o.logger.LogBuild(ctx, stats, err)
	if err != nil {
		return nil, nil, err
	}
	return g, stats, nil
}

func scanSequential[T kmer.Uint](ctx context.Context, space *kmer.Space[T], builder dbg.Builder[T], source Source, o *options, stats *BuildStats) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		seq, err := source.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		bases, kmers := insertRecord(space, seq, o.canonical, func(km kmer.Kmer[T]) {
			builder.Insert(km)
		})
		stats.Records++
		stats.Bases += bases
		stats.Kmers += kmers
		o.metrics.RecordRecord(bases, kmers)
	}
}

// scanParallel shards k-mer generation across workers. Each worker owns a
// private key buffer; buffers are merged into the builder only after all
// workers are done, keeping the merge strictly before finalization.
func scanParallel[T kmer.Uint](ctx context.Context, space *kmer.Space[T], builder dbg.Builder[T], source Source, o *options, stats *BuildStats) error {
	type shard struct {
		keys    []kmer.Kmer[T]
		records int
		bases   int
	}

	g, gctx := errgroup.WithContext(ctx)
	seqs := make(chan []byte, o.workers)
	shards := make([]shard, o.workers)

	g.Go(func() error {
		defer close(seqs)
		for {
			seq, err := source.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case seqs <- seq:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	for i := 0; i < o.workers; i++ {
		sh := &shards[i]
		g.Go(func() error {
			for seq := range seqs {
				bases, kmers := insertRecord(space, seq, o.canonical, func(km kmer.Kmer[T]) {
					sh.keys = append(sh.keys, km)
				})
				sh.records++
				sh.bases += bases
				o.metrics.RecordRecord(bases, kmers)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i := range shards {
		sh := &shards[i]
		stats.Records += sh.records
		stats.Bases += sh.bases
		stats.Kmers += len(sh.keys)
		for _, km := range sh.keys {
			builder.Insert(km)
		}
	}
	return nil
}

func insertRecord[T kmer.Uint](space *kmer.Space[T], seq []byte, canonical bool, emit func(kmer.Kmer[T])) (bases, kmers int) {
	for _, b := range seq {
		if _, ok := kmer.DecodeBase(b); ok {
			bases++
		}
	}
	for km := range space.Kmers(seq) {
		if canonical {
			km = space.Canonical(km)
		}
		emit(km)
		kmers++
	}
	return bases, kmers
}

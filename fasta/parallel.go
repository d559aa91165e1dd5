package fasta

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// ProcessParallel drives fn over every record using a pool of workers. One
// goroutine parses; workers consume records concurrently, so fn must be
// safe for concurrent use and record order is not preserved. The first
// error from the parser or any fn cancels the remaining work.
func ProcessParallel(ctx context.Context, r *Reader, workers int, fn func(rec *Record) error) error {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	records := make(chan *Record, workers)

	g.Go(func() error {
		defer close(records)
		for {
			rec, err := r.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case records <- rec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for rec := range records {
				if err := fn(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

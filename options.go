package kmergo

type options struct {
	canonical bool
	workers   int
	logger    *Logger
	metrics   MetricsCollector
}

func defaultOptions() options {
	return options{
		canonical: true,
		workers:   1,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
	}
}

// Option configures Build behavior.
type Option func(*options)

// WithCanonical controls strand merging. Enabled by default: every k-mer
// is replaced by its canonical representative before insertion. Disable it
// to index raw, strand-specific keys.
func WithCanonical(enabled bool) Option {
	return func(o *options) {
		o.canonical = enabled
	}
}

// WithWorkers sets the number of record-decoding workers. The default of 1
// keeps the whole pipeline on the calling goroutine. With n > 1, each
// worker accumulates keys privately and the buffers are merged before the
// one-shot finalization; the builder is never used concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLogger sets the pipeline logger. The core packages never log; only
// the Build pipeline does.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

package kmergo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting pipeline metrics.
// Implement it to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRecord is called once per consumed source record with the
	// number of valid bases and generated k-mers. It may be called from
	// multiple goroutines when workers are configured.
	RecordRecord(bases, kmers int)

	// RecordBuild is called once per Build run with total duration and the
	// terminal error, nil on success.
	RecordBuild(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRecord(int, int)            {}
func (NoopMetricsCollector) RecordBuild(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection,
// useful for debugging without external dependencies.
type BasicMetricsCollector struct {
	Records         atomic.Int64
	Bases           atomic.Int64
	Kmers           atomic.Int64
	Builds          atomic.Int64
	BuildErrors     atomic.Int64
	BuildTotalNanos atomic.Int64
}

// RecordRecord implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRecord(bases, kmers int) {
	b.Records.Add(1)
	b.Bases.Add(int64(bases))
	b.Kmers.Add(int64(kmers))
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(duration time.Duration, err error) {
	b.Builds.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

package sievego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordExtend is called after every extension attempt: growth, no-op
	// (bound at or below the current upper bound), or failure. newPrimes is
	// the number of primes the extension discovered (0 for no-ops and
	// failures), duration is the total time taken, err is nil unless the
	// attempt failed.
	RecordExtend(newPrimes int, duration time.Duration, err error)

	// RecordClear is called after each reset.
	RecordClear(duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordExtend(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordClear(time.Duration)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ExtendCount      atomic.Int64
	ExtendErrors     atomic.Int64
	ExtendTotalNanos atomic.Int64
	PrimesFound      atomic.Int64
	ClearCount       atomic.Int64
}

func (c *BasicMetricsCollector) RecordExtend(newPrimes int, duration time.Duration, err error) {
	c.ExtendCount.Add(1)
	c.ExtendTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.ExtendErrors.Add(1)
		return
	}
	c.PrimesFound.Add(int64(newPrimes))
}

func (c *BasicMetricsCollector) RecordClear(time.Duration) {
	c.ClearCount.Add(1)
}

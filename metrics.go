package bisect

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Probe counts are first-class here: they are what makes the log2(n) versus
// n behavior of the search strategies observable without a debugger.
type MetricsCollector interface {
	// RecordSearch is called after each bisection search (iterative or
	// recursive). probes is the number of midpoint comparisons spent,
	// err is nil on a hit.
	RecordSearch(probes int, duration time.Duration, err error)

	// RecordScan is called after each linear scan.
	RecordScan(probes int, duration time.Duration, err error)

	// RecordBatch is called after each batch lookup. count is the number
	// of targets attempted, missed is the number not found.
	RecordBatch(count, missed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordScan(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchMisses     atomic.Int64
	SearchProbes     atomic.Int64
	SearchMaxProbes  atomic.Int64
	SearchTotalNanos atomic.Int64
	ScanCount        atomic.Int64
	ScanMisses       atomic.Int64
	ScanProbes       atomic.Int64
	ScanTotalNanos   atomic.Int64
	BatchCount       atomic.Int64
	BatchItems       atomic.Int64
	BatchMissed      atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(probes int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchProbes.Add(int64(probes))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchMisses.Add(1)
	}
	for {
		cur := b.SearchMaxProbes.Load()
		if int64(probes) <= cur || b.SearchMaxProbes.CompareAndSwap(cur, int64(probes)) {
			return
		}
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(probes int, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanProbes.Add(int64(probes))
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScanMisses.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, missed int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchMissed.Add(int64(missed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:     b.SearchCount.Load(),
		SearchMisses:    b.SearchMisses.Load(),
		SearchProbes:    b.SearchProbes.Load(),
		SearchMaxProbes: b.SearchMaxProbes.Load(),
		SearchAvgProbes: avg(b.SearchProbes.Load(), b.SearchCount.Load()),
		SearchAvgNanos:  avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		ScanCount:       b.ScanCount.Load(),
		ScanMisses:      b.ScanMisses.Load(),
		ScanProbes:      b.ScanProbes.Load(),
		ScanAvgProbes:   avg(b.ScanProbes.Load(), b.ScanCount.Load()),
		ScanAvgNanos:    avg(b.ScanTotalNanos.Load(), b.ScanCount.Load()),
		BatchCount:      b.BatchCount.Load(),
		BatchItems:      b.BatchItems.Load(),
		BatchMissed:     b.BatchMissed.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount     int64
	SearchMisses    int64
	SearchProbes    int64
	SearchMaxProbes int64
	SearchAvgProbes int64
	SearchAvgNanos  int64
	ScanCount       int64
	ScanMisses      int64
	ScanProbes      int64
	ScanAvgProbes   int64
	ScanAvgNanos    int64
	BatchCount      int64
	BatchItems      int64
	BatchMissed     int64
}

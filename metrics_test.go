package bisect

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	t.Run("concurrent recording", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(probes int) {
				defer wg.Done()
				metrics.RecordSearch(probes, time.Microsecond, nil)
			}(i + 1)
		}
		wg.Wait()

		stats := metrics.GetStats()

		assert.Equal(t, int64(50), stats.SearchCount)
		assert.Equal(t, int64(50*51/2), stats.SearchProbes)
		assert.Equal(t, int64(50), stats.SearchMaxProbes)
		assert.Zero(t, stats.SearchMisses)
	})

	t.Run("miss accounting", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}

		metrics.RecordSearch(4, time.Microsecond, nil)
		metrics.RecordSearch(10, time.Microsecond, ErrNotFound)
		metrics.RecordScan(100, time.Millisecond, ErrNotFound)
		metrics.RecordBatch(5, 2, time.Millisecond)

		stats := metrics.GetStats()

		assert.Equal(t, int64(2), stats.SearchCount)
		assert.Equal(t, int64(1), stats.SearchMisses)
		assert.Equal(t, int64(7), stats.SearchAvgProbes)
		assert.Equal(t, int64(1), stats.ScanMisses)
		assert.Equal(t, int64(1), stats.BatchCount)
		assert.Equal(t, int64(5), stats.BatchItems)
		assert.Equal(t, int64(2), stats.BatchMissed)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}

		stats := metrics.GetStats()

		assert.Zero(t, stats.SearchAvgProbes)
		assert.Zero(t, stats.SearchAvgNanos)
		assert.Zero(t, stats.ScanAvgProbes)
	})
}

package strvec

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    growCounter prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordGrow(oldCapacity, newCapacity int) {
//	    p.growCounter.Inc()
//	}
type MetricsCollector interface {
	// RecordGrow is called after the backing storage grew.
	RecordGrow(oldCapacity, newCapacity int)

	// RecordShrink is called after the backing storage shrank.
	// dropped is the number of elements released by a destructive shrink.
	RecordShrink(oldCapacity, newCapacity, dropped int)

	// RecordInsert is called after count elements were added to a vector.
	RecordInsert(count int)

	// RecordRemove is called after count elements were removed from a vector.
	RecordRemove(count int)

	// RecordAllocationFailure is called when an allocation of bytes was refused.
	RecordAllocationFailure(bytes int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)           {}
func (NoopMetricsCollector) RecordShrink(int, int, int)    {}
func (NoopMetricsCollector) RecordInsert(int)              {}
func (NoopMetricsCollector) RecordRemove(int)              {}
func (NoopMetricsCollector) RecordAllocationFailure(int64) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount          atomic.Int64
	SlotsGrown         atomic.Int64
	MaxCapacity        atomic.Int64
	ShrinkCount        atomic.Int64
	DroppedCount       atomic.Int64
	InsertCount        atomic.Int64
	RemoveCount        atomic.Int64
	AllocationFailures atomic.Int64
	FailedBytes        atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCapacity, newCapacity int) {
	b.GrowCount.Add(1)
	b.SlotsGrown.Add(int64(newCapacity - oldCapacity))
	for {
		current := b.MaxCapacity.Load()
		if int64(newCapacity) <= current || b.MaxCapacity.CompareAndSwap(current, int64(newCapacity)) {
			return
		}
	}
}

// RecordShrink implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShrink(oldCapacity, newCapacity, dropped int) {
	b.ShrinkCount.Add(1)
	b.DroppedCount.Add(int64(dropped))
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(count int) {
	b.InsertCount.Add(int64(count))
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(count int) {
	b.RemoveCount.Add(int64(count))
}

// RecordAllocationFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocationFailure(bytes int64) {
	b.AllocationFailures.Add(1)
	b.FailedBytes.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:          b.GrowCount.Load(),
		SlotsGrown:         b.SlotsGrown.Load(),
		AvgGrowth:          b.getAvgGrowth(),
		MaxCapacity:        b.MaxCapacity.Load(),
		ShrinkCount:        b.ShrinkCount.Load(),
		DroppedCount:       b.DroppedCount.Load(),
		InsertCount:        b.InsertCount.Load(),
		RemoveCount:        b.RemoveCount.Load(),
		AllocationFailures: b.AllocationFailures.Load(),
		FailedBytes:        b.FailedBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgGrowth() int64 {
	count := b.GrowCount.Load()
	if count == 0 {
		return 0
	}
	return b.SlotsGrown.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount          int64
	SlotsGrown         int64
	AvgGrowth          int64
	MaxCapacity        int64
	ShrinkCount        int64
	DroppedCount       int64
	InsertCount        int64
	RemoveCount        int64
	AllocationFailures int64
	FailedBytes        int64
}

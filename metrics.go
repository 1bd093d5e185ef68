package veclist

import "sync/atomic"

// MetricsCollector defines an interface for collecting list metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A single collector may be shared by many lists; implementations must be
// safe for concurrent use even though a List is not.
type MetricsCollector interface {
	// RecordInsert is called after each Push or Insert.
	// reused reports whether a free slot was recycled.
	RecordInsert(reused bool)

	// RecordRemove is called after each Remove, including removals made by Drain.
	RecordRemove()

	// RecordGrow is called when the arena's backing storage reallocates.
	RecordGrow(capacity int)

	// RecordMisuse is called with the *HandleError an operation is about to panic with.
	RecordMisuse(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(bool)  {}
func (NoopMetricsCollector) RecordRemove()      {}
func (NoopMetricsCollector) RecordGrow(int)     {}
func (NoopMetricsCollector) RecordMisuse(error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount  atomic.Int64
	ReusedCount  atomic.Int64
	RemoveCount  atomic.Int64
	GrowCount    atomic.Int64
	LastCapacity atomic.Int64
	MisuseCount  atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(reused bool) {
	b.InsertCount.Add(1)
	if reused {
		b.ReusedCount.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove() {
	b.RemoveCount.Add(1)
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(capacity int) {
	b.GrowCount.Add(1)
	b.LastCapacity.Store(int64(capacity))
}

// RecordMisuse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMisuse(error) {
	b.MisuseCount.Add(1)
}

// Snapshot returns a point-in-time copy of current metrics.
func (b *BasicMetricsCollector) Snapshot() BasicMetricsStats {
	return BasicMetricsStats{
		Inserts:      b.InsertCount.Load(),
		Reused:       b.ReusedCount.Load(),
		Removes:      b.RemoveCount.Load(),
		Grows:        b.GrowCount.Load(),
		LastCapacity: b.LastCapacity.Load(),
		Misuses:      b.MisuseCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	Inserts      int64
	Reused       int64
	Removes      int64
	Grows        int64
	LastCapacity int64
	Misuses      int64
}

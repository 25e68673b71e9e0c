package quadtree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives operation metrics from a Tree. Implement it to
// feed a monitoring system; package quadprom provides a Prometheus one.
type MetricsCollector interface {
	// RecordInsert is called after each Insert. err is nil if the item was
	// placed.
	RecordInsert(duration time.Duration, err error)

	// RecordBatchInsert is called after each InsertAll with the batch size.
	RecordBatchInsert(count int, duration time.Duration, err error)

	// RecordRetrieve is called after each Retrieve with the number of
	// candidates visited.
	RecordRetrieve(visited int, duration time.Duration)

	// RecordDivide is called whenever a leaf at the given depth divides.
	RecordDivide(depth int)

	// RecordClear is called after each Clear.
	RecordClear()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)           {}
func (NoopMetricsCollector) RecordBatchInsert(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRetrieve(int, time.Duration)           {}
func (NoopMetricsCollector) RecordDivide(int)                            {}
func (NoopMetricsCollector) RecordClear()                                {}

// BasicMetricsCollector keeps simple in-memory counters. It is safe for
// concurrent use.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	BatchInsertCount  atomic.Int64
	BatchInsertItems  atomic.Int64
	BatchInsertErrors atomic.Int64
	RetrieveCount     atomic.Int64
	RetrieveVisited   atomic.Int64
	RetrieveNanos     atomic.Int64
	DivideCount       atomic.Int64
	MaxDivideDepth    atomic.Int64
	ClearCount        atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordBatchInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchInsert(count int, duration time.Duration, err error) {
	b.BatchInsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchInsertErrors.Add(1)
		return
	}
	b.BatchInsertItems.Add(int64(count))
}

// RecordRetrieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRetrieve(visited int, duration time.Duration) {
	b.RetrieveCount.Add(1)
	b.RetrieveVisited.Add(int64(visited))
	b.RetrieveNanos.Add(duration.Nanoseconds())
}

// RecordDivide implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDivide(depth int) {
	b.DivideCount.Add(1)
	for {
		cur := b.MaxDivideDepth.Load()
		if int64(depth) <= cur || b.MaxDivideDepth.CompareAndSwap(cur, int64(depth)) {
			return
		}
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear() {
	b.ClearCount.Add(1)
}

// Package metrics keeps in-process counters exposed on the health endpoint.
package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// OrderMetrics counts order commit outcomes.
type OrderMetrics struct {
	Committed         Counter
	Revised           Counter
	Deleted           Counter
	Forbidden         Counter
	InsufficientStock Counter
	Conflicts         Counter
	Failed            Counter
	UnitsDeducted     Counter

	commitNanos Counter
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{}
}

// ObserveCommit adds the duration of one successful commit.
func (m *OrderMetrics) ObserveCommit(d time.Duration) {
	if d > 0 {
		m.commitNanos.Add(uint64(d))
	}
}

// AvgCommit is the mean duration of successful create and revise commits.
func (m *OrderMetrics) AvgCommit() time.Duration {
	n := m.Committed.Load() + m.Revised.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(m.commitNanos.Load() / n)
}

func (m *OrderMetrics) Snapshot() map[string]any {
	return map[string]any{
		"orders_committed":          m.Committed.Load(),
		"orders_revised":            m.Revised.Load(),
		"orders_deleted":            m.Deleted.Load(),
		"orders_forbidden":          m.Forbidden.Load(),
		"orders_insufficient_stock": m.InsufficientStock.Load(),
		"orders_conflicts":          m.Conflicts.Load(),
		"orders_failed":             m.Failed.Load(),
		"units_deducted":            m.UnitsDeducted.Load(),
		"avg_commit_ms":             m.AvgCommit().Milliseconds(),
	}
}

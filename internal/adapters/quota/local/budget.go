package local

import (
	"context"
	"sync/atomic"
)

// Budget implements ports.QuotaService as a process-lifetime sent counter
// against a fixed ceiling. It resets only on process restart. The counter
// is atomic so concurrent requests cannot lose updates, but Remaining and
// Record are still two separate steps: simultaneous requests may both see
// allowance and overshoot the ceiling by the degree of concurrency.
type Budget struct {
	limit int64
	sent  atomic.Int64
}

func NewBudget(limit int) *Budget {
	return &Budget{limit: int64(limit)}
}

func (b *Budget) Remaining(ctx context.Context) (int, error) {
	remaining := b.limit - b.sent.Load()
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining), nil
}

func (b *Budget) Record(ctx context.Context) {
	b.sent.Add(1)
}

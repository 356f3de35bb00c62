package ports

import "context"

// QuotaService reports the remaining send allowance before a dispatch and
// records sends after. Two implementations exist: a fresh query against
// the upstream credit service per request, and a process-local counter
// against a fixed ceiling. They are distinct policies, never combined.
type QuotaService interface {
	// Remaining returns the current allowance. Implementations surface
	// the upstream's exhaustion sentinel as domain.ErrQuotaExhausted and
	// transport or parse failures as *domain.UpstreamError.
	Remaining(ctx context.Context) (int, error)

	// Record notes one completed send. The remote credit service
	// decrements on its own side, so the remote implementation is a no-op.
	Record(ctx context.Context)
}

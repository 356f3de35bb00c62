package ports

import (
	"context"

	"shopify-sms-notifier/internal/domain"
)

// SMSProvider abstracts the external SMS gateway.
type SMSProvider interface {
	// Send submits a notification to the gateway. A response whose status
	// field is anything other than "Success" is an error carrying the raw
	// response for diagnostics. Send never retries: the gateway's
	// idempotency semantics on retry are undocumented.
	Send(ctx context.Context, n domain.Notification) (domain.DispatchResult, error)
}

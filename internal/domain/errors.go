package domain

import (
	"errors"
	"fmt"
)

// Domain errors. Each maps to exactly one HTTP outcome in the transport
// layer, so the pipeline can fail with a plain error value and still
// produce the right status code.
var (
	ErrMissingHeaders   = errors.New("required webhook headers missing")
	ErrInvalidSignature = errors.New("webhook signature verification failed")
	ErrNoPhoneNumber    = errors.New("no valid phone number in payload")
	ErrUnsupportedEvent = errors.New("unsupported event topic")
	ErrQuotaExhausted   = errors.New("sms quota exhausted")
)

// UpstreamError wraps a failure talking to the credit service or the SMS
// gateway, or a malformed response from either. Always a server-side
// outcome, never the client's fault.
type UpstreamError struct {
	Op  string // operation that failed, e.g. "query balance"
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

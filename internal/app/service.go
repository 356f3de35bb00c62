package app

import (
	"context"
	"fmt"
	"log/slog"

	"shopify-sms-notifier/internal/domain"
	"shopify-sms-notifier/internal/ports"
	"shopify-sms-notifier/internal/webhook"
)

// NotifierService runs the verified half of the webhook pipeline:
// decode, phone extraction, message composition, quota check, dispatch.
// The transport layer has already authenticated the raw body before
// anything here executes.
type NotifierService struct {
	composer *webhook.Composer
	quota    ports.QuotaService
	provider ports.SMSProvider
	log      *slog.Logger
}

// NewNotifierService wires the service with its dependencies.
func NewNotifierService(
	composer *webhook.Composer,
	quota ports.QuotaService,
	provider ports.SMSProvider,
	log *slog.Logger,
) *NotifierService {
	return &NotifierService{
		composer: composer,
		quota:    quota,
		provider: provider,
		log:      log,
	}
}

// Result is the successful outcome of processing one order event.
type Result struct {
	Message        string
	SMSID          string
	RemainingQuota int
}

// ProcessOrderEvent turns a verified webhook body into a dispatched SMS.
// Each step is a possible exit. The returned error is always a domain
// sentinel or a *domain.UpstreamError, so the transport layer can map it
// to a status code without string matching.
//
// Composition is checked before the quota call on purpose: an event with
// no template must be rejected without touching the credit service or
// the gateway.
func (s *NotifierService) ProcessOrderEvent(ctx context.Context, topic domain.Topic, rawBody []byte) (Result, error) {
	payload, err := webhook.ParsePayload(rawBody)
	if err != nil {
		// The body passed signature verification, so a decode failure
		// means the upstream sent something inconsistent.
		return Result{}, &domain.UpstreamError{Op: "decode payload", Err: err}
	}

	phone, ok := webhook.ExtractPhone(payload)
	if !ok {
		return Result{}, domain.ErrNoPhoneNumber
	}

	body, ok := s.composer.Compose(topic, payload)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedEvent, topic)
	}

	remaining, err := s.quota.Remaining(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("check quota: %w", err)
	}
	if remaining <= 0 {
		return Result{}, domain.ErrQuotaExhausted
	}

	notification := domain.NewNotification(phone, body)
	dispatched, err := s.provider.Send(ctx, notification)
	if err != nil {
		return Result{}, fmt.Errorf("dispatch: %w", err)
	}

	s.quota.Record(ctx)
	s.log.Info("notification dispatched",
		"topic", topic,
		"sms_id", dispatched.MessageID,
		"remaining_quota", remaining-1,
	)

	return Result{
		Message:        body,
		SMSID:          dispatched.MessageID,
		RemainingQuota: remaining - 1,
	}, nil
}

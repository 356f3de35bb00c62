package webhook

import (
	"strings"
	"testing"

	"shopify-sms-notifier/internal/domain"
)

func TestComposeKnownTopics(t *testing.T) {
	c := NewComposer("0112345678")
	p := mustParse(t, `{
		"order": {"order_number": "1001", "status": "shipped"}
	}`)

	for _, topic := range []domain.Topic{
		domain.TopicOrderCreated,
		domain.TopicOrderCancelled,
		domain.TopicOrderUpdated,
		domain.TopicOrderPaid,
		domain.TopicOrderFulfilled,
	} {
		msg, ok := c.Compose(topic, p)
		if !ok {
			t.Fatalf("Compose(%q): expected a message", topic)
		}
		if !strings.Contains(msg, "1001") {
			t.Errorf("Compose(%q) = %q, missing order number", topic, msg)
		}
	}
}

func TestComposeUnknownTopic(t *testing.T) {
	c := NewComposer("0112345678")
	p := mustParse(t, `{"order": {"order_number": "1001"}}`)

	if msg, ok := c.Compose("orders/weird_event", p); ok {
		t.Fatalf("unknown topic must compose nothing, got %q", msg)
	}
}

func TestComposeCancelledIncludesContact(t *testing.T) {
	c := NewComposer("0112345678")
	p := mustParse(t, `{"order": {"order_number": "1001"}}`)

	msg, _ := c.Compose(domain.TopicOrderCancelled, p)
	if !strings.Contains(msg, "0112345678") {
		t.Fatalf("cancellation message must carry the store contact, got %q", msg)
	}
}

func TestComposeUpdatedIncludesStatus(t *testing.T) {
	c := NewComposer("0112345678")
	p := mustParse(t, `{"order": {"order_number": "1001", "status": "shipped"}}`)

	msg, _ := c.Compose(domain.TopicOrderUpdated, p)
	if !strings.Contains(msg, "shipped") {
		t.Fatalf("update message must carry the status, got %q", msg)
	}
}

func TestComposeMissingFieldsDegradeToPlaceholder(t *testing.T) {
	c := NewComposer("0112345678")
	p := mustParse(t, `{}`)

	msg, ok := c.Compose(domain.TopicOrderUpdated, p)
	if !ok {
		t.Fatal("expected a message")
	}
	if !strings.Contains(msg, placeholder) {
		t.Fatalf("missing fields must degrade to %q, got %q", placeholder, msg)
	}
}

func TestComposeNumericOrderNumber(t *testing.T) {
	c := NewComposer("0112345678")
	p := mustParse(t, `{"order_number": 1001}`)

	msg, _ := c.Compose(domain.TopicOrderCreated, p)
	if !strings.Contains(msg, "1001") {
		t.Fatalf("JSON-number order numbers must render, got %q", msg)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	c := NewComposer("0112345678")
	p := mustParse(t, `{"order": {"order_number": "1001"}}`)

	first, _ := c.Compose(domain.TopicOrderCreated, p)
	second, _ := c.Compose(domain.TopicOrderCreated, p)
	if first != second {
		t.Fatalf("compose must be byte-identical across calls: %q vs %q", first, second)
	}
}

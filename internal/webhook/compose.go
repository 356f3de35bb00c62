package webhook

import (
	"fmt"

	"shopify-sms-notifier/internal/domain"
)

// placeholder substitutes for any order field the payload doesn't carry.
const placeholder = "N/A"

// Composer builds the customer-facing notification text for recognised
// order event topics.
type Composer struct {
	contact string // store contact line used in cancellation messages
}

func NewComposer(storeContact string) *Composer {
	return &Composer{contact: storeContact}
}

// templates maps each supported topic to its message builder. Lookup is
// the whole dispatch mechanism; adding a topic means adding an entry.
var templates = map[domain.Topic]func(c *Composer, p Payload) string{
	domain.TopicOrderCreated: func(c *Composer, p Payload) string {
		return fmt.Sprintf("Thank you! Your order #%s has been received and is being processed.", orderNumber(p))
	},
	domain.TopicOrderCancelled: func(c *Composer, p Payload) string {
		return fmt.Sprintf("Your order #%s has been cancelled. Please contact %s for assistance.", orderNumber(p), c.contact)
	},
	domain.TopicOrderUpdated: func(c *Composer, p Payload) string {
		return fmt.Sprintf("Your order #%s has been updated. Current status: %s.", orderNumber(p), orderStatus(p))
	},
	domain.TopicOrderPaid: func(c *Composer, p Payload) string {
		return fmt.Sprintf("Payment for your order #%s has been received. Thank you!", orderNumber(p))
	},
	domain.TopicOrderFulfilled: func(c *Composer, p Payload) string {
		return fmt.Sprintf("Good news! Your order #%s has been shipped.", orderNumber(p))
	},
}

// Compose returns the notification text for a topic, or ok=false when the
// topic has no template. An unknown topic is a defined "no message"
// outcome, not an error.
func (c *Composer) Compose(topic domain.Topic, p Payload) (string, bool) {
	tmpl, ok := templates[topic]
	if !ok {
		return "", false
	}
	return tmpl(c, p), true
}

func orderNumber(p Payload) string {
	if s, ok := p.stringAt("order.order_number", "order_number", "order.name", "name"); ok {
		return s
	}
	return placeholder
}

func orderStatus(p Payload) string {
	if s, ok := p.stringAt("order.status", "status", "financial_status"); ok {
		return s
	}
	return placeholder
}

package domain

// Topic identifies the kind of order lifecycle event that triggered the
// webhook, as declared by the X-Shopify-Topic header.
type Topic string

const (
	TopicOrderCreated   Topic = "orders/create"
	TopicOrderCancelled Topic = "orders/cancelled"
	TopicOrderUpdated   Topic = "orders/updated"
	TopicOrderPaid      Topic = "orders/paid"
	TopicOrderFulfilled Topic = "orders/fulfilled"
)

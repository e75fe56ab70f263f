package kafka

import "time"

// OrderPlacedEvent represents a materialized order ready for notification
type OrderPlacedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OrderID    uint      `json:"order_id"`
	UserID     uint      `json:"user_id"`
	PaymentRef string    `json:"payment_ref"`
	TotalCents int64     `json:"total_cents"`
	Timestamp  time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)

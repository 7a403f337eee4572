package event

import (
	"github.com/google/uuid"
)

const (
	ExchangeOrders         = "orders"
	RoutingKeyOrderCreated = "order.created"
)

// OrderCreatedEvent is published once per committed order-creation
// transaction. Delivery is at-least-once; consumers deduplicate by EventID.
type OrderCreatedEvent struct {
	EventID string `json:"eventId"`
	OrderID int64  `json:"orderId"`
}

// NewOrderCreated builds an OrderCreatedEvent for the given order.
func NewOrderCreated(orderID int64) OrderCreatedEvent {
	return OrderCreatedEvent{
		EventID: uuid.NewString(),
		OrderID: orderID,
	}
}

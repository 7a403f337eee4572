package order

import (
	"time"

	"github.com/commercelabs/order/internal/service/models/orderitem"
	"github.com/commercelabs/order/internal/service/models/payment"
	"github.com/shopspring/decimal"
)

// Order represents a customer order with its items and payment.
// TotalAmount always equals the sum of the item prices.
type Order struct {
	ID          int64                 `json:"id"`
	CustomerID  int64                 `json:"customerId"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Status      Status                `json:"status"`
	CreatedAt   time.Time             `json:"createdAt"`
	OrderItems  []orderitem.OrderItem `json:"orderItems"`
	Payment     *payment.Payment      `json:"payment,omitempty"`
}

package payment

import (
	"github.com/shopspring/decimal"
)

// StatusPending marks a payment authorized at order time but not yet settled.
const StatusPending = "PENDING"

// Payment represents the payment attached 1:1 to an order. Amount always
// equals the order total.
type Payment struct {
	ID      int64           `json:"id"`
	OrderID int64           `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
	Status  string          `json:"status"`
	Method  Method          `json:"paymentMethod"`
}

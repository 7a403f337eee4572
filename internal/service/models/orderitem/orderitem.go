package orderitem

import (
	"github.com/shopspring/decimal"
)

// OrderItem represents an item within an order. Price is the unit price
// multiplied by the quantity at the time the order was placed, so later
// catalog price changes do not alter historical orders.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

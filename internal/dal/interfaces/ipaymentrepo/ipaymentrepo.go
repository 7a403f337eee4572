package ipaymentrepo

import (
	"context"

	"github.com/commercelabs/order/internal/service/models/payment"
)

// IPaymentRepository is an interface for payment postgres repository.
type IPaymentRepository interface {
	Insert(ctx context.Context, p payment.Payment) (payment.Payment, error)
	GetByOrderID(ctx context.Context, orderID int64) (*payment.Payment, error)
}

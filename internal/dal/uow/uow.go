package uow

import (
	"context"
	"fmt"

	"github.com/commercelabs/order/internal/dal/interfaces/iorderitemrepo"
	"github.com/commercelabs/order/internal/dal/interfaces/iorderrepo"
	"github.com/commercelabs/order/internal/dal/interfaces/ioutboxrepo"
	"github.com/commercelabs/order/internal/dal/interfaces/ipaymentrepo"
	"github.com/commercelabs/order/internal/dal/interfaces/iproductrepo"
	"github.com/commercelabs/order/internal/dal/postgres"
	orderrepo "github.com/commercelabs/order/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/commercelabs/order/internal/dal/repositories/orderitem/postgres"
	outboxrepo "github.com/commercelabs/order/internal/dal/repositories/outbox/postgres"
	paymentrepo "github.com/commercelabs/order/internal/dal/repositories/payment/postgres"
	productrepo "github.com/commercelabs/order/internal/dal/repositories/product/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"
)

type unitOfWork struct {
	pool          *pgxpool.Pool
	tx            pgx.Tx
	productRepo   iproductrepo.IProductRepository
	orderRepo     iorderrepo.IOrderRepository
	orderItemRepo iorderitemrepo.IOrderItemRepository
	paymentRepo   ipaymentrepo.IPaymentRepository
	outboxRepo    ioutboxrepo.IOutboxRepository
}

func (u *unitOfWork) ProductRepository() iproductrepo.IProductRepository {
	return u.productRepo
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *unitOfWork) OrderItemRepository() iorderitemrepo.IOrderItemRepository {
	return u.orderItemRepo
}

func (u *unitOfWork) PaymentRepository() ipaymentrepo.IPaymentRepository {
	return u.paymentRepo
}

func (u *unitOfWork) OutboxRepository() ioutboxrepo.IOutboxRepository {
	return u.outboxRepo
}

func NewUnitOfWork(db *postgres.Client) *unitOfWork {
	return &unitOfWork{
		pool:          db.Pool(),
		productRepo:   productrepo.NewPostgresProductRepository(db.Pool()),
		orderRepo:     orderrepo.NewPostgresOrderRepository(db.Pool()),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(db.Pool()),
		paymentRepo:   paymentrepo.NewPostgresPaymentRepository(db.Pool()),
		outboxRepo:    outboxrepo.NewOutboxRepository(db.Pool()),
	}
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return err
	}

	// Bound how long row locks may be waited on; 55P03 surfaces as a
	// retryable lock timeout further up.
	lockTimeoutMS := viper.GetInt("postgres.lock_timeout_ms")
	if lockTimeoutMS == 0 {
		lockTimeoutMS = 5000
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", lockTimeoutMS)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	u.tx = tx
	u.productRepo = productrepo.NewPostgresProductRepository(tx)
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)
	u.paymentRepo = paymentrepo.NewPostgresPaymentRepository(tx)
	u.outboxRepo = outboxrepo.NewOutboxRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}
	return u.tx.Rollback(ctx)
}

package postgresrepo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/commercelabs/order/internal/dal/postgres"
	"github.com/commercelabs/order/internal/service/models/payment"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PaymentDal represents payment data access layer model
type PaymentDal struct {
	Id            int64           `db:"id"`
	OrderId       int64           `db:"order_id"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	PaymentMethod string          `db:"payment_method"`
}

// ToModel converts PaymentDal to service layer Payment model
func (p *PaymentDal) ToModel() (*payment.Payment, error) {
	method, err := payment.ParseMethod(p.PaymentMethod)
	if err != nil {
		return nil, err
	}
	return &payment.Payment{
		ID:      p.Id,
		OrderID: p.OrderId,
		Amount:  p.Amount,
		Status:  p.Status,
		Method:  method,
	}, nil
}

type PostgresPaymentRepository struct {
	conn postgres.DBTX
}

func NewPostgresPaymentRepository(conn postgres.DBTX) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		conn: conn,
	}
}

// Insert persists a payment and returns it with its generated id.
func (r *PostgresPaymentRepository) Insert(
	ctx context.Context,
	p payment.Payment,
) (payment.Payment, error) {
	query, args, err := sq.Insert("payments").
		Columns("order_id", "amount", "status", "payment_method").
		Values(p.OrderID, p.Amount, p.Status, p.Method.String()).
		Suffix("RETURNING id, order_id, amount, status, payment_method").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var dal PaymentDal
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&dal.Id,
		&dal.OrderId,
		&dal.Amount,
		&dal.Status,
		&dal.PaymentMethod,
	)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to insert payment: %w", err)
	}

	model, err := dal.ToModel()
	if err != nil {
		return payment.Payment{}, fmt.Errorf("failed to convert payment dal to model: %w", err)
	}

	return *model, nil
}

// GetByOrderID retrieves the payment of an order, or nil if none exists.
func (r *PostgresPaymentRepository) GetByOrderID(
	ctx context.Context,
	orderID int64,
) (*payment.Payment, error) {
	query, args, err := sq.Select("id", "order_id", "amount", "status", "payment_method").
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var dal PaymentDal
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&dal.Id,
		&dal.OrderId,
		&dal.Amount,
		&dal.Status,
		&dal.PaymentMethod,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return dal.ToModel()
}

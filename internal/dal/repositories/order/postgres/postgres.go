package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/commercelabs/order/internal/dal/postgres"
	"github.com/commercelabs/order/internal/service/models/order"
	"github.com/commercelabs/order/internal/service/models/orderitem"
	"github.com/shopspring/decimal"
)

// OrderDal represents order data access layer model
type OrderDal struct {
	Id          int64           `db:"id"`
	CustomerId  int64           `db:"customer_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
}

// ToModel converts OrderDal to service layer Order model
func (o *OrderDal) ToModel() (*order.Order, error) {
	status, err := order.ParseStatus(o.Status)
	if err != nil {
		return nil, err
	}
	return &order.Order{
		ID:          o.Id,
		CustomerID:  o.CustomerId,
		TotalAmount: o.TotalAmount,
		Status:      status,
		CreatedAt:   o.CreatedAt,
		OrderItems:  []orderitem.OrderItem{}, // Will be populated separately
	}, nil
}

type PostgresOrderRepository struct {
	conn postgres.DBTX
}

func NewPostgresOrderRepository(conn postgres.DBTX) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
	}
}

// Insert persists an order and returns it with its generated id.
func (r *PostgresOrderRepository) Insert(
	ctx context.Context,
	o order.Order,
) (order.Order, error) {
	sql := `
		INSERT INTO orders (
			customer_id,
			total_amount,
			status,
			created_at
		)
		VALUES ($1, $2, $3, $4)
		RETURNING
			id,
			customer_id,
			total_amount,
			status,
			created_at
	`

	var dal OrderDal
	err := r.conn.QueryRow(ctx, sql,
		o.CustomerID,
		o.TotalAmount,
		o.Status.String(),
		o.CreatedAt,
	).Scan(
		&dal.Id,
		&dal.CustomerId,
		&dal.TotalAmount,
		&dal.Status,
		&dal.CreatedAt,
	)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	model, err := dal.ToModel()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to convert order dal to model: %w", err)
	}

	return *model, nil
}

// Query retrieves orders based on filter criteria
func (r *PostgresOrderRepository) Query(
	ctx context.Context,
	filter *order.QueryOrdersModel,
) ([]order.Order, error) {
	builder := sq.Select(
		"id",
		"customer_id",
		"total_amount",
		"status",
		"created_at",
	).
		From("orders").
		OrderBy("id ASC").
		PlaceholderFormat(sq.Dollar)

	if len(filter.Ids) > 0 {
		builder = builder.Where("id = ANY(?)", filter.Ids)
	}
	if len(filter.CustomerIds) > 0 {
		builder = builder.Where("customer_id = ANY(?)", filter.CustomerIds)
	}
	if filter.MinTotalAmount != nil {
		builder = builder.Where(sq.Gt{"total_amount": *filter.MinTotalAmount})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		err := rows.Scan(
			&dal.Id,
			&dal.CustomerId,
			&dal.TotalAmount,
			&dal.Status,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

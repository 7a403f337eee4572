package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/commercelabs/order/internal/dal/postgres"
	"github.com/commercelabs/order/internal/service/models/product"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductDal represents product data access layer model
type ProductDal struct {
	Id            int64           `db:"id"`
	Name          string          `db:"name"`
	Price         decimal.Decimal `db:"price"`
	StockQuantity int             `db:"stock_quantity"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// ToModel converts ProductDal to service layer Product model
func (p *ProductDal) ToModel() *product.Product {
	return &product.Product{
		ID:            p.Id,
		Name:          p.Name,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type PostgresProductRepository struct {
	conn postgres.DBTX
}

func NewPostgresProductRepository(conn postgres.DBTX) *PostgresProductRepository {
	return &PostgresProductRepository{
		conn: conn,
	}
}

// FindForUpdate locks the product rows for the given ids and returns the
// subset that exists. ORDER BY id keeps the acquisition order ascending for
// every caller, which is what makes concurrent order transactions
// deadlock-free. The locks are held until the surrounding transaction ends.
func (r *PostgresProductRepository) FindForUpdate(
	ctx context.Context,
	ids []int64,
) ([]product.Product, error) {
	sql := `
		SELECT
			id,
			name,
			price,
			stock_quantity,
			created_at,
			updated_at
		FROM products
		WHERE id = ANY($1)
		ORDER BY id ASC
		FOR UPDATE
	`

	rows, err := r.conn.Query(ctx, sql, ids)
	if err != nil {
		return nil, postgres.MapLockError(err)
	}
	defer rows.Close()

	result, err := scanProducts(rows)
	if err != nil {
		return nil, postgres.MapLockError(err)
	}

	return result, nil
}

// UpdateStock sets the available stock of one product.
func (r *PostgresProductRepository) UpdateStock(
	ctx context.Context,
	productID int64,
	stockQuantity int,
) error {
	query, args, err := sq.Update("products").
		Set("stock_quantity", stockQuantity).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": productID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found for stock update", productID)
	}

	return nil
}

// Insert adds a new product and returns it with its generated id.
func (r *PostgresProductRepository) Insert(
	ctx context.Context,
	p product.Product,
) (product.Product, error) {
	now := time.Now()

	query, args, err := sq.Insert("products").
		Columns("name", "price", "stock_quantity", "created_at", "updated_at").
		Values(p.Name, p.Price, p.StockQuantity, now, now).
		Suffix("RETURNING id, name, price, stock_quantity, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	var dal ProductDal
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&dal.Id,
		&dal.Name,
		&dal.Price,
		&dal.StockQuantity,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	return *dal.ToModel(), nil
}

// GetByID retrieves a product by id, or nil if it does not exist.
func (r *PostgresProductRepository) GetByID(
	ctx context.Context,
	id int64,
) (*product.Product, error) {
	query, args, err := sq.Select("id", "name", "price", "stock_quantity", "created_at", "updated_at").
		From("products").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var dal ProductDal
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&dal.Id,
		&dal.Name,
		&dal.Price,
		&dal.StockQuantity,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return dal.ToModel(), nil
}

func scanProducts(rows pgx.Rows) ([]product.Product, error) {
	var result []product.Product
	for rows.Next() {
		var dal ProductDal
		err := rows.Scan(
			&dal.Id,
			&dal.Name,
			&dal.Price,
			&dal.StockQuantity,
			&dal.CreatedAt,
			&dal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

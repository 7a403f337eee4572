package iproductrepo

import (
	"context"

	"github.com/commercelabs/order/internal/service/models/product"
)

// IProductRepository is an interface for product postgres repository.
type IProductRepository interface {
	// FindForUpdate locks the product rows for the given ids, ascending,
	// for the duration of the current transaction, and returns the subset
	// that exists. Unknown ids are not an error here.
	FindForUpdate(ctx context.Context, ids []int64) ([]product.Product, error)

	// UpdateStock sets the available stock of one product.
	UpdateStock(ctx context.Context, productID int64, stockQuantity int) error

	Insert(ctx context.Context, p product.Product) (product.Product, error)
	GetByID(ctx context.Context, id int64) (*product.Product, error)
}

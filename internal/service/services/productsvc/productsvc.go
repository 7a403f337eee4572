package productsvc

import (
	"context"

	"github.com/commercelabs/order/internal/dal/interfaces/iproductrepo"
	"github.com/commercelabs/order/internal/service/errs"
	"github.com/commercelabs/order/internal/service/models/product"
	"github.com/shopspring/decimal"
)

// ProductService is a service for managing catalog products.
type ProductService struct {
	productRepo iproductrepo.IProductRepository
}

// option is a function that configures the ProductService.
type option func(*ProductService)

// MustNewProductService creates a new ProductService.
func MustNewProductService(opts ...option) *ProductService {
	s := &ProductService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithProductRepository sets the product repository for the ProductService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *ProductService) {
		s.productRepo = repo
	}
}

// Create adds a new product to the catalog.
func (s *ProductService) Create(
	ctx context.Context,
	name string,
	price decimal.Decimal,
	stockQuantity int,
) (*product.Product, error) {
	if name == "" {
		return nil, errs.NewValidation("product name is required")
	}
	if price.Sign() <= 0 {
		return nil, errs.NewValidation("product price must be positive")
	}
	if stockQuantity < 0 {
		return nil, errs.NewValidation("product stock must not be negative")
	}

	created, err := s.productRepo.Insert(ctx, product.Product{
		Name:          name,
		Price:         price,
		StockQuantity: stockQuantity,
	})
	if err != nil {
		return nil, &errs.PersistenceError{Err: err}
	}

	return &created, nil
}

// GetByID retrieves a product by id.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, &errs.PersistenceError{Err: err}
	}
	if p == nil {
		return nil, &errs.ProductNotFoundError{ProductID: id}
	}

	return p, nil
}

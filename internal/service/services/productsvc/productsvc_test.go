package productsvc

import (
	"context"
	"testing"

	"github.com/commercelabs/order/internal/service/errs"
	"github.com/commercelabs/order/internal/service/models/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[int64]product.Product
	nextID   int64
}

func (r *fakeProductRepo) FindForUpdate(_ context.Context, ids []int64) ([]product.Product, error) {
	var result []product.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, productID int64, stockQuantity int) error {
	p := r.products[productID]
	p.StockQuantity = stockQuantity
	r.products[productID] = p
	return nil
}

func (r *fakeProductRepo) Insert(_ context.Context, p product.Product) (product.Product, error) {
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func newTestService() (*ProductService, *fakeProductRepo) {
	repo := &fakeProductRepo{products: make(map[int64]product.Product)}
	return MustNewProductService(WithProductRepository(repo)), repo
}

func TestCreateProduct(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), "keyboard", decimal.RequireFromString("49.90"), 10)
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "keyboard", created.Name)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("49.90")))
	assert.Equal(t, 10, created.StockQuantity)
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name  string
		pname string
		price string
		stock int
	}{
		{name: "missing name", pname: "", price: "10.00", stock: 1},
		{name: "zero price", pname: "keyboard", price: "0", stock: 1},
		{name: "negative price", pname: "keyboard", price: "-5.00", stock: 1},
		{name: "negative stock", pname: "keyboard", price: "10.00", stock: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.pname, decimal.RequireFromString(tt.price), tt.stock)

			var validationErr *errs.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 404)

	var notFoundErr *errs.ProductNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, int64(404), notFoundErr.ProductID)
}

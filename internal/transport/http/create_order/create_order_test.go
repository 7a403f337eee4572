package createorder

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/commercelabs/order/internal/service/errs"
	"github.com/commercelabs/order/internal/service/models/order"
	"github.com/commercelabs/order/internal/service/models/payment"
	"github.com/commercelabs/order/internal/service/services/ordersvc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	created *order.Order
	err     error

	gotCustomerID int64
	gotItems      []ordersvc.LineItem
	gotMethod     payment.Method
}

func (s *stubService) CreateOrder(
	_ context.Context,
	customerID int64,
	items []ordersvc.LineItem,
	method payment.Method,
) (*order.Order, error) {
	s.gotCustomerID = customerID
	s.gotItems = items
	s.gotMethod = method
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func doRequest(t *testing.T, svc service, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateOrder(rec, req, svc)
	return rec
}

func TestCreateOrderHandlerSuccess(t *testing.T) {
	stub := &stubService{created: &order.Order{
		ID:          11,
		CustomerID:  42,
		TotalAmount: decimal.RequireFromString("20.00"),
		Status:      order.StatusCreated,
	}}

	rec := doRequest(t, stub, `{
		"customerId": 42,
		"items": [{"productId": 1, "quantity": 2}],
		"paymentMethod": "CARD"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(42), stub.gotCustomerID)
	assert.Equal(t, []ordersvc.LineItem{{ProductID: 1, Quantity: 2}}, stub.gotItems)
	assert.Equal(t, payment.MethodCard, stub.gotMethod)

	var got order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(11), got.ID)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("20.00")))
}

func TestCreateOrderHandlerBadJSON(t *testing.T) {
	rec := doRequest(t, &stubService{}, `{"customerId": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderHandlerUnknownPaymentMethod(t *testing.T) {
	rec := doRequest(t, &stubService{}, `{
		"customerId": 1,
		"items": [{"productId": 1, "quantity": 1}],
		"paymentMethod": "WIRE"
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: errs.NewValidation("empty items"), wantStatus: http.StatusBadRequest},
		{name: "not found", err: &errs.ProductNotFoundError{ProductID: 9}, wantStatus: http.StatusNotFound},
		{name: "insufficient stock", err: &errs.InsufficientStockError{ProductID: 9}, wantStatus: http.StatusConflict},
		{name: "lock timeout", err: errs.ErrLockTimeout, wantStatus: http.StatusServiceUnavailable},
		{name: "persistence", err: &errs.PersistenceError{Err: assert.AnError}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubService{err: tt.err}, `{
				"customerId": 1,
				"items": [{"productId": 1, "quantity": 1}],
				"paymentMethod": "CASH"
			}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

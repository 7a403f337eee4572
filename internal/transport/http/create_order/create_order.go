package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/commercelabs/order/internal/service/models/order"
	"github.com/commercelabs/order/internal/service/models/payment"
	"github.com/commercelabs/order/internal/service/services/ordersvc"
	"github.com/commercelabs/order/internal/transport/http/httperr"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(
		ctx context.Context,
		customerID int64,
		items []ordersvc.LineItem,
		method payment.Method,
	) (*order.Order, error)
}

type createOrderRequest struct {
	CustomerID    int64               `json:"customerId"`
	Items         []ordersvc.LineItem `json:"items"`
	PaymentMethod string              `json:"paymentMethod"`
}

// CreateOrder handles the order creation request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	created, err := service.CreateOrder(r.Context(), req.CustomerID, req.Items, method)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("Error sending response for create order", "error", err)
	}
}

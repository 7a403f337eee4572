package products

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/commercelabs/order/internal/service/models/product"
	"github.com/commercelabs/order/internal/transport/http/httperr"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type service interface {
	Create(ctx context.Context, name string, price decimal.Decimal, stockQuantity int) (*product.Product, error)
	GetByID(ctx context.Context, id int64) (*product.Product, error)
}

type createProductRequest struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
}

// CreateProduct handles the product creation request.
func CreateProduct(w http.ResponseWriter, r *http.Request, service service) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		slog.Error("Error decoding request body for create product", "error", err)

		return
	}

	created, err := service.Create(r.Context(), req.Name, req.Price, req.StockQuantity)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		slog.Error("Error sending response for create product", "error", err)
	}
}

// GetProduct handles the product read request.
func GetProduct(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)

		return
	}

	p, err := service.GetByID(r.Context(), id)
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("Error sending response for get product", "error", err)
	}
}

package reportorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/commercelabs/order/internal/service/models/order"
	"github.com/commercelabs/order/internal/transport/http/httperr"
)

type service interface {
	HighValueOrders(ctx context.Context) ([]order.Order, error)
}

// HighValueOrders handles the high-value orders reporting request.
func HighValueOrders(w http.ResponseWriter, r *http.Request, service service) {
	orders, err := service.HighValueOrders(r.Context())
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		slog.Error("Error sending response for high value orders", "error", err)
	}
}

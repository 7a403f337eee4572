package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/commercelabs/order/internal/service/models/order"
	"github.com/commercelabs/order/internal/service/models/orderitem"
	"github.com/commercelabs/order/internal/transport/http/httperr"
	"github.com/gorilla/schema"
)

type service interface {
	GetOrders(ctx context.Context, model orderitem.QueryOrderItemsModel) ([]order.Order, error)
}

type queryOrdersRequest struct {
	Ids         []int64 `schema:"ids,omitempty"`
	CustomerIds []int64 `schema:"customerIds,omitempty"`
	Page        int     `schema:"page,omitempty"`
	PageSize    int     `schema:"pageSize,omitempty"`
}

func (q *queryOrdersRequest) ToModel() orderitem.QueryOrderItemsModel {
	return orderitem.QueryOrderItemsModel{
		Ids:         q.Ids,
		CustomerIds: q.CustomerIds,
		Page:        q.Page,
		PageSize:    q.PageSize,
	}
}

func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	query := &queryOrdersRequest{}
	err := decoder.Decode(query, r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	orders, err := service.GetOrders(r.Context(), query.ToModel())
	if err != nil {
		httperr.Write(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orders); err != nil {
		slog.Error("Error sending response", "error", err)
	}
}

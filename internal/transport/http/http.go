package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/commercelabs/order/internal/service/models/order"
	"github.com/commercelabs/order/internal/service/models/orderitem"
	"github.com/commercelabs/order/internal/service/models/payment"
	"github.com/commercelabs/order/internal/service/models/product"
	"github.com/commercelabs/order/internal/service/services/ordersvc"
	createorder "github.com/commercelabs/order/internal/transport/http/create_order"
	listorders "github.com/commercelabs/order/internal/transport/http/list_orders"
	"github.com/commercelabs/order/internal/transport/http/products"
	reportorders "github.com/commercelabs/order/internal/transport/http/report_orders"
	"github.com/commercelabs/order/pkg/http/middleware/trace"
	"github.com/commercelabs/order/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type orderService interface {
	CreateOrder(
		ctx context.Context,
		customerID int64,
		items []ordersvc.LineItem,
		method payment.Method,
	) (*order.Order, error)
	GetOrders(ctx context.Context, model orderitem.QueryOrderItemsModel) ([]order.Order, error)
	HighValueOrders(ctx context.Context) ([]order.Order, error)
}

type productService interface {
	Create(ctx context.Context, name string, price decimal.Decimal, stockQuantity int) (*product.Product, error)
	GetByID(ctx context.Context, id int64) (*product.Product, error)
}

type HTTPTransport struct {
	server     *http.Server
	router     *chi.Mux
	orderSvc   orderService
	productSvc productService
}

func NewHTTPTransport(orderSvc orderService, productSvc productService) *HTTPTransport {
	router := newRouter()
	server := newServer(router)
	return &HTTPTransport{
		server:     server,
		router:     router,
		orderSvc:   orderSvc,
		productSvc: productSvc,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Route("/api", func(r chi.Router) {
		r.Post("/orders", h.createOrder)
		r.Get("/orders", h.listOrders)
		r.Get("/orders/report/high-value", h.highValueOrders)
		r.Post("/products", h.createProduct)
		r.Get("/products/{id}", h.getProduct)
	})
}

func (h *HTTPTransport) createOrder(w http.ResponseWriter, r *http.Request) {
	createorder.CreateOrder(w, r, h.orderSvc)
}

func (h *HTTPTransport) listOrders(w http.ResponseWriter, r *http.Request) {
	listorders.ListOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) highValueOrders(w http.ResponseWriter, r *http.Request) {
	reportorders.HighValueOrders(w, r, h.orderSvc)
}

func (h *HTTPTransport) createProduct(w http.ResponseWriter, r *http.Request) {
	products.CreateProduct(w, r, h.productSvc)
}

func (h *HTTPTransport) getProduct(w http.ResponseWriter, r *http.Request) {
	products.GetProduct(w, r, h.productSvc)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(trace.NewTraceMiddleware)
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:    "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler: router,
	}
}

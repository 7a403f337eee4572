package ordersvc

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/commercelabs/order/internal/dal/interfaces/iorderitemrepo"
	"github.com/commercelabs/order/internal/dal/interfaces/iorderrepo"
	"github.com/commercelabs/order/internal/dal/interfaces/ioutboxrepo"
	"github.com/commercelabs/order/internal/dal/interfaces/ipaymentrepo"
	"github.com/commercelabs/order/internal/dal/interfaces/iproductrepo"
	"github.com/commercelabs/order/internal/dal/postgres"
	"github.com/commercelabs/order/internal/dal/uow"
	"github.com/commercelabs/order/internal/service/errs"
	"github.com/commercelabs/order/internal/service/models/event"
	"github.com/commercelabs/order/internal/service/models/order"
	"github.com/commercelabs/order/internal/service/models/orderitem"
	"github.com/commercelabs/order/internal/service/models/outbox"
	"github.com/commercelabs/order/internal/service/models/payment"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
)

// Orders above this total show up in the high-value report.
var highValueThreshold = decimal.NewFromInt(1000)

const outboxMaxRetries = 5

// LineItem is one (product, quantity) pair of an order request.
type LineItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderService is a service for managing orders.
type OrderService struct {
	pgClient   *postgres.Client
	uowFactory func() unitOfWork
}

func (s *OrderService) newUOW() unitOfWork {
	if s.uowFactory != nil {
		return s.uowFactory()
	}
	return uow.NewUnitOfWork(s.pgClient)
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ProductRepository() iproductrepo.IProductRepository
	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
	PaymentRepository() ipaymentrepo.IPaymentRepository
	OutboxRepository() ioutboxrepo.IOutboxRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithUnitOfWorkFactory overrides how transactions are opened, used by tests.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.uowFactory = factory
	}
}

// CreateOrder atomically validates stock, computes the total, decrements
// inventory, persists the order with its items and a pending payment, and
// registers an OrderCreated notification that fires only if the
// transaction commits. Any failure rolls the whole transaction back.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	customerID int64,
	items []LineItem,
	method payment.Method,
) (*order.Order, error) {
	ctx, span := otel.Tracer("ordersvc").Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	if err := validateItems(items); err != nil {
		return nil, err
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return nil, &errs.PersistenceError{Err: err}
	}

	created, err := s.createOrderTx(ctx, work, customerID, items, method)
	if err != nil {
		_ = work.Rollback(ctx)
		return nil, err
	}

	if err := work.Commit(ctx); err != nil {
		_ = work.Rollback(ctx)
		return nil, &errs.PersistenceError{Err: err}
	}

	return created, nil
}

func (s *OrderService) createOrderTx(
	ctx context.Context,
	work unitOfWork,
	customerID int64,
	items []LineItem,
	method payment.Method,
) (*order.Order, error) {
	// All concurrent order transactions lock product rows in the same
	// ascending id order, so none of them can deadlock against another.
	locked, err := work.ProductRepository().FindForUpdate(ctx, sortedProductIDs(items))
	if err != nil {
		if errors.Is(err, errs.ErrLockTimeout) {
			return nil, err
		}
		return nil, &errs.PersistenceError{Err: err}
	}

	productsByID := make(map[int64]productState, len(locked))
	for _, p := range locked {
		productsByID[p.ID] = productState{price: p.Price, stock: p.StockQuantity}
	}

	now := time.Now()
	total := decimal.Zero
	orderItems := make([]orderitem.OrderItem, 0, len(items))

	// Validation failures are reported for the first offending line, in
	// request order.
	for _, item := range items {
		p, ok := productsByID[item.ProductID]
		if !ok {
			return nil, &errs.ProductNotFoundError{ProductID: item.ProductID}
		}
		if p.stock < item.Quantity {
			return nil, &errs.InsufficientStockError{ProductID: item.ProductID}
		}

		p.stock -= item.Quantity
		productsByID[item.ProductID] = p
		if err := work.ProductRepository().UpdateStock(ctx, item.ProductID, p.stock); err != nil {
			return nil, &errs.PersistenceError{Err: err}
		}

		linePrice := p.price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(linePrice)
		orderItems = append(orderItems, orderitem.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     linePrice,
		})
	}

	saved, err := work.OrderRepository().Insert(ctx, order.Order{
		CustomerID:  customerID,
		TotalAmount: total,
		Status:      order.StatusCreated,
		CreatedAt:   now,
	})
	if err != nil {
		return nil, &errs.PersistenceError{Err: err}
	}

	for i := range orderItems {
		orderItems[i].OrderID = saved.ID
	}
	savedItems, err := work.OrderItemRepository().BulkInsert(ctx, orderItems)
	if err != nil {
		return nil, &errs.PersistenceError{Err: err}
	}

	savedPayment, err := work.PaymentRepository().Insert(ctx, payment.Payment{
		OrderID: saved.ID,
		Amount:  total,
		Status:  payment.StatusPending,
		Method:  method,
	})
	if err != nil {
		return nil, &errs.PersistenceError{Err: err}
	}

	// The outbox row rides the same transaction: the notification becomes
	// visible to the dispatcher only if the commit succeeds.
	if err := s.registerOrderCreated(ctx, work.OutboxRepository(), saved.ID, now); err != nil {
		return nil, &errs.PersistenceError{Err: err}
	}

	saved.OrderItems = savedItems
	saved.Payment = &savedPayment

	return &saved, nil
}

func (s *OrderService) registerOrderCreated(
	ctx context.Context,
	repo ioutboxrepo.IOutboxRepository,
	orderID int64,
	now time.Time,
) error {
	payload, err := json.Marshal(event.NewOrderCreated(orderID))
	if err != nil {
		return err
	}

	return repo.Insert(ctx, outbox.OutboxMessage{
		ExchangeName: event.ExchangeOrders,
		RoutingKey:   event.RoutingKeyOrderCreated,
		Payload:      payload,
		ContentType:  "application/json",
		MaxRetries:   outboxMaxRetries,
		CreatedAt:    now,
		UpdatedAt:    now,
		NextRetryAt:  now,
	})
}

// GetOrders retrieves orders with their items based on filter.
func (s *OrderService) GetOrders(
	ctx context.Context,
	model orderitem.QueryOrderItemsModel,
) ([]order.Order, error) {
	orderQuery := &order.QueryOrdersModel{
		Ids:         model.Ids,
		CustomerIds: model.CustomerIds,
		Limit:       model.PageSize,
	}
	if model.Page > 0 {
		orderQuery.Offset = (model.Page - 1) * model.PageSize
	}

	return s.queryOrdersWithItems(ctx, orderQuery)
}

// HighValueOrders retrieves orders whose total exceeds the reporting
// threshold. Plain read path, no locking involved.
func (s *OrderService) HighValueOrders(ctx context.Context) ([]order.Order, error) {
	return s.queryOrdersWithItems(ctx, &order.QueryOrdersModel{
		MinTotalAmount: &highValueThreshold,
	})
}

func (s *OrderService) queryOrdersWithItems(
	ctx context.Context,
	orderQuery *order.QueryOrdersModel,
) ([]order.Order, error) {
	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, orderQuery)
	if err != nil {
		return nil, &errs.PersistenceError{Err: err}
	}

	if len(orders) == 0 {
		return []order.Order{}, nil
	}

	orderItemQuery := &orderitem.QueryOrderItemsModel{}
	for _, o := range orders {
		orderItemQuery.OrderIds = append(orderItemQuery.OrderIds, o.ID)
	}
	orderItems, err := work.OrderItemRepository().Query(ctx, orderItemQuery)
	if err != nil {
		return nil, &errs.PersistenceError{Err: err}
	}

	for i := range orders {
		for _, item := range orderItems {
			if item.OrderID == orders[i].ID {
				orders[i].OrderItems = append(orders[i].OrderItems, item)
			}
		}
	}

	return orders, nil
}

type productState struct {
	price decimal.Decimal
	stock int
}

func validateItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValidation("order must contain at least one item")
	}

	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return errs.NewValidation("quantity must be at least 1 for product %d", item.ProductID)
		}
		if _, ok := seen[item.ProductID]; ok {
			return errs.NewValidation("duplicate product %d in request", item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}

	return nil
}

// sortedProductIDs deduplicates the requested product ids and sorts them
// ascending, the shared lock-acquisition order of every order transaction.
func sortedProductIDs(items []LineItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

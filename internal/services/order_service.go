package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"belanja/internal/cache"
	"belanja/internal/cartstore"
	"belanja/internal/models"
	"belanja/internal/repositories"
	"belanja/pkg/rabbitmq"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Business-rule errors surfaced to handlers for status-code mapping.
var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrAddressOwnership = errors.New("address does not belong to user")
	ErrOrderOwnership   = errors.New("order does not belong to user")
	ErrReviewOwnership  = errors.New("review does not belong to user")
	ErrInvalidStatus    = errors.New("invalid status value")
	ErrNotCancellable   = errors.New("order can no longer be cancelled")
	ErrAlreadyExists    = errors.New("already exists")
)

// CheckoutRequest carries the customer's checkout submission. ClientTotal
// is the total the UI displayed; the server recomputes its own and only
// warns when they disagree.
type CheckoutRequest struct {
	AddressID     string   `json:"address_id" validate:"required"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=cod bank_transfer card"`
	ClientTotal   *float64 `json:"client_total,omitempty"`
}

// OrderService handles business logic related to orders: checkout, status
// transitions, and the admin order views.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	addressRepo repositories.AddressRepository
	cartSvc     *CartService
	cartStore   cartstore.CartStore
	mqClient    *rabbitmq.Client // nil disables event publication
	catalog     *cache.CatalogCache
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	addressRepo repositories.AddressRepository,
	cartSvc *CartService,
	cartStore cartstore.CartStore,
	mqClient *rabbitmq.Client,
	catalog *cache.CatalogCache,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		cartSvc:     cartSvc,
		cartStore:   cartStore,
		mqClient:    mqClient,
		catalog:     catalog,
	}
}

// Checkout turns the user's cart into an order. Preconditions: the address
// exists and belongs to the caller, the cart is non-empty, and every item
// passes validation. Totals are recomputed server-side from live product
// prices. The order, its items, and the stock decrements commit in one
// database transaction; on success the cart entry is deleted, the catalog
// cache invalidated, and an order.created event published.
//
// The itemized validation results are returned on validation failure so
// the UI can show per-line reasons.
func (s *OrderService) Checkout(ctx context.Context, userID string, req CheckoutRequest) (*models.OrderSummary, []models.ItemValidation, error) {
	address, err := s.addressRepo.GetByID(req.AddressID)
	if err != nil {
		return nil, nil, err
	}
	if address.UserID != userID {
		return nil, nil, fmt.Errorf("%w: address %s", ErrAddressOwnership, req.AddressID)
	}

	cart, err := s.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, nil, ErrCartEmpty
	}

	validations, totals, err := s.cartSvc.Validate(ctx, cart.Items)
	if err != nil {
		return nil, validations, err
	}

	// Server totals are authoritative; a mismatch against the client's
	// figure means a stale UI, not a rejected order.
	if req.ClientTotal != nil && math.Abs(*req.ClientTotal-totals.TotalAmount) > PriceTolerance {
		logger.Warn().
			Str("user_id", userID).
			Float64("client_total", *req.ClientTotal).
			Float64("server_total", totals.TotalAmount).
			Msg("client-submitted total does not match server-computed total")
	}

	// Order lines snapshot the validated live price, not the cart price:
	// a drift inside the tolerance passes validation but the total was
	// computed from the live figure, and the lines must sum to it.
	items := make([]models.OrderItem, 0, len(cart.Items))
	for i, item := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       validations[i].Price,
		})
	}

	order := &models.Order{
		ID:            uuid.New().String(),
		OrderNumber:   generateOrderNumber(),
		UserID:        userID,
		AddressID:     address.ID,
		Items:         items,
		TotalAmount:   totals.TotalAmount,
		ShippingCost:  totals.ShippingCost,
		VATAmount:     totals.VATAmount,
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
	}

	if err := s.orderRepo.CreateWithItems(order); err != nil {
		return nil, nil, err
	}

	// The cart delete is not transactional with the order commit; a crash
	// here leaves a stale cart, bounded by the store's TTL.
	if err := s.cartStore.Delete(ctx, userID); err != nil {
		logger.Warn().Err(err).Str("user_id", userID).Msg("failed to clear cart after checkout")
	}
	s.catalog.Invalidate(ctx)
	s.publishEvent(rabbitmq.EventOrderCreated, map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"user_id":      order.UserID,
		"status":       order.Status,
		"total":        order.TotalAmount,
	})

	return &models.OrderSummary{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
	}, validations, nil
}

// GetOrdersByUser retrieves the user's own orders, newest first.
func (s *OrderService) GetOrdersByUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// GetOrderForUser retrieves a single order, enforcing ownership.
func (s *OrderService) GetOrderForUser(userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("%w: order %s", ErrOrderOwnership, orderID)
	}
	return order, nil
}

// CancelOrder lets a customer cancel their own order while it is still
// pending. Later stages require admin intervention.
func (s *OrderService) CancelOrder(userID, orderID string) (*models.Order, error) {
	order, err := s.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrNotCancellable, order.Status)
	}

	order.Status = models.OrderStatusCancelled
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	s.publishStatusChanged(order)
	return order, nil
}

// List retrieves a filtered, paginated order page for the admin back office.
func (s *OrderService) List(filter repositories.OrderFilter) ([]models.Order, int64, error) {
	if filter.Status != "" && !models.ValidOrderStatus(models.OrderStatus(filter.Status)) {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidStatus, filter.Status)
	}
	if filter.PaymentStatus != "" && !models.ValidPaymentStatus(models.PaymentStatus(filter.PaymentStatus)) {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidStatus, filter.PaymentStatus)
	}
	return s.orderRepo.List(filter)
}

// GetByID retrieves a single order with all associations, for admin detail.
func (s *OrderService) GetByID(orderID string) (*models.Order, error) {
	return s.orderRepo.GetByID(orderID)
}

// UpdateStatus sets the order's fulfillment status. Any valid enum value
// is accepted; there is no transition state machine. Moving to delivered
// records the actual delivery date.
func (s *OrderService) UpdateStatus(orderID string, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if status == models.OrderStatusDelivered && order.DeliveredAt == nil {
		now := time.Now()
		order.DeliveredAt = &now
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	s.publishStatusChanged(order)
	return order, nil
}

// UpdatePaymentStatus sets the order's payment status and optional gateway
// references. Marking a pending order as paid auto-confirms it.
func (s *OrderService) UpdatePaymentStatus(orderID string, paymentStatus models.PaymentStatus, transactionID, gatewayID *string) (*models.Order, error) {
	if !models.ValidPaymentStatus(paymentStatus) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, paymentStatus)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = paymentStatus
	if transactionID != nil {
		order.TransactionID = transactionID
	}
	if gatewayID != nil {
		order.PaymentGatewayID = gatewayID
	}
	if paymentStatus == models.PaymentStatusPaid && order.Status == models.OrderStatusPending {
		order.Status = models.OrderStatusConfirmed
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}
	s.publishStatusChanged(order)
	return order, nil
}

// Delete removes an order and its items. Admin only; customers never
// delete orders.
func (s *OrderService) Delete(orderID string) error {
	return s.orderRepo.Delete(orderID)
}

func (s *OrderService) publishStatusChanged(order *models.Order) {
	s.publishEvent(rabbitmq.EventOrderStatusChanged, map[string]interface{}{
		"order_id":       order.ID,
		"order_number":   order.OrderNumber,
		"status":         order.Status,
		"payment_status": order.PaymentStatus,
	})
}

// publishEvent sends an order event best-effort: publish failures are
// logged, never surfaced to the request.
func (s *OrderService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error().Err(err).Str("event", eventType).Msg("failed to marshal order event")
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		logger.Warn().Err(err).Str("event", eventType).Msg("failed to publish order event")
	}
}

// generateOrderNumber builds the display identifier shown to customers,
// e.g. ORD-20250114-5F3A2B.
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}

package services_test

import (
	"context"
	"fmt"
	"testing"

	"belanja/internal/cartstore"
	"belanja/internal/models"
	"belanja/internal/repositories"
	"belanja/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a uniquely named in-memory SQLite database. The shared
// cache keeps the schema visible across pooled connections without
// leaking state between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	return db
}

// newOrderTestEnv wires an OrderService against an in-memory SQLite
// database and an in-memory cart store, seeded with one user, one
// address, and two products.
func newOrderTestEnv(t *testing.T) (*services.OrderService, *cartstore.MockCartStore, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Address{}, &models.Product{},
		&models.Order{}, &models.OrderItem{},
	))

	require.NoError(t, db.Create(&models.User{
		ID: "user-1", Username: "budi", Email: "budi@example.com", Password: "x",
	}).Error)
	require.NoError(t, db.Create(&models.Address{
		ID: "addr-1", UserID: "user-1", Recipient: "Budi", Phone: "0812",
		Street: "Jl. Merdeka 1", City: "Jakarta", Province: "DKI", PostalCode: "10110",
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		ID: "prod-1", Name: "Laptop", Slug: "laptop", Price: 200.0, Stock: 10,
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		ID: "prod-2", Name: "Mouse", Slug: "mouse", Price: 100.0, Stock: 2,
	}).Error)

	store := cartstore.NewMockCartStore()
	orderRepo := repositories.NewGORMOrderRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartSvc := services.NewCartService(store, productRepo)
	orderSvc := services.NewOrderService(orderRepo, addressRepo, cartSvc, store, nil, nil)

	return orderSvc, store, db
}

func TestOrderService_Checkout(t *testing.T) {
	orderSvc, store, db := newOrderTestEnv(t)
	ctx := context.Background()

	err := store.Save(ctx, &models.Cart{
		UserID: "user-1",
		Items: []models.CartItem{
			{ProductID: "prod-1", Name: "Laptop", Price: 200.0, Quantity: 3},
		},
	})
	require.NoError(t, err)

	summary, validations, err := orderSvc.Checkout(ctx, "user-1", services.CheckoutRequest{
		AddressID:     "addr-1",
		PaymentMethod: "bank_transfer",
	})
	require.NoError(t, err)
	assert.Len(t, validations, 1)
	assert.True(t, validations[0].Valid)

	// Subtotal 600 clears the free shipping threshold
	assert.Equal(t, 600.0, summary.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, summary.Status)
	assert.Equal(t, "bank_transfer", summary.PaymentMethod)
	assert.Regexp(t, `^ORD-\d{8}-[0-9A-F]{6}$`, summary.OrderNumber)

	// Order and items persisted with snapshot prices and derived totals
	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, "id = ?", summary.ID).Error)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, 0.0, order.ShippingCost)
	assert.Equal(t, 600.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 200.0, order.Items[0].Price)
	assert.Equal(t, "Laptop", order.Items[0].ProductName)

	// Stock decremented
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", "prod-1").Error)
	assert.Equal(t, 7, product.Stock)

	// Cart entry is gone after a successful checkout
	cart, err := store.Get(ctx, "user-1")
	assert.NoError(t, err)
	assert.Nil(t, cart)
}

func TestOrderService_Checkout_SnapshotsLivePrices(t *testing.T) {
	orderSvc, store, db := newOrderTestEnv(t)
	ctx := context.Background()

	// The cart price drifted inside the tolerance of the live 200.0
	require.NoError(t, store.Save(ctx, &models.Cart{
		UserID: "user-1",
		Items: []models.CartItem{
			{ProductID: "prod-1", Name: "Laptop", Price: 199.995, Quantity: 3},
		},
	}))

	summary, _, err := orderSvc.Checkout(ctx, "user-1", services.CheckoutRequest{
		AddressID:     "addr-1",
		PaymentMethod: "cod",
	})
	require.NoError(t, err)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, "id = ?", summary.ID).Error)
	require.Len(t, order.Items, 1)

	// The order line snapshots the live price, not the drifted cart
	// price, so the persisted total equals the sum of the lines
	assert.Equal(t, 200.0, order.Items[0].Price)
	var lineSum float64
	for _, item := range order.Items {
		lineSum += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, lineSum+order.ShippingCost+order.VATAmount, order.TotalAmount)
	assert.Equal(t, 600.0, order.TotalAmount)
}

func TestOrderService_Checkout_FlatRateShipping(t *testing.T) {
	orderSvc, store, db := newOrderTestEnv(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Cart{
		UserID: "user-1",
		Items: []models.CartItem{
			{ProductID: "prod-2", Name: "Mouse", Price: 100.0, Quantity: 2},
		},
	}))

	summary, _, err := orderSvc.Checkout(ctx, "user-1", services.CheckoutRequest{
		AddressID:     "addr-1",
		PaymentMethod: "cod",
	})
	require.NoError(t, err)
	assert.Equal(t, 299.0, summary.TotalAmount)

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", summary.ID).Error)
	assert.Equal(t, 99.0, order.ShippingCost)
	assert.Equal(t, 0.0, order.VATAmount)
}

func TestOrderService_Checkout_ValidationFailure(t *testing.T) {
	orderSvc, store, db := newOrderTestEnv(t)
	ctx := context.Background()

	// prod-2 only has 2 in stock
	require.NoError(t, store.Save(ctx, &models.Cart{
		UserID: "user-1",
		Items: []models.CartItem{
			{ProductID: "prod-2", Name: "Mouse", Price: 100.0, Quantity: 5},
		},
	}))

	_, validations, err := orderSvc.Checkout(ctx, "user-1", services.CheckoutRequest{
		AddressID:     "addr-1",
		PaymentMethod: "cod",
	})
	assert.ErrorIs(t, err, services.ErrCartValidation)
	require.Len(t, validations, 1)
	assert.Contains(t, validations[0].Reason, "insufficient stock")

	// Nothing persisted, stock untouched, cart kept for re-prompting
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", "prod-2").Error)
	assert.Equal(t, 2, product.Stock)
	cart, _ := store.Get(ctx, "user-1")
	assert.NotNil(t, cart)
}

func TestOrderService_Checkout_AddressOwnership(t *testing.T) {
	orderSvc, store, db := newOrderTestEnv(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Address{
		ID: "addr-other", UserID: "user-2", Recipient: "Siti", Phone: "0813",
		Street: "Jl. Sudirman 2", City: "Bandung", Province: "Jabar", PostalCode: "40111",
	}).Error)
	require.NoError(t, store.Save(ctx, &models.Cart{
		UserID: "user-1",
		Items:  []models.CartItem{{ProductID: "prod-1", Name: "Laptop", Price: 200.0, Quantity: 1}},
	}))

	_, _, err := orderSvc.Checkout(ctx, "user-1", services.CheckoutRequest{
		AddressID:     "addr-other",
		PaymentMethod: "cod",
	})
	assert.ErrorIs(t, err, services.ErrAddressOwnership)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	orderSvc, _, _ := newOrderTestEnv(t)

	_, _, err := orderSvc.Checkout(context.Background(), "user-1", services.CheckoutRequest{
		AddressID:     "addr-1",
		PaymentMethod: "cod",
	})
	assert.ErrorIs(t, err, services.ErrCartEmpty)
}

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{
		ID: "order-1", OrderNumber: "ORD-20250101-ABC123", UserID: "user-1",
		AddressID: "addr-1", TotalAmount: 299.0, ShippingCost: 99.0,
		Status: status, PaymentStatus: models.PaymentStatusPending, PaymentMethod: "cod",
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestOrderService_PaidWhilePendingAutoConfirms(t *testing.T) {
	orderSvc, _, db := newOrderTestEnv(t)
	seedOrder(t, db, models.OrderStatusPending)

	txID := "txn-42"
	order, err := orderSvc.UpdatePaymentStatus("order-1", models.PaymentStatusPaid, &txID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "txn-42", *order.TransactionID)
}

func TestOrderService_PaidWhileShippedKeepsStatus(t *testing.T) {
	orderSvc, _, db := newOrderTestEnv(t)
	seedOrder(t, db, models.OrderStatusShipped)

	order, err := orderSvc.UpdatePaymentStatus("order-1", models.PaymentStatusPaid, nil, nil)
	require.NoError(t, err)
	// The auto-confirm only applies to pending orders
	assert.Equal(t, models.OrderStatusShipped, order.Status)
}

func TestOrderService_DeliveredSetsDeliveryDate(t *testing.T) {
	orderSvc, _, db := newOrderTestEnv(t)
	seedOrder(t, db, models.OrderStatusShipped)

	order, err := orderSvc.UpdateStatus("order-1", models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)
	require.NotNil(t, order.DeliveredAt)
}

func TestOrderService_InvalidStatusRejected(t *testing.T) {
	orderSvc, _, db := newOrderTestEnv(t)
	seedOrder(t, db, models.OrderStatusPending)

	_, err := orderSvc.UpdateStatus("order-1", "teleported")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	_, err = orderSvc.UpdatePaymentStatus("order-1", "maybe", nil, nil)
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestOrderService_CancelOrder(t *testing.T) {
	orderSvc, _, db := newOrderTestEnv(t)
	seedOrder(t, db, models.OrderStatusPending)

	// Another user cannot cancel it
	_, err := orderSvc.CancelOrder("user-2", "order-1")
	assert.ErrorIs(t, err, services.ErrOrderOwnership)

	// The owner can, while pending
	order, err := orderSvc.CancelOrder("user-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	// But not twice
	_, err = orderSvc.CancelOrder("user-1", "order-1")
	assert.ErrorIs(t, err, services.ErrNotCancellable)
}

func TestOrderService_AdminListFilters(t *testing.T) {
	orderSvc, _, db := newOrderTestEnv(t)
	seedOrder(t, db, models.OrderStatusPending)
	require.NoError(t, db.Create(&models.Order{
		ID: "order-2", OrderNumber: "ORD-20250102-DEF456", UserID: "user-1",
		AddressID: "addr-1", TotalAmount: 600.0,
		Status: models.OrderStatusDelivered, PaymentStatus: models.PaymentStatusPaid, PaymentMethod: "card",
	}).Error)

	orders, total, err := orderSvc.List(repositories.OrderFilter{Status: "delivered"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, "order-2", orders[0].ID)

	// Search matches order number and the customer's name/email
	orders, total, err = orderSvc.List(repositories.OrderFilter{Search: "DEF456"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	orders, total, err = orderSvc.List(repositories.OrderFilter{Search: "budi"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	// Unknown filter values are rejected, not silently ignored
	_, _, err = orderSvc.List(repositories.OrderFilter{Status: "bogus"})
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestOrderService_AdminDeleteRemovesItems(t *testing.T) {
	orderSvc, store, db := newOrderTestEnv(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Cart{
		UserID: "user-1",
		Items:  []models.CartItem{{ProductID: "prod-1", Name: "Laptop", Price: 200.0, Quantity: 1}},
	}))
	summary, _, err := orderSvc.Checkout(ctx, "user-1", services.CheckoutRequest{
		AddressID: "addr-1", PaymentMethod: "cod",
	})
	require.NoError(t, err)

	require.NoError(t, orderSvc.Delete(summary.ID))

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

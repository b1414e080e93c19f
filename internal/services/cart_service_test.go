package services_test

import (
	"context"
	"fmt"
	"testing"

	"belanja/internal/cartstore"
	"belanja/internal/models"
	"belanja/internal/repositories"
	"belanja/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(filter repositories.ProductFilter) ([]models.Product, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(slug string) (*models.Product, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     float64
		wantShipping float64
		wantTotal    float64
	}{
		{"above free shipping threshold", 600, 0, 600},
		{"below free shipping threshold", 200, 99, 299},
		{"exactly at threshold ships free", 500, 0, 500},
		{"just under threshold pays flat rate", 499.99, 99, 598.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := services.ComputeTotals(tt.subtotal)
			assert.Equal(t, tt.subtotal, totals.Subtotal)
			assert.Equal(t, tt.wantShipping, totals.ShippingCost)
			assert.Equal(t, 0.0, totals.VATAmount)
			assert.InDelta(t, tt.wantTotal, totals.TotalAmount, 0.001)
			// The grand total is always the sum of its parts
			assert.InDelta(t, totals.Subtotal+totals.ShippingCost+totals.VATAmount, totals.TotalAmount, 0.001)
		})
	}
}

func TestCartService_Validate(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCartService(cartstore.NewMockCartStore(), mockRepo)

	laptop := &models.Product{ID: "prod-1", Name: "Laptop", Price: 200.0, Stock: 10}
	mouse := &models.Product{ID: "prod-2", Name: "Mouse", Price: 100.0, Stock: 5}

	// All items valid: totals computed
	mockRepo.On("GetByID", "prod-1").Return(laptop, nil).Once()
	results, totals, err := service.Validate(context.Background(), []models.CartItem{
		{ProductID: "prod-1", Price: 200.0, Quantity: 3},
	})
	assert.NoError(t, err)
	assert.True(t, results[0].Valid)
	assert.Equal(t, 600.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.ShippingCost)
	assert.Equal(t, 600.0, totals.TotalAmount)
	mockRepo.AssertExpectations(t)

	// Insufficient stock fails the batch with an itemized reason
	mockRepo.On("GetByID", "prod-2").Return(mouse, nil).Once()
	results, totals, err = service.Validate(context.Background(), []models.CartItem{
		{ProductID: "prod-2", Price: 100.0, Quantity: 6},
	})
	assert.ErrorIs(t, err, services.ErrCartValidation)
	assert.Nil(t, totals)
	assert.False(t, results[0].Valid)
	assert.Contains(t, results[0].Reason, "insufficient stock")
	mockRepo.AssertExpectations(t)

	// Price drift beyond tolerance fails
	mockRepo.On("GetByID", "prod-2").Return(mouse, nil).Once()
	results, _, err = service.Validate(context.Background(), []models.CartItem{
		{ProductID: "prod-2", Price: 99.90, Quantity: 1},
	})
	assert.ErrorIs(t, err, services.ErrCartValidation)
	assert.False(t, results[0].Valid)
	assert.Contains(t, results[0].Reason, "price changed")
	mockRepo.AssertExpectations(t)

	// Drift within the 0.01 tolerance passes
	mockRepo.On("GetByID", "prod-2").Return(mouse, nil).Once()
	results, totals, err = service.Validate(context.Background(), []models.CartItem{
		{ProductID: "prod-2", Price: 100.005, Quantity: 2},
	})
	assert.NoError(t, err)
	assert.True(t, results[0].Valid)
	// Subtotal and the reported per-item price use the live product
	// price, not the submitted one
	assert.Equal(t, 100.0, results[0].Price)
	assert.Equal(t, 200.0, totals.Subtotal)
	assert.Equal(t, 99.0, totals.ShippingCost)
	assert.Equal(t, 299.0, totals.TotalAmount)
	mockRepo.AssertExpectations(t)

	// One bad item fails the whole batch; the good item still reports valid
	mockRepo.On("GetByID", "prod-1").Return(laptop, nil).Once()
	mockRepo.On("GetByID", "prod-404").Return(nil, fmt.Errorf("product with ID prod-404 not found")).Once()
	results, totals, err = service.Validate(context.Background(), []models.CartItem{
		{ProductID: "prod-1", Price: 200.0, Quantity: 1},
		{ProductID: "prod-404", Price: 10.0, Quantity: 1},
	})
	assert.ErrorIs(t, err, services.ErrCartValidation)
	assert.Nil(t, totals)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
	assert.Contains(t, results[1].Reason, "not found")
	mockRepo.AssertExpectations(t)

	// Empty cart is rejected outright
	_, _, err = service.Validate(context.Background(), nil)
	assert.ErrorIs(t, err, services.ErrCartValidation)
}

func TestCartService_AddItem(t *testing.T) {
	mockRepo := new(MockProductRepository)
	store := cartstore.NewMockCartStore()
	service := services.NewCartService(store, mockRepo)

	product := &models.Product{
		ID: "prod-1", Name: "Keyboard", Price: 75.0, Stock: 25,
		Images: models.EncodeImages([]string{"https://img.example.com/kb.jpg"}),
	}

	mockRepo.On("GetByID", "prod-1").Return(product, nil).Twice()

	cart, err := service.AddItem(context.Background(), "user-1", "prod-1", 2)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 75.0, cart.Items[0].Price)
	assert.Equal(t, "Keyboard", cart.Items[0].Name)
	assert.Equal(t, "https://img.example.com/kb.jpg", cart.Items[0].Image)

	// Adding the same product merges quantities instead of duplicating lines
	cart, err = service.AddItem(context.Background(), "user-1", "prod-1", 3)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	mockRepo.AssertExpectations(t)

	// Requesting more than stock is rejected
	mockRepo.On("GetByID", "prod-1").Return(product, nil).Once()
	_, err = service.AddItem(context.Background(), "user-2", "prod-1", 26)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
	mockRepo.AssertExpectations(t)
}

func TestCartService_AddItem_MergedQuantityChecksStock(t *testing.T) {
	mockRepo := new(MockProductRepository)
	store := cartstore.NewMockCartStore()
	service := services.NewCartService(store, mockRepo)

	mouse := &models.Product{ID: "prod-2", Name: "Mouse", Price: 100.0, Stock: 5}
	mockRepo.On("GetByID", "prod-2").Return(mouse, nil)

	cart, err := service.AddItem(context.Background(), "user-1", "prod-2", 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// A second add that would push the merged line past stock fails,
	// even though the increment alone fits
	_, err = service.AddItem(context.Background(), "user-1", "prod-2", 3)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
	assert.Contains(t, err.Error(), "requested: 6")

	// The cart keeps the original line untouched
	cart, err = service.GetCart(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// Filling up to exactly the available stock still works
	cart, err = service.AddItem(context.Background(), "user-1", "prod-2", 2)
	assert.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	mockRepo := new(MockProductRepository)
	store := cartstore.NewMockCartStore()
	service := services.NewCartService(store, mockRepo)

	err := store.Save(context.Background(), &models.Cart{
		UserID: "user-1",
		Items: []models.CartItem{
			{ProductID: "prod-1", Name: "Laptop", Price: 1200.0, Quantity: 1},
			{ProductID: "prod-2", Name: "Mouse", Price: 25.0, Quantity: 2},
		},
	})
	assert.NoError(t, err)

	cart, err := service.UpdateItemQuantity(context.Background(), "user-1", "prod-2", 4)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 4, cart.Items[1].Quantity)

	// Quantity zero removes the line
	cart, err = service.UpdateItemQuantity(context.Background(), "user-1", "prod-1", 0)
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "prod-2", cart.Items[0].ProductID)

	// Unknown product is an error
	_, err = service.UpdateItemQuantity(context.Background(), "user-1", "prod-404", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not in cart")
}

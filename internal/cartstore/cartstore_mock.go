package cartstore

import (
	"context"
	"sync"
	"time"

	"belanja/internal/models"
)

// MockCartStore is an in-memory implementation of CartStore, used in tests
// and local development without a Redis instance.
type MockCartStore struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
}

// NewMockCartStore creates a new instance of MockCartStore.
func NewMockCartStore() *MockCartStore {
	return &MockCartStore{
		carts: make(map[string]models.Cart),
	}
}

// Get returns the user's cart, or (nil, nil) when none exists.
func (s *MockCartStore) Get(_ context.Context, userID string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[userID]
	if !ok {
		return nil, nil
	}
	return &cart, nil
}

// Save overwrites the user's cart.
func (s *MockCartStore) Save(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart.UpdatedAt = time.Now()
	s.carts[cart.UserID] = *cart
	return nil
}

// Delete removes the user's cart entry.
func (s *MockCartStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}

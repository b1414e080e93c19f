package cartstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"belanja/internal/models"

	"github.com/go-redis/redis/v8"
)

// cartTTL bounds how long an abandoned cart survives in the store.
const cartTTL = 7 * 24 * time.Hour

// CartStore defines the interface for the transient shopping cart store.
// Get returns (nil, nil) when the user has no cart.
type CartStore interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, userID string) error
}

// RedisCartStore holds carts in Redis as JSON blobs keyed by user ID.
type RedisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a new RedisCartStore.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{
		client: client,
	}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart-%s", userID)
}

// Get retrieves the user's cart. A missing key is not an error; it just
// means the user has no cart yet.
func (s *RedisCartStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// Save overwrites the user's cart and refreshes its TTL.
func (s *RedisCartStore) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart for user %s: %w", cart.UserID, err)
	}
	if err := s.client.Set(ctx, cartKey(cart.UserID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart for user %s: %w", cart.UserID, err)
	}
	return nil
}

// Delete removes the user's cart entry. Deleting a missing cart is a no-op.
func (s *RedisCartStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart for user %s: %w", userID, err)
	}
	return nil
}

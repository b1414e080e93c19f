package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	productListKey = "catalog:products:default"
	catalogTTL     = 5 * time.Minute
)

// CatalogCache caches the rendered default product listing in Redis. It is
// invalidated on any product write and after checkout (stock changed). All
// methods are safe on a nil receiver so callers can run without a cache.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a new CatalogCache.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{
		client: client,
	}
}

// GetProductList returns the cached listing payload, or ok=false on a miss.
func (c *CatalogCache) GetProductList(ctx context.Context) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetProductList stores the listing payload. Failures are swallowed; the
// cache is an optimization, never a source of truth.
func (c *CatalogCache) SetProductList(ctx context.Context, data []byte) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, productListKey, data, catalogTTL)
}

// Invalidate drops the cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, productListKey)
}

package repositories

import "belanja/internal/models"

// ProductFilter narrows product listing queries.
type ProductFilter struct {
	BrandID      string
	CollectionID string
	Search       string
	FeaturedOnly bool
	Page         int
	Limit        int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(filter ProductFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

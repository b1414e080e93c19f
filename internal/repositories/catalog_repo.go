package repositories

import "belanja/internal/models"

// BrandRepository defines the interface for brand data access.
type BrandRepository interface {
	GetAll() ([]models.Brand, error)
	GetByID(id string) (*models.Brand, error)
	Create(brand *models.Brand) error
	Update(brand *models.Brand) error
	Delete(id string) error
}

// BillboardRepository defines the interface for billboard data access.
type BillboardRepository interface {
	GetAll(activeOnly bool) ([]models.Billboard, error)
	GetByID(id string) (*models.Billboard, error)
	Create(billboard *models.Billboard) error
	Update(billboard *models.Billboard) error
	Delete(id string) error
}

// CollectionRepository defines the interface for collection data access.
type CollectionRepository interface {
	GetAll() ([]models.Collection, error)
	GetByID(id string) (*models.Collection, error)
	Create(collection *models.Collection) error
	Update(collection *models.Collection) error
	Delete(id string) error
}

// StoreRepository defines the interface for store record data access.
type StoreRepository interface {
	GetAll() ([]models.Store, error)
	GetByID(id string) (*models.Store, error)
	Create(store *models.Store) error
	Update(store *models.Store) error
	Delete(id string) error
}

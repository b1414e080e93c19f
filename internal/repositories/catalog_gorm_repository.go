package repositories

import (
	"fmt"

	"belanja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBrandRepository is a GORM implementation of BrandRepository.
type GORMBrandRepository struct {
	db *gorm.DB
}

// NewGORMBrandRepository creates a new instance of GORMBrandRepository.
func NewGORMBrandRepository(db *gorm.DB) *GORMBrandRepository {
	return &GORMBrandRepository{db: db}
}

func (r *GORMBrandRepository) GetAll() ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Order("name ASC").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get all brands: %w", err)
	}
	return brands, nil
}

func (r *GORMBrandRepository) GetByID(id string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("brand with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get brand by ID %s: %w", id, err)
	}
	return &brand, nil
}

func (r *GORMBrandRepository) Create(brand *models.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	if err := r.db.Create(brand).Error; err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

func (r *GORMBrandRepository) Update(brand *models.Brand) error {
	res := r.db.Save(brand)
	if res.Error != nil {
		return fmt.Errorf("failed to update brand: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("brand with ID %s %w for update", brand.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMBrandRepository) Delete(id string) error {
	res := r.db.Delete(&models.Brand{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("brand with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}

// GORMBillboardRepository is a GORM implementation of BillboardRepository.
type GORMBillboardRepository struct {
	db *gorm.DB
}

// NewGORMBillboardRepository creates a new instance of GORMBillboardRepository.
func NewGORMBillboardRepository(db *gorm.DB) *GORMBillboardRepository {
	return &GORMBillboardRepository{db: db}
}

func (r *GORMBillboardRepository) GetAll(activeOnly bool) ([]models.Billboard, error) {
	query := r.db.Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var billboards []models.Billboard
	if err := query.Find(&billboards).Error; err != nil {
		return nil, fmt.Errorf("failed to get all billboards: %w", err)
	}
	return billboards, nil
}

func (r *GORMBillboardRepository) GetByID(id string) (*models.Billboard, error) {
	var billboard models.Billboard
	if err := r.db.First(&billboard, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("billboard with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get billboard by ID %s: %w", id, err)
	}
	return &billboard, nil
}

func (r *GORMBillboardRepository) Create(billboard *models.Billboard) error {
	if billboard.ID == "" {
		billboard.ID = uuid.New().String()
	}
	if err := r.db.Create(billboard).Error; err != nil {
		return fmt.Errorf("failed to create billboard: %w", err)
	}
	return nil
}

func (r *GORMBillboardRepository) Update(billboard *models.Billboard) error {
	res := r.db.Save(billboard)
	if res.Error != nil {
		return fmt.Errorf("failed to update billboard: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("billboard with ID %s %w for update", billboard.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMBillboardRepository) Delete(id string) error {
	res := r.db.Delete(&models.Billboard{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete billboard: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("billboard with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}

// GORMCollectionRepository is a GORM implementation of CollectionRepository.
type GORMCollectionRepository struct {
	db *gorm.DB
}

// NewGORMCollectionRepository creates a new instance of GORMCollectionRepository.
func NewGORMCollectionRepository(db *gorm.DB) *GORMCollectionRepository {
	return &GORMCollectionRepository{db: db}
}

func (r *GORMCollectionRepository) GetAll() ([]models.Collection, error) {
	var collections []models.Collection
	if err := r.db.Preload("Billboard").Order("name ASC").Find(&collections).Error; err != nil {
		return nil, fmt.Errorf("failed to get all collections: %w", err)
	}
	return collections, nil
}

func (r *GORMCollectionRepository) GetByID(id string) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.Preload("Billboard").First(&collection, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("collection with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get collection by ID %s: %w", id, err)
	}
	return &collection, nil
}

func (r *GORMCollectionRepository) Create(collection *models.Collection) error {
	if collection.ID == "" {
		collection.ID = uuid.New().String()
	}
	if err := r.db.Create(collection).Error; err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

func (r *GORMCollectionRepository) Update(collection *models.Collection) error {
	res := r.db.Omit("Billboard").Save(collection)
	if res.Error != nil {
		return fmt.Errorf("failed to update collection: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("collection with ID %s %w for update", collection.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMCollectionRepository) Delete(id string) error {
	res := r.db.Delete(&models.Collection{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete collection: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("collection with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{db: db}
}

func (r *GORMStoreRepository) GetAll() ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.Order("name ASC").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to get all stores: %w", err)
	}
	return stores, nil
}

func (r *GORMStoreRepository) GetByID(id string) (*models.Store, error) {
	var store models.Store
	if err := r.db.First(&store, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("store with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store by ID %s: %w", id, err)
	}
	return &store, nil
}

func (r *GORMStoreRepository) Create(store *models.Store) error {
	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	if err := r.db.Create(store).Error; err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

func (r *GORMStoreRepository) Update(store *models.Store) error {
	res := r.db.Save(store)
	if res.Error != nil {
		return fmt.Errorf("failed to update store: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store with ID %s %w for update", store.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMStoreRepository) Delete(id string) error {
	res := r.db.Delete(&models.Store{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete store: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("store with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}

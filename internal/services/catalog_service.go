package services

import (
	"context"

	"belanja/internal/cache"
	"belanja/internal/models"
	"belanja/internal/repositories"
)

// CatalogService handles the admin-managed catalog entities surrounding
// products: brands, billboards, collections, and store records.
type CatalogService struct {
	brandRepo      repositories.BrandRepository
	billboardRepo  repositories.BillboardRepository
	collectionRepo repositories.CollectionRepository
	storeRepo      repositories.StoreRepository
	catalog        *cache.CatalogCache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	brandRepo repositories.BrandRepository,
	billboardRepo repositories.BillboardRepository,
	collectionRepo repositories.CollectionRepository,
	storeRepo repositories.StoreRepository,
	catalog *cache.CatalogCache,
) *CatalogService {
	return &CatalogService{
		brandRepo:      brandRepo,
		billboardRepo:  billboardRepo,
		collectionRepo: collectionRepo,
		storeRepo:      storeRepo,
		catalog:        catalog,
	}
}

// --- Brands ---

func (s *CatalogService) GetBrands() ([]models.Brand, error) {
	return s.brandRepo.GetAll()
}

func (s *CatalogService) CreateBrand(ctx context.Context, brand *models.Brand) error {
	if err := s.brandRepo.Create(brand); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

func (s *CatalogService) UpdateBrand(ctx context.Context, brand *models.Brand) error {
	if err := s.brandRepo.Update(brand); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteBrand(ctx context.Context, id string) error {
	if err := s.brandRepo.Delete(id); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

// --- Billboards ---

// GetBillboards lists billboards; the storefront passes activeOnly.
func (s *CatalogService) GetBillboards(activeOnly bool) ([]models.Billboard, error) {
	return s.billboardRepo.GetAll(activeOnly)
}

func (s *CatalogService) CreateBillboard(billboard *models.Billboard) error {
	return s.billboardRepo.Create(billboard)
}

func (s *CatalogService) UpdateBillboard(billboard *models.Billboard) error {
	return s.billboardRepo.Update(billboard)
}

func (s *CatalogService) DeleteBillboard(id string) error {
	return s.billboardRepo.Delete(id)
}

// --- Collections ---

func (s *CatalogService) GetCollections() ([]models.Collection, error) {
	return s.collectionRepo.GetAll()
}

func (s *CatalogService) GetCollectionByID(id string) (*models.Collection, error) {
	return s.collectionRepo.GetByID(id)
}

// CreateCollection creates a collection, verifying the referenced
// billboard exists when one is given.
func (s *CatalogService) CreateCollection(ctx context.Context, collection *models.Collection) error {
	if collection.BillboardID != nil {
		if _, err := s.billboardRepo.GetByID(*collection.BillboardID); err != nil {
			return err
		}
	}
	if err := s.collectionRepo.Create(collection); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

func (s *CatalogService) UpdateCollection(ctx context.Context, collection *models.Collection) error {
	if collection.BillboardID != nil {
		if _, err := s.billboardRepo.GetByID(*collection.BillboardID); err != nil {
			return err
		}
	}
	if err := s.collectionRepo.Update(collection); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

func (s *CatalogService) DeleteCollection(ctx context.Context, id string) error {
	if err := s.collectionRepo.Delete(id); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

// --- Stores ---

func (s *CatalogService) GetStores() ([]models.Store, error) {
	return s.storeRepo.GetAll()
}

func (s *CatalogService) CreateStore(store *models.Store) error {
	return s.storeRepo.Create(store)
}

func (s *CatalogService) UpdateStore(store *models.Store) error {
	return s.storeRepo.Update(store)
}

func (s *CatalogService) DeleteStore(id string) error {
	return s.storeRepo.Delete(id)
}

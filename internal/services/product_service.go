package services

import (
	"context"
	"encoding/json"
	"strings"

	"belanja/internal/cache"
	"belanja/internal/models"
	"belanja/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo    repositories.ProductRepository
	catalog *cache.CatalogCache
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, catalog *cache.CatalogCache) *ProductService {
	return &ProductService{
		repo:    repo,
		catalog: catalog,
	}
}

// ProductPage is a paginated product listing.
type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// GetProducts retrieves products matching the filter. The unfiltered first
// page is served from the catalog cache when possible; everything else
// goes straight to the database.
func (s *ProductService) GetProducts(ctx context.Context, filter repositories.ProductFilter) (*ProductPage, error) {
	cacheable := filter.BrandID == "" && filter.CollectionID == "" &&
		filter.Search == "" && !filter.FeaturedOnly &&
		filter.Page <= 1 && filter.Limit == 0

	if cacheable {
		if data, ok := s.catalog.GetProductList(ctx); ok {
			var page ProductPage
			if err := json.Unmarshal(data, &page); err == nil {
				return &page, nil
			}
		}
	}

	products, total, err := s.repo.GetAll(filter)
	if err != nil {
		return nil, err
	}
	page := &ProductPage{
		Products: products,
		Total:    total,
		Page:     maxInt(filter.Page, 1),
		Limit:    filter.Limit,
	}

	if cacheable {
		if data, err := json.Marshal(page); err == nil {
			s.catalog.SetProductList(ctx, data)
		}
	}
	return page, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductBySlug retrieves a single product by its slug, for the
// storefront detail page.
func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	return s.repo.GetBySlug(slug)
}

// CreateProduct creates a new product, deriving a slug from the name when
// none is given, and invalidates the catalog cache.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.Slug == "" {
		product.Slug = slugify(product.Name)
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

// UpdateProduct updates an existing product and invalidates the catalog
// cache.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if product.Slug == "" {
		product.Slug = slugify(product.Name)
	}
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

// DeleteProduct deletes a product by its ID and invalidates the catalog
// cache.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.catalog.Invalidate(ctx)
	return nil
}

// slugify lowercases the name and replaces runs of non-alphanumerics with
// single hyphens.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"belanja/internal/cartstore"
	"belanja/internal/models"
	"belanja/internal/repositories"
)

// Pricing rules applied at validation and checkout. Orders below the free
// shipping threshold pay the flat rate; VAT is currently zero-rated.
const (
	FreeShippingThreshold = 500.0
	FlatShippingRate      = 99.0
	VATRate               = 0.0

	// PriceTolerance absorbs float rounding between the price the client
	// saw and the live product price. Anything larger is a real drift.
	PriceTolerance = 0.01
)

// ErrCartValidation marks a cart that failed validation; the itemized
// reasons travel alongside it.
var ErrCartValidation = errors.New("cart validation failed")

// CartService handles business logic for the shopping cart: mutations
// against the cart store and validation against live product data.
type CartService struct {
	store       cartstore.CartStore
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(store cartstore.CartStore, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
	}
}

// GetCart returns the user's cart, creating an empty one in memory (not in
// the store) when none exists.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID}
	}
	return cart, nil
}

// AddItem adds a product to the user's cart, merging quantities when the
// product is already present. Name, price, and image are snapshotted from
// the live product record, not trusted from the client.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The stock check covers the merged line, not just the increment, so
	// repeated adds cannot grow a line past the available stock.
	requested := quantity
	for _, item := range cart.Items {
		if item.ProductID == productID {
			requested += item.Quantity
			break
		}
	}
	if product.Stock < requested {
		return nil, fmt.Errorf("insufficient stock for product %s (requested: %d, available: %d)",
			product.Name, requested, product.Stock)
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			cart.Items[i].Price = product.Price
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: productID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
			Image:     firstImage(product.Images),
		})
	}

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItemQuantity sets the quantity for a product in the cart. A
// quantity of zero removes the line.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}

	cart, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, fmt.Errorf("cart for user %s %w", userID, repositories.ErrNotFound)
	}

	found := false
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID == productID {
			found = true
			if quantity == 0 {
				continue
			}
			item.Quantity = quantity
		}
		items = append(items, item)
	}
	if !found {
		return nil, fmt.Errorf("product %s not in cart", productID)
	}
	cart.Items = items

	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops a product from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	return s.UpdateItemQuantity(ctx, userID, productID, 0)
}

// Clear deletes the user's cart entry from the store.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, userID)
}

// Validate checks every item against the live product record: the product
// must exist, have enough stock, and its price must match what the client
// submitted within PriceTolerance. Any invalid item fails the whole batch;
// the caller gets per-item reasons either way. Totals are only returned
// when the batch is valid.
func (s *CartService) Validate(ctx context.Context, items []models.CartItem) ([]models.ItemValidation, *models.CartTotals, error) {
	if len(items) == 0 {
		return nil, nil, fmt.Errorf("%w: cart is empty", ErrCartValidation)
	}

	results := make([]models.ItemValidation, 0, len(items))
	valid := true
	var subtotal float64

	for _, item := range items {
		result := models.ItemValidation{ProductID: item.ProductID, Valid: true}

		product, err := s.productRepo.GetByID(item.ProductID)
		switch {
		case err != nil:
			result.Valid = false
			result.Reason = fmt.Sprintf("product %s not found", item.ProductID)
		case item.Quantity < 1:
			result.Valid = false
			result.Reason = "quantity must be at least 1"
		case product.Stock < item.Quantity:
			result.Valid = false
			result.Reason = fmt.Sprintf("insufficient stock (requested: %d, available: %d)", item.Quantity, product.Stock)
		case math.Abs(product.Price-item.Price) > PriceTolerance:
			result.Valid = false
			result.Reason = fmt.Sprintf("price changed from %.2f to %.2f", item.Price, product.Price)
		default:
			result.Price = product.Price
			subtotal += product.Price * float64(item.Quantity)
		}

		if !result.Valid {
			valid = false
		}
		results = append(results, result)
	}

	if !valid {
		return results, nil, ErrCartValidation
	}
	totals := ComputeTotals(subtotal)
	return results, &totals, nil
}

// ComputeTotals derives the money breakdown from a subtotal: flat-rate
// shipping below the free threshold, zero-rated VAT, and the grand total.
func ComputeTotals(subtotal float64) models.CartTotals {
	shipping := 0.0
	if subtotal < FreeShippingThreshold {
		shipping = FlatShippingRate
	}
	vat := subtotal * VATRate
	return models.CartTotals{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		VATAmount:    vat,
		TotalAmount:  subtotal + shipping + vat,
	}
}

// firstImage extracts the first URL from the product's JSON-encoded image
// list, for the cart line thumbnail.
func firstImage(images string) string {
	urls := models.DecodeImages(images)
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

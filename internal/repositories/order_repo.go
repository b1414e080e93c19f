package repositories

import (
	"errors"

	"belanja/internal/models"
)

// ErrInsufficientStock is returned when a checkout transaction cannot
// decrement a product's stock without going negative. The whole
// transaction rolls back when this happens.
var ErrInsufficientStock = errors.New("insufficient stock")

// OrderFilter narrows the admin order listing.
type OrderFilter struct {
	Status        string
	PaymentStatus string
	Search        string // matched against order number and user name/email
	Page          int
	Limit         int
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateWithItems atomically inserts the order and its items and
	// decrements product stock. Either everything persists or nothing does.
	CreateWithItems(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	List(filter OrderFilter) ([]models.Order, int64, error)
	Update(order *models.Order) error
	// Delete removes the order together with its items.
	Delete(id string) error
}

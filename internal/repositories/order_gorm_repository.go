package repositories

import (
	"fmt"

	"belanja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// CreateWithItems inserts the order and its items and decrements product
// stock inside a single database transaction. The stock decrement is a
// guarded UPDATE (stock >= quantity), so two concurrent checkouts against
// the same product serialize on the row and the loser rolls back instead
// of overselling.
func (r *GORMOrderRepository) CreateWithItems(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		for _, item := range order.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %s: %w", item.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %s", ErrInsufficientStock, item.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByID retrieves a single order with user, address, and item/product
// associations preloaded.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").
		Preload("User").Preload("Address").
		First(&order, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByUser retrieves all orders belonging to a user, newest first.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// List retrieves a filtered, paginated page of orders for the admin back
// office, newest first, with the total count before pagination. Free-text
// search matches the order number and the customer's name or email.
func (r *GORMOrderRepository) List(filter OrderFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("orders.payment_status = ?", filter.PaymentStatus)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Joins("LEFT JOIN users ON users.id = orders.user_id").
			Where("orders.order_number LIKE ? OR users.username LIKE ? OR users.full_name LIKE ? OR users.email LIKE ?",
				pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	var orders []models.Order
	err := query.Preload("Items").Preload("Items.Product").
		Preload("User").Preload("Address").
		Order("orders.created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

// Update persists changes to an existing order (status transitions,
// payment references, delivery date).
func (r *GORMOrderRepository) Update(order *models.Order) error {
	res := r.db.Omit("Items", "User", "Address").Save(order)
	if res.Error != nil {
		return fmt.Errorf("failed to update order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s %w for update", order.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the order and its items together in one transaction.
func (r *GORMOrderRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		res := tx.Delete(&models.Order{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order with ID %s %w for deletion", id, ErrNotFound)
		}
		return nil
	})
	return err
}

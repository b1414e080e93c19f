package repositories

import (
	"fmt"

	"belanja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{
		db: db,
	}
}

// GetByUser retrieves all addresses belonging to a user, default first.
func (r *GORMAddressRepository) GetByUser(userID string) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get addresses for user %s: %w", userID, err)
	}
	return addresses, nil
}

// GetByID retrieves a single address by its ID from the database.
func (r *GORMAddressRepository) GetByID(id string) (*models.Address, error) {
	var address models.Address
	if err := r.db.First(&address, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("address with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get address by ID %s: %w", id, err)
	}
	return &address, nil
}

// Create creates a new address in the database.
func (r *GORMAddressRepository) Create(address *models.Address) error {
	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	if err := r.db.Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// Update updates an existing address in the database.
func (r *GORMAddressRepository) Update(address *models.Address) error {
	res := r.db.Save(address)
	if res.Error != nil {
		return fmt.Errorf("failed to update address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with ID %s %w for update", address.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes an address by its ID from the database.
func (r *GORMAddressRepository) Delete(id string) error {
	res := r.db.Delete(&models.Address{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with ID %s %w for deletion", id, ErrNotFound)
	}
	return nil
}

// SetDefault unsets IsDefault on all the user's addresses and sets it on
// the target, in one transaction so at most one default survives.
func (r *GORMAddressRepository) SetDefault(userID, addressID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Address{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error
		if err != nil {
			return fmt.Errorf("failed to unset default addresses: %w", err)
		}

		res := tx.Model(&models.Address{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_default", true)
		if res.Error != nil {
			return fmt.Errorf("failed to set default address: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("address with ID %s %w for user %s", addressID, ErrNotFound, userID)
		}
		return nil
	})
}

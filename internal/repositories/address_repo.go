package repositories

import "belanja/internal/models"

// AddressRepository defines the interface for address data access.
type AddressRepository interface {
	GetByUser(userID string) ([]models.Address, error)
	GetByID(id string) (*models.Address, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(id string) error
	// SetDefault marks the address as the user's default, unsetting
	// IsDefault on all the user's other addresses in the same transaction.
	SetDefault(userID, addressID string) error
}

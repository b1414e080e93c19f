package services

import (
	"fmt"

	"belanja/internal/models"
	"belanja/internal/repositories"
)

// AddressService handles business logic for user shipping addresses.
type AddressService struct {
	repo repositories.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(repo repositories.AddressRepository) *AddressService {
	return &AddressService{
		repo: repo,
	}
}

// GetAddresses retrieves the user's addresses, default first.
func (s *AddressService) GetAddresses(userID string) ([]models.Address, error) {
	return s.repo.GetByUser(userID)
}

// CreateAddress creates a new address for the user. The user's first
// address automatically becomes the default.
func (s *AddressService) CreateAddress(userID string, address *models.Address) error {
	address.UserID = userID

	existing, err := s.repo.GetByUser(userID)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		address.IsDefault = true
	}
	return s.repo.Create(address)
}

// UpdateAddress updates one of the user's addresses, enforcing ownership.
func (s *AddressService) UpdateAddress(userID string, address *models.Address) error {
	existing, err := s.ownedAddress(userID, address.ID)
	if err != nil {
		return err
	}
	address.UserID = userID
	address.IsDefault = existing.IsDefault
	address.CreatedAt = existing.CreatedAt
	return s.repo.Update(address)
}

// DeleteAddress deletes one of the user's addresses, enforcing ownership.
func (s *AddressService) DeleteAddress(userID, addressID string) error {
	if _, err := s.ownedAddress(userID, addressID); err != nil {
		return err
	}
	return s.repo.Delete(addressID)
}

// SetDefault marks the address as the user's default. All the user's
// other addresses lose the flag in the same transaction, so at most one
// default exists at any time.
func (s *AddressService) SetDefault(userID, addressID string) error {
	if _, err := s.ownedAddress(userID, addressID); err != nil {
		return err
	}
	return s.repo.SetDefault(userID, addressID)
}

func (s *AddressService) ownedAddress(userID, addressID string) (*models.Address, error) {
	address, err := s.repo.GetByID(addressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, fmt.Errorf("%w: address %s", ErrAddressOwnership, addressID)
	}
	return address, nil
}

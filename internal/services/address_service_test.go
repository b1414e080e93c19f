package services_test

import (
	"testing"

	"belanja/internal/models"
	"belanja/internal/repositories"
	"belanja/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAddressTestEnv(t *testing.T) (*services.AddressService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Address{}))

	require.NoError(t, db.Create(&models.User{
		ID: "user-1", Username: "budi", Email: "budi@example.com", Password: "x",
	}).Error)

	return services.NewAddressService(repositories.NewGORMAddressRepository(db)), db
}

func newAddress(id string) *models.Address {
	return &models.Address{
		ID: id, Recipient: "Budi", Phone: "0812",
		Street: "Jl. Merdeka 1", City: "Jakarta", Province: "DKI", PostalCode: "10110",
	}
}

func countDefaults(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Count(&n).Error)
	return n
}

func TestAddressService_FirstAddressBecomesDefault(t *testing.T) {
	svc, db := newAddressTestEnv(t)

	require.NoError(t, svc.CreateAddress("user-1", newAddress("addr-1")))
	require.NoError(t, svc.CreateAddress("user-1", newAddress("addr-2")))

	addresses, err := svc.GetAddresses("user-1")
	require.NoError(t, err)
	require.Len(t, addresses, 2)

	// Listing puts the default first
	assert.Equal(t, "addr-1", addresses[0].ID)
	assert.True(t, addresses[0].IsDefault)
	assert.False(t, addresses[1].IsDefault)
	assert.EqualValues(t, 1, countDefaults(t, db, "user-1"))
}

func TestAddressService_SetDefaultUnsetsSiblings(t *testing.T) {
	svc, db := newAddressTestEnv(t)

	require.NoError(t, svc.CreateAddress("user-1", newAddress("addr-1")))
	require.NoError(t, svc.CreateAddress("user-1", newAddress("addr-2")))
	require.NoError(t, svc.CreateAddress("user-1", newAddress("addr-3")))

	require.NoError(t, svc.SetDefault("user-1", "addr-3"))

	var addr models.Address
	require.NoError(t, db.First(&addr, "id = ?", "addr-3").Error)
	assert.True(t, addr.IsDefault)
	assert.EqualValues(t, 1, countDefaults(t, db, "user-1"))

	// Re-pointing the default still leaves exactly one
	require.NoError(t, svc.SetDefault("user-1", "addr-2"))
	assert.EqualValues(t, 1, countDefaults(t, db, "user-1"))
}

func TestAddressService_Ownership(t *testing.T) {
	svc, db := newAddressTestEnv(t)

	require.NoError(t, db.Create(&models.User{
		ID: "user-2", Username: "siti", Email: "siti@example.com", Password: "x",
	}).Error)
	require.NoError(t, svc.CreateAddress("user-2", newAddress("addr-other")))

	assert.ErrorIs(t, svc.SetDefault("user-1", "addr-other"), services.ErrAddressOwnership)
	assert.ErrorIs(t, svc.DeleteAddress("user-1", "addr-other"), services.ErrAddressOwnership)

	updated := newAddress("addr-other")
	updated.City = "Surabaya"
	assert.ErrorIs(t, svc.UpdateAddress("user-1", updated), services.ErrAddressOwnership)
}

func TestAddressService_UpdateKeepsDefaultFlag(t *testing.T) {
	svc, db := newAddressTestEnv(t)

	require.NoError(t, svc.CreateAddress("user-1", newAddress("addr-1")))

	updated := newAddress("addr-1")
	updated.City = "Yogyakarta"
	require.NoError(t, svc.UpdateAddress("user-1", updated))

	var addr models.Address
	require.NoError(t, db.First(&addr, "id = ?", "addr-1").Error)
	assert.Equal(t, "Yogyakarta", addr.City)
	assert.True(t, addr.IsDefault)
}

func TestAddressService_Delete(t *testing.T) {
	svc, db := newAddressTestEnv(t)

	require.NoError(t, svc.CreateAddress("user-1", newAddress("addr-1")))
	require.NoError(t, svc.DeleteAddress("user-1", "addr-1"))

	var n int64
	require.NoError(t, db.Model(&models.Address{}).Where("user_id = ?", "user-1").Count(&n).Error)
	assert.Zero(t, n)
}

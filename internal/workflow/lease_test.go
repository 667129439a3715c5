package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homely/internal/models"
)

func TestCreateLease_MarksPropertyRented(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	tenant := createUser(t, db, "tenant", models.RoleTenant)
	property := createProperty(t, db, owner.ID)
	start, end := leaseDates()

	lease, err := CreateLease(db, owner.ID, LeaseInput{
		PropertyID:    property.ID,
		TenantID:      tenant.ID,
		StartDate:     start,
		EndDate:       end,
		DepositAmount: "12500",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeaseActive, lease.Status)
	assert.Equal(t, "/leases/sample.pdf", lease.DocumentURL)

	// Lease document and property flip must be visible together.
	var stored models.Lease
	require.NoError(t, db.First(&stored, "id = ?", lease.ID).Error)
	assert.Equal(t, models.LeaseActive, stored.Status)

	var updated models.Property
	require.NoError(t, db.First(&updated, "id = ?", property.ID).Error)
	assert.True(t, updated.Rented)
	require.NotNil(t, updated.TenantID)
	assert.Equal(t, tenant.ID, *updated.TenantID)
}

func TestCreateLease_RentedPropertyConflicts(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	tenant := createUser(t, db, "tenant", models.RoleTenant)
	other := createUser(t, db, "other", models.RoleTenant)
	property := createProperty(t, db, owner.ID)
	start, end := leaseDates()

	_, err := CreateLease(db, owner.ID, LeaseInput{
		PropertyID: property.ID, TenantID: tenant.ID, StartDate: start, EndDate: end,
	})
	require.NoError(t, err)

	_, err = CreateLease(db, owner.ID, LeaseInput{
		PropertyID: property.ID, TenantID: other.ID, StartDate: start, EndDate: end,
	})
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	require.NoError(t, db.Model(&models.Lease{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateLease_NotOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	intruder := createUser(t, db, "intruder", models.RoleLandowner)
	tenant := createUser(t, db, "tenant", models.RoleTenant)
	property := createProperty(t, db, owner.ID)
	start, end := leaseDates()

	_, err := CreateLease(db, intruder.ID, LeaseInput{
		PropertyID: property.ID, TenantID: tenant.ID, StartDate: start, EndDate: end,
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Nothing was written.
	var count int64
	require.NoError(t, db.Model(&models.Lease{}).Count(&count).Error)
	assert.Zero(t, count)
	var property2 models.Property
	require.NoError(t, db.First(&property2, "id = ?", property.ID).Error)
	assert.False(t, property2.Rented)
}

func TestCreateLease_BadDates(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	tenant := createUser(t, db, "tenant", models.RoleTenant)
	property := createProperty(t, db, owner.ID)
	start, end := leaseDates()

	_, err := CreateLease(db, owner.ID, LeaseInput{
		PropertyID: property.ID, TenantID: tenant.ID, StartDate: end, EndDate: start,
	})
	assert.True(t, IsValidation(err))
}

func TestTerminateLease_FreesProperty(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	tenant := createUser(t, db, "tenant", models.RoleTenant)
	property := createProperty(t, db, owner.ID)
	start, end := leaseDates()

	lease, err := CreateLease(db, owner.ID, LeaseInput{
		PropertyID: property.ID, TenantID: tenant.ID, StartDate: start, EndDate: end,
	})
	require.NoError(t, err)

	require.NoError(t, TerminateLease(db, owner.ID, lease.ID))

	var stored models.Lease
	require.NoError(t, db.First(&stored, "id = ?", lease.ID).Error)
	assert.Equal(t, models.LeaseTerminatedByLandowner, stored.Status)

	var updated models.Property
	require.NoError(t, db.First(&updated, "id = ?", property.ID).Error)
	assert.False(t, updated.Rented)
	assert.Nil(t, updated.TenantID)

	// Second termination is a no-op.
	require.NoError(t, TerminateLease(db, owner.ID, lease.ID))
}

func TestTerminateLease_WrongOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	intruder := createUser(t, db, "intruder", models.RoleLandowner)
	tenant := createUser(t, db, "tenant", models.RoleTenant)
	property := createProperty(t, db, owner.ID)
	start, end := leaseDates()

	lease, err := CreateLease(db, owner.ID, LeaseInput{
		PropertyID: property.ID, TenantID: tenant.ID, StartDate: start, EndDate: end,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, TerminateLease(db, intruder.ID, lease.ID), ErrUnauthorized)

	var stored models.Lease
	require.NoError(t, db.First(&stored, "id = ?", lease.ID).Error)
	assert.Equal(t, models.LeaseActive, stored.Status)
}

func TestRenewLease_AddsOneYearEachCall(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	tenant := createUser(t, db, "tenant", models.RoleTenant)
	property := createProperty(t, db, owner.ID)
	start, end := leaseDates()

	lease, err := CreateLease(db, owner.ID, LeaseInput{
		PropertyID: property.ID, TenantID: tenant.ID, StartDate: start, EndDate: end,
	})
	require.NoError(t, err)

	require.NoError(t, RenewLease(db, owner.ID, lease.ID))
	require.NoError(t, RenewLease(db, owner.ID, lease.ID))

	var stored models.Lease
	require.NoError(t, db.First(&stored, "id = ?", lease.ID).Error)
	assert.Equal(t, end.AddDate(2, 0, 0), stored.EndDate.UTC())
	assert.Equal(t, models.LeaseActive, stored.Status)
}

func TestRenewLease_TerminatedConflicts(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	tenant := createUser(t, db, "tenant", models.RoleTenant)
	property := createProperty(t, db, owner.ID)
	start, end := leaseDates()

	lease, err := CreateLease(db, owner.ID, LeaseInput{
		PropertyID: property.ID, TenantID: tenant.ID, StartDate: start, EndDate: end,
	})
	require.NoError(t, err)
	require.NoError(t, TerminateLease(db, owner.ID, lease.ID))

	assert.ErrorIs(t, RenewLease(db, owner.ID, lease.ID), ErrConflict)
}

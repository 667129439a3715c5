package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"homely/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Lease{},
		&models.TenantApplication{},
		&models.MaintenanceReport{},
		&models.ReportComment{},
		&models.Bill{},
		&models.Payment{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, role string) models.User {
	user := models.User{FullName: name, Email: name + "@example.com", Role: role, Status: models.UserActive}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createProperty(t *testing.T, db *gorm.DB, ownerID string) models.Property {
	property := models.Property{
		OwnerID:  ownerID,
		Title:    "Sea View Cottage",
		Location: "12 Marine Drive",
		Price:    "12500",
	}
	require.NoError(t, db.Create(&property).Error)
	return property
}

func leaseDates() (time.Time, time.Time) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

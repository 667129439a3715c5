package workflow

import (
	"errors"
	"fmt"
	"time"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"homely/internal/models"
)

// LeaseInput carries the fields needed to open a lease. The document URL
// defaults to the sample agreement when no file was uploaded.
type LeaseInput struct {
	PropertyID    string
	TenantID      string
	StartDate     time.Time
	EndDate       time.Time
	DepositAmount string
	DocumentURL   string
}

const defaultLeaseDocument = "/leases/sample.pdf"

// CreateLease opens an ACTIVE lease and marks the property rented in one
// transaction. Either both documents land or neither does.
func CreateLease(db *gorm.DB, ownerID string, input LeaseInput) (*models.Lease, error) {
	if input.PropertyID == "" || input.TenantID == "" {
		return nil, validationf("propertyId and tenantId are required")
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, validationf("lease end date must be after the start date")
	}
	if input.DocumentURL == "" {
		input.DocumentURL = defaultLeaseDocument
	}

	var property models.Property
	if err := db.First(&property, "id = ?", input.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property %s: %w", input.PropertyID, ErrNotFound)
		}
		return nil, err
	}
	if property.OwnerID != ownerID {
		return nil, fmt.Errorf("property %s is not owned by the caller: %w", property.ID, ErrUnauthorized)
	}
	if property.Rented {
		return nil, fmt.Errorf("property %s already has an active lease: %w", property.ID, ErrConflict)
	}

	var tenant models.User
	if err := db.First(&tenant, "id = ?", input.TenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tenant %s: %w", input.TenantID, ErrNotFound)
		}
		return nil, err
	}

	lease := models.Lease{
		PropertyID:    input.PropertyID,
		TenantID:      input.TenantID,
		LandownerID:   ownerID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		DepositAmount: input.DepositAmount,
		DocumentURL:   input.DocumentURL,
		Status:        models.LeaseActive,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lease).Error; err != nil {
			return err
		}
		return tx.Model(&models.Property{}).Where("id = ?", input.PropertyID).
			Updates(map[string]interface{}{
				"rented":    true,
				"tenant_id": input.TenantID,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"lease":    lease.ID,
		"property": lease.PropertyID,
		"tenant":   lease.TenantID,
	}).Info("lease created")
	return &lease, nil
}

// TerminateLease closes a lease and frees the property in one
// transaction. Terminating an already terminated lease is a no-op.
func TerminateLease(db *gorm.DB, ownerID, leaseID string) error {
	var lease models.Lease
	if err := db.First(&lease, "id = ?", leaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lease %s: %w", leaseID, ErrNotFound)
		}
		return err
	}
	if lease.LandownerID != ownerID {
		return fmt.Errorf("lease %s does not belong to the caller: %w", leaseID, ErrUnauthorized)
	}
	if lease.Status != models.LeaseActive {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Lease{}).Where("id = ?", leaseID).
			Update("status", models.LeaseTerminatedByLandowner).Error; err != nil {
			return err
		}
		return tx.Model(&models.Property{}).Where("id = ?", lease.PropertyID).
			Updates(map[string]interface{}{
				"rented":    false,
				"tenant_id": nil,
			}).Error
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"lease":    leaseID,
		"property": lease.PropertyID,
	}).Info("lease terminated")
	return nil
}

// RenewLease extends an ACTIVE lease by one year. Not idempotent: each
// call adds a year.
func RenewLease(db *gorm.DB, ownerID, leaseID string) error {
	var lease models.Lease
	if err := db.First(&lease, "id = ?", leaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lease %s: %w", leaseID, ErrNotFound)
		}
		return err
	}
	if lease.LandownerID != ownerID {
		return fmt.Errorf("lease %s does not belong to the caller: %w", leaseID, ErrUnauthorized)
	}
	if lease.Status != models.LeaseActive {
		return fmt.Errorf("only active leases can be renewed: %w", ErrConflict)
	}

	return db.Model(&models.Lease{}).Where("id = ?", leaseID).
		Update("end_date", lease.EndDate.AddDate(1, 0, 0)).Error
}

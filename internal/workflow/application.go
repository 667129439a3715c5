package workflow

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"homely/internal/models"
)

// ReviewApplication moves a tenant application to Approved or Rejected.
// Ownership is checked through the application's property. Re-applying
// the same decision is a no-op.
func ReviewApplication(db *gorm.DB, ownerID, applicationID, decision string) error {
	if decision != models.ApplicationApproved && decision != models.ApplicationRejected {
		return validationf("invalid application decision %q", decision)
	}

	var app models.TenantApplication
	if err := db.First(&app, "id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("application %s: %w", applicationID, ErrNotFound)
		}
		return err
	}

	var property models.Property
	if err := db.First(&property, "id = ?", app.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("property %s: %w", app.PropertyID, ErrNotFound)
		}
		return err
	}
	if property.OwnerID != ownerID {
		return fmt.Errorf("application %s is not for a property owned by the caller: %w", applicationID, ErrUnauthorized)
	}

	if app.Status == decision {
		return nil
	}

	return db.Model(&models.TenantApplication{}).Where("id = ?", applicationID).
		Update("status", decision).Error
}

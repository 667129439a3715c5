package workflow

import (
	"errors"
	"fmt"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"homely/internal/models"
)

// DeleteProperty removes a property unless an active lease still
// references it.
func DeleteProperty(db *gorm.DB, ownerID, propertyID string) error {
	var property models.Property
	if err := db.First(&property, "id = ?", propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("property %s: %w", propertyID, ErrNotFound)
		}
		return err
	}
	if property.OwnerID != ownerID {
		return fmt.Errorf("property %s is not owned by the caller: %w", propertyID, ErrUnauthorized)
	}

	var active int64
	if err := db.Model(&models.Lease{}).
		Where("property_id = ? AND status = ?", propertyID, models.LeaseActive).
		Count(&active).Error; err != nil {
		return err
	}
	if active > 0 {
		return fmt.Errorf("property has one or more active leases, terminate the lease(s) first: %w", ErrConflict)
	}

	if err := db.Delete(&models.Property{}, "id = ?", propertyID).Error; err != nil {
		return err
	}

	logrus.WithField("property", propertyID).Info("property deleted")
	return nil
}

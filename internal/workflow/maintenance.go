package workflow

import (
	"errors"
	"fmt"

	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"homely/internal/models"
)

// AssignCaretaker puts a report IN_PROGRESS and appends the audit comment
// in the same transaction. Assigning the same caretaker again is a no-op.
func AssignCaretaker(db *gorm.DB, ownerID, ownerName, reportID, caretakerID string) error {
	if caretakerID == "" {
		return validationf("caretakerId is required")
	}

	var report models.MaintenanceReport
	if err := db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("report %s: %w", reportID, ErrNotFound)
		}
		return err
	}
	if report.LandownerID != ownerID {
		return fmt.Errorf("report %s does not belong to the caller: %w", reportID, ErrUnauthorized)
	}
	if report.AssignedCaretakerID != nil && *report.AssignedCaretakerID == caretakerID &&
		report.Status == models.ReportInProgress {
		return nil
	}

	caretakerName := "Unknown"
	var caretaker models.User
	if err := db.First(&caretaker, "id = ?", caretakerID).Error; err == nil {
		caretakerName = caretaker.FullName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if ownerName == "" {
		ownerName = "System"
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MaintenanceReport{}).Where("id = ?", reportID).
			Updates(map[string]interface{}{
				"assigned_caretaker_id": caretakerID,
				"status":                models.ReportInProgress,
			}).Error; err != nil {
			return err
		}
		comment := models.ReportComment{
			ReportID:   reportID,
			AuthorID:   ownerID,
			AuthorName: ownerName,
			Text:       fmt.Sprintf("Task assigned to %s.", caretakerName),
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"report":    reportID,
		"caretaker": caretakerID,
	}).Info("caretaker assigned")
	return nil
}

// UpdateReportStatus applies a manual board move. Setting the current
// status again is a no-op.
func UpdateReportStatus(db *gorm.DB, ownerID, reportID, status string) error {
	switch status {
	case models.ReportPending, models.ReportInProgress, models.ReportResolved:
	default:
		return validationf("invalid report status %q", status)
	}

	var report models.MaintenanceReport
	if err := db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("report %s: %w", reportID, ErrNotFound)
		}
		return err
	}
	if report.LandownerID != ownerID {
		return fmt.Errorf("report %s does not belong to the caller: %w", reportID, ErrUnauthorized)
	}
	if report.Status == status {
		return nil
	}

	return db.Model(&models.MaintenanceReport{}).Where("id = ?", reportID).
		Update("status", status).Error
}

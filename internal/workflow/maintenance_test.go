package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"homely/internal/models"
)

func createReport(t *testing.T, db *gorm.DB, ownerID string) models.MaintenanceReport {
	report := models.MaintenanceReport{
		Title:           "Leaking geyser",
		PropertyAddress: "12 Marine Drive",
		LandownerID:     ownerID,
		Status:          models.ReportPending,
	}
	require.NoError(t, db.Create(&report).Error)
	return report
}

func TestAssignCaretaker_MovesInProgressWithComment(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	caretaker := createUser(t, db, "caretaker", models.RoleCaretaker)
	report := createReport(t, db, owner.ID)

	require.NoError(t, AssignCaretaker(db, owner.ID, owner.FullName, report.ID, caretaker.ID))

	var stored models.MaintenanceReport
	require.NoError(t, db.First(&stored, "id = ?", report.ID).Error)
	assert.Equal(t, models.ReportInProgress, stored.Status)
	require.NotNil(t, stored.AssignedCaretakerID)
	assert.Equal(t, caretaker.ID, *stored.AssignedCaretakerID)

	var comments []models.ReportComment
	require.NoError(t, db.Where("report_id = ?", report.ID).Find(&comments).Error)
	require.Len(t, comments, 1)
	assert.Equal(t, owner.ID, comments[0].AuthorID)
	assert.Equal(t, "Task assigned to caretaker.", comments[0].Text)

	// Repeating the same assignment adds no second audit comment.
	require.NoError(t, AssignCaretaker(db, owner.ID, owner.FullName, report.ID, caretaker.ID))
	require.NoError(t, db.Where("report_id = ?", report.ID).Find(&comments).Error)
	assert.Len(t, comments, 1)
}

func TestAssignCaretaker_UnknownCaretakerStillAssigns(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	report := createReport(t, db, owner.ID)

	require.NoError(t, AssignCaretaker(db, owner.ID, owner.FullName, report.ID, "ghost-id"))

	var comments []models.ReportComment
	require.NoError(t, db.Where("report_id = ?", report.ID).Find(&comments).Error)
	require.Len(t, comments, 1)
	assert.Equal(t, "Task assigned to Unknown.", comments[0].Text)
}

func TestAssignCaretaker_WrongOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	intruder := createUser(t, db, "intruder", models.RoleLandowner)
	caretaker := createUser(t, db, "caretaker", models.RoleCaretaker)
	report := createReport(t, db, owner.ID)

	err := AssignCaretaker(db, intruder.ID, intruder.FullName, report.ID, caretaker.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var stored models.MaintenanceReport
	require.NoError(t, db.First(&stored, "id = ?", report.ID).Error)
	assert.Equal(t, models.ReportPending, stored.Status)
}

func TestUpdateReportStatus(t *testing.T) {
	db := setupTestDB(t)
	owner := createUser(t, db, "owner", models.RoleLandowner)
	report := createReport(t, db, owner.ID)

	require.NoError(t, UpdateReportStatus(db, owner.ID, report.ID, models.ReportResolved))

	var stored models.MaintenanceReport
	require.NoError(t, db.First(&stored, "id = ?", report.ID).Error)
	assert.Equal(t, models.ReportResolved, stored.Status)

	// Same status again is a no-op; invalid statuses are rejected.
	require.NoError(t, UpdateReportStatus(db, owner.ID, report.ID, models.ReportResolved))
	assert.True(t, IsValidation(UpdateReportStatus(db, owner.ID, report.ID, "DONE")))
}

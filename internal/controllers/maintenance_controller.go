package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homely/internal/config"
	"homely/internal/middleware"
	"homely/internal/models"
	"homely/internal/reports"
	"homely/internal/workflow"
)

// ListMaintenance returns the caller's maintenance board: reports split
// into open/in-progress/completed with caretaker names resolved, plus
// the caretaker and property pickers.
func ListMaintenance(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	search := c.Query("search")

	var allReports []models.MaintenanceReport
	if err := config.DB.Where("landowner_id = ?", actor.UserID).
		Order("created_at DESC").Find(&allReports).Error; err != nil {
		fail(c, err)
		return
	}

	caretakerIDs := make([]string, 0, len(allReports))
	for _, r := range allReports {
		if r.AssignedCaretakerID != nil {
			caretakerIDs = append(caretakerIDs, *r.AssignedCaretakerID)
		}
	}
	caretakers, err := reports.ResolveNames(config.DB, "users", "full_name", caretakerIDs, reports.UnknownCaretaker)
	if err != nil {
		fail(c, err)
		return
	}

	open := []models.MaintenanceReport{}
	inProgress := []models.MaintenanceReport{}
	completed := []models.MaintenanceReport{}
	for _, r := range allReports {
		if r.AssignedCaretakerID != nil {
			r.AssignedCaretakerName = caretakers[*r.AssignedCaretakerID]
		} else {
			r.AssignedCaretakerName = reports.UnknownCaretaker
		}
		if search != "" && !containsFold(r.Title, search) && !containsFold(r.PropertyAddress, search) {
			continue
		}
		switch r.Status {
		case models.ReportInProgress:
			inProgress = append(inProgress, r)
		case models.ReportResolved:
			completed = append(completed, r)
		default:
			open = append(open, r)
		}
	}

	var caretakerUsers []models.User
	if err := config.DB.Where("role = ?", models.RoleCaretaker).Find(&caretakerUsers).Error; err != nil {
		fail(c, err)
		return
	}
	var ownProperties []models.Property
	if err := config.DB.Where("owner_id = ?", actor.UserID).Find(&ownProperties).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"open":       open,
		"inProgress": inProgress,
		"completed":  completed,
		"caretakers": caretakerUsers,
		"properties": ownProperties,
	})
}

// AssignCaretaker assigns a caretaker and moves the report in progress.
func AssignCaretaker(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	var body struct {
		CaretakerID string `json:"caretakerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := workflow.AssignCaretaker(config.DB, actor.UserID, actor.Name, c.Param("id"), body.CaretakerID); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Caretaker assigned successfully!")
}

// UpdateReportStatus moves a report between board columns.
func UpdateReportStatus(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err := workflow.UpdateReportStatus(config.DB, actor.UserID, c.Param("id"), body.Status); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Task moved to "+body.Status+".")
}

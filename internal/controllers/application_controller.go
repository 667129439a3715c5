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

// ListApplications returns tenant applications for the caller's
// properties, grouped by review status.
func ListApplications(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	search := c.Query("search")

	var ownProperties []models.Property
	if err := config.DB.Where("owner_id = ?", actor.UserID).Find(&ownProperties).Error; err != nil {
		fail(c, err)
		return
	}
	if len(ownProperties) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"pending":  []models.TenantApplication{},
			"approved": []models.TenantApplication{},
			"rejected": []models.TenantApplication{},
		})
		return
	}

	propertyIDs := make([]string, 0, len(ownProperties))
	for _, p := range ownProperties {
		propertyIDs = append(propertyIDs, p.ID)
	}

	var applications []models.TenantApplication
	if err := config.DB.Where("property_id IN ?", propertyIDs).Find(&applications).Error; err != nil {
		fail(c, err)
		return
	}

	properties, err := reports.ResolvePropertyNames(config.DB, propertyIDs)
	if err != nil {
		fail(c, err)
		return
	}

	pending := []models.TenantApplication{}
	approved := []models.TenantApplication{}
	rejected := []models.TenantApplication{}
	for _, app := range applications {
		app.PropertyName = properties[app.PropertyID]
		if search != "" && !containsFold(app.ApplicantName, search) {
			continue
		}
		switch app.Status {
		case models.ApplicationApproved:
			approved = append(approved, app)
		case models.ApplicationRejected:
			rejected = append(rejected, app)
		default:
			pending = append(pending, app)
		}
	}

	c.JSON(http.StatusOK, gin.H{"pending": pending, "approved": approved, "rejected": rejected})
}

// ApproveApplication marks an application Approved.
func ApproveApplication(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if err := workflow.ReviewApplication(config.DB, actor.UserID, c.Param("id"), models.ApplicationApproved); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Application approved.")
}

// RejectApplication marks an application Rejected.
func RejectApplication(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if err := workflow.ReviewApplication(config.DB, actor.UserID, c.Param("id"), models.ApplicationRejected); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Application rejected.")
}

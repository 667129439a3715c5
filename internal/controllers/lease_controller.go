package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"homely/internal/config"
	"homely/internal/middleware"
	"homely/internal/models"
	"homely/internal/reports"
	"homely/internal/workflow"
)

// ListLeases returns the caller's leases decorated with tenant and
// property names, active/inactive counts, and the pickers for the
// new-lease form.
func ListLeases(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	search := c.Query("search")

	var leases []models.Lease
	if err := config.DB.Where("landowner_id = ?", actor.UserID).Find(&leases).Error; err != nil {
		fail(c, err)
		return
	}

	tenantIDs := make([]string, 0, len(leases))
	propertyIDs := make([]string, 0, len(leases))
	for _, l := range leases {
		tenantIDs = append(tenantIDs, l.TenantID)
		propertyIDs = append(propertyIDs, l.PropertyID)
	}
	tenants, err := reports.ResolveUserNames(config.DB, tenantIDs)
	if err != nil {
		fail(c, err)
		return
	}
	properties, err := reports.ResolvePropertyNames(config.DB, propertyIDs)
	if err != nil {
		fail(c, err)
		return
	}

	active, inactive := 0, 0
	for i := range leases {
		leases[i].TenantName = tenants[leases[i].TenantID]
		leases[i].PropertyAddress = properties[leases[i].PropertyID]
		if leases[i].Status == models.LeaseActive {
			active++
		} else {
			inactive++
		}
	}

	if search != "" {
		filtered := leases[:0]
		for _, l := range leases {
			if containsFold(l.TenantName, search) || containsFold(l.PropertyAddress, search) {
				filtered = append(filtered, l)
			}
		}
		leases = filtered
	}

	var tenantUsers []models.User
	if err := config.DB.Where("role = ?", models.RoleTenant).Find(&tenantUsers).Error; err != nil {
		fail(c, err)
		return
	}
	var ownProperties []models.Property
	if err := config.DB.Where("owner_id = ?", actor.UserID).Find(&ownProperties).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":          leases,
		"activeCount":   active,
		"inactiveCount": inactive,
		"tenants":       tenantUsers,
		"properties":    ownProperties,
	})
}

// AddLease opens a lease from a multipart form; the agreement PDF is
// optional.
func AddLease(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	startDate, err := time.Parse("2006-01-02", c.PostForm("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid start date"})
		return
	}
	endDate, err := time.Parse("2006-01-02", c.PostForm("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid end date"})
		return
	}

	documentURL := ""
	if file, err := c.FormFile("pdfFile"); err == nil && file.Size > 0 {
		documentURL, err = Uploads.Save(c, file, "leases")
		if err != nil {
			fail(c, err)
			return
		}
	}

	lease, err := workflow.CreateLease(config.DB, actor.UserID, workflow.LeaseInput{
		PropertyID:    c.PostForm("propertyId"),
		TenantID:      c.PostForm("tenantId"),
		StartDate:     startDate,
		EndDate:       endDate,
		DepositAmount: c.PostForm("rentAmount"),
		DocumentURL:   documentURL,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Lease added and property updated successfully!", "lease": lease})
}

// TerminateLease ends a lease and frees its property.
func TerminateLease(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if err := workflow.TerminateLease(config.DB, actor.UserID, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Lease has been terminated and property is now available.")
}

// RenewLease extends a lease by one year.
func RenewLease(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if err := workflow.RenewLease(config.DB, actor.UserID, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Lease renewed.")
}

package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"homely/internal/config"
	"homely/internal/export"
	"homely/internal/middleware"
	"homely/internal/models"
	"homely/internal/reports"
)

// ListUsers returns all users with optional role/status filters and a
// name/email search.
func ListUsers(c *gin.Context) {
	role := c.DefaultQuery("role", "All")
	status := c.DefaultQuery("status", "All")
	search := c.Query("search")

	query := config.DB.Model(&models.User{})
	if role != "All" && role != "" {
		query = query.Where("role = ?", role)
	}
	if status != "All" && status != "" {
		query = query.Where("status = ?", status)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		fail(c, err)
		return
	}
	if search != "" {
		filtered := users[:0]
		for _, u := range users {
			if containsFold(u.FullName, search) || containsFold(u.Email, search) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

// GetUser returns one user record.
func GetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// EditUser updates a user's name and/or role.
func EditUser(c *gin.Context) {
	var body struct {
		Name *string `json:"name"`
		Role *string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["full_name"] = *body.Name
	}
	if body.Role != nil {
		switch *body.Role {
		case models.RoleAdmin, models.RoleLandowner, models.RoleTenant, models.RoleCaretaker:
			updates["role"] = *body.Role
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}
	}
	if len(updates) == 0 {
		ok(c, "Nothing to update.")
		return
	}

	if err := setUserFields(c.Param("id"), updates); err != nil {
		fail(c, err)
		return
	}
	ok(c, "User updated.")
}

// ActivateUser sets a user Active.
func ActivateUser(c *gin.Context) {
	if err := setUserFields(c.Param("id"), map[string]interface{}{"status": models.UserActive}); err != nil {
		fail(c, err)
		return
	}
	ok(c, "User activated.")
}

// DeactivateUser sets a user Inactive.
func DeactivateUser(c *gin.Context) {
	if err := setUserFields(c.Param("id"), map[string]interface{}{"status": models.UserInactive}); err != nil {
		fail(c, err)
		return
	}
	ok(c, "User deactivated.")
}

func setUserFields(id string, updates map[string]interface{}) error {
	return config.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates).Error
}

// GenerateReport builds a report dataset and remembers it for export.
func GenerateReport(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	var body struct {
		ReportType string `json:"reportType" binding:"required"`
		DateRange  string `json:"dateRange"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	since := reports.SinceForRange(body.DateRange, time.Now())
	data, err := reports.BuildReport(config.DB, body.ReportType, since)
	if err != nil {
		fail(c, err)
		return
	}

	LastReports.Put(actor.UserID, body.ReportType, data)
	c.JSON(http.StatusOK, gin.H{"reportType": body.ReportType, "data": data})
}

// ExportExcel downloads the caller's last report as a spreadsheet.
func ExportExcel(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	_, data := LastReports.Get(actor.UserID)

	raw, err := export.Excel(data)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.ExcelFilename+`"`)
	c.Data(http.StatusOK, export.ExcelContentType, raw)
}

// ExportPDF downloads the caller's last report as a PDF.
func ExportPDF(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	reportType, data := LastReports.Get(actor.UserID)

	raw, err := export.PDF(reportType, data)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.PDFFilename+`"`)
	c.Data(http.StatusOK, export.PDFContentType, raw)
}

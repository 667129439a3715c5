package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homely/internal/config"
	"homely/internal/middleware"
	"homely/internal/models"
	"homely/internal/reports"
	"homely/internal/workflow"
)

// ManagerDashboard returns the landowner's portfolio counters.
func ManagerDashboard(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	stats, err := reports.BuildDashboard(config.DB, actor.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats, "managerName": actor.Name})
}

// ListProperties lists the caller's properties, newest first, with the
// All/Available/Occupied filter and a title/location search.
func ListProperties(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	status := c.DefaultQuery("status", "All")
	search := c.Query("search")

	query := config.DB.Where("owner_id = ?", actor.UserID).Order("created_at DESC")
	if status == "Available" {
		query = query.Where("rented = ?", false)
	} else if status == "Occupied" {
		query = query.Where("rented = ?", true)
	}

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		fail(c, err)
		return
	}
	if search != "" {
		filtered := properties[:0]
		for _, p := range properties {
			if containsFold(p.Title, search) || containsFold(p.Location, search) {
				filtered = append(filtered, p)
			}
		}
		properties = filtered
	}

	c.JSON(http.StatusOK, gin.H{"data": properties})
}

// GetProperty returns one property the caller owns.
func GetProperty(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	var property models.Property
	if err := config.DB.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if property.OwnerID != actor.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this property"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": property})
}

// AddProperty creates a listing from a multipart form, uploading the
// image when one was attached.
func AddProperty(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	bedrooms, _ := strconv.Atoi(c.PostForm("bedrooms"))
	bathrooms, _ := strconv.Atoi(c.PostForm("bathrooms"))
	garages, _ := strconv.Atoi(c.PostForm("garages"))

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "title is required"})
		return
	}

	imageURL := models.DefaultPropertyImage
	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		url, err := Uploads.Save(c, file, "properties")
		if err != nil {
			fail(c, err)
			return
		}
		imageURL = url
	}

	property := models.Property{
		OwnerID:       actor.UserID,
		Title:         title,
		Location:      c.PostForm("location"),
		Price:         c.PostForm("price"),
		LeaseDuration: c.PostForm("leaseDuration"),
		Bedrooms:      bedrooms,
		Bathrooms:     bathrooms,
		Garages:       garages,
		Rented:        false,
		ImageURL:      imageURL,
		ImageURLs:     []string{imageURL},
	}
	if err := config.DB.Create(&property).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Property added successfully!", "property": property})
}

// EditProperty applies a partial update to an owned property. Only the
// fields present in the form change.
func EditProperty(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	var property models.Property
	if err := config.DB.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Property not found."})
		return
	}
	if property.OwnerID != actor.UserID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You do not own this property."})
		return
	}

	// Only the submitted columns are written. Occupancy columns (rented,
	// tenant_id) never appear here: a lease transition landing between
	// the read above and this write must not be reverted.
	updates := map[string]interface{}{}
	setIfPresent := func(field, column string) {
		if v, ok := c.GetPostForm(field); ok {
			updates[column] = v
		}
	}
	setIntIfPresent := func(field, column string) {
		if v, ok := c.GetPostForm(field); ok {
			if n, err := strconv.Atoi(v); err == nil {
				updates[column] = n
			}
		}
	}
	setIfPresent("title", "title")
	setIfPresent("location", "location")
	setIfPresent("price", "price")
	setIfPresent("leaseDuration", "lease_duration")
	setIntIfPresent("bedrooms", "bedrooms")
	setIntIfPresent("bathrooms", "bathrooms")
	setIntIfPresent("garages", "garages")

	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		url, err := Uploads.Save(c, file, "properties")
		if err != nil {
			fail(c, err)
			return
		}
		updates["image_url"] = url
		updates["image_urls"] = []string{url}
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&property).Updates(updates).Error; err != nil {
			fail(c, err)
			return
		}
	}
	if err := config.DB.First(&property, "id = ?", property.ID).Error; err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Property updated successfully!", "property": property})
}

// DeleteProperty removes a listing; refused while an active lease exists.
func DeleteProperty(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if err := workflow.DeleteProperty(config.DB, actor.UserID, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Property deleted successfully!")
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"homely/internal/config"
	"homely/internal/models"
)

// Listings returns available properties for guests, with search,
// room-count and price-range filters. The top room-count bucket is
// open-ended ("4+" bedrooms, "3+" bathrooms, "2+" garages).
func Listings(c *gin.Context) {
	search := c.Query("search")
	bedrooms, _ := strconv.Atoi(c.DefaultQuery("bedrooms", "0"))
	bathrooms, _ := strconv.Atoi(c.DefaultQuery("bathrooms", "0"))
	garages, _ := strconv.Atoi(c.DefaultQuery("garages", "0"))
	priceRange := c.DefaultQuery("priceRange", "All")

	var properties []models.Property
	if err := config.DB.Where("rented = ?", false).Find(&properties).Error; err != nil {
		fail(c, err)
		return
	}

	filtered := properties[:0]
	for _, p := range properties {
		if search != "" && !containsFold(p.Title, search) && !containsFold(p.Location, search) {
			continue
		}
		if !roomMatch(p.Bedrooms, bedrooms, 4) || !roomMatch(p.Bathrooms, bathrooms, 3) || !roomMatch(p.Garages, garages, 2) {
			continue
		}
		if !priceMatch(p.Price, priceRange) {
			continue
		}
		p.ImageURL = p.DisplayImage()
		filtered = append(filtered, p)
	}

	c.JSON(http.StatusOK, gin.H{"data": filtered})
}

// roomMatch applies a room-count filter where the top bucket means "at
// least". Zero means no filter.
func roomMatch(actual, wanted, topBucket int) bool {
	if wanted <= 0 {
		return true
	}
	if wanted == topBucket {
		return actual >= topBucket
	}
	return actual == wanted
}

// priceMatch keeps unparseable prices visible rather than hiding the
// listing.
func priceMatch(price, priceRange string) bool {
	if priceRange == "All" || priceRange == "" {
		return true
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return true
	}
	switch priceRange {
	case "under10k":
		return amount.LessThan(decimal.NewFromInt(10000))
	case "10k-15k":
		return amount.GreaterThanOrEqual(decimal.NewFromInt(10000)) && amount.LessThanOrEqual(decimal.NewFromInt(15000))
	case "15k-20k":
		return amount.GreaterThan(decimal.NewFromInt(15000)) && amount.LessThanOrEqual(decimal.NewFromInt(20000))
	case "over20k":
		return amount.GreaterThan(decimal.NewFromInt(20000))
	default:
		return true
	}
}

// ListingDetails returns one property for guests.
func ListingDetails(c *gin.Context) {
	var property models.Property
	if err := config.DB.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	property.ImageURL = property.DisplayImage()
	c.JSON(http.StatusOK, gin.H{"data": property})
}

// ContactLandowner returns the contact card for a listing's owner.
func ContactLandowner(c *gin.Context) {
	var property models.Property
	if err := config.DB.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	var owner models.User
	if err := config.DB.First(&owner, "id = ?", property.OwnerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Landowner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"fullName": owner.FullName,
		"email":    owner.Email,
	}})
}

// SubmitApplication files a guest tenant application with the required
// ID and payslip documents.
func SubmitApplication(c *gin.Context) {
	propertyID := c.Param("id")
	var property models.Property
	if err := config.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Property not found."})
		return
	}

	idFile, idErr := c.FormFile("idFile")
	payslipFile, payErr := c.FormFile("payslipFile")
	if idErr != nil || payErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "You must upload both ID and payslip documents."})
		return
	}

	idURL, err := Uploads.Save(c, idFile, "application_ids")
	if err != nil {
		fail(c, err)
		return
	}
	payslipURL, err := Uploads.Save(c, payslipFile, "application_payslips")
	if err != nil {
		fail(c, err)
		return
	}

	application := models.TenantApplication{
		ApplicantName:  c.PostForm("applicantName"),
		ApplicantEmail: c.PostForm("applicantEmail"),
		ApplicantPhone: c.PostForm("applicantPhone"),
		PropertyID:     propertyID,
		Status:         models.ApplicationPending,
		IDDocURL:       idURL,
		PayslipDocURL:  payslipURL,
	}
	if err := config.DB.Create(&application).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Application submitted.", "application": application})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homely/internal/config"
	"homely/internal/middleware"
	"homely/internal/models"
	"homely/internal/settings"
)

// GetSettings returns the caller's profile.
func GetSettings(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	var user models.User
	if err := config.DB.First(&user, "id = ?", actor.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// SaveSettings updates the caller's display name, email and optional
// profile picture, then writes the JSON sidecar.
func SaveSettings(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var user models.User
	if err := config.DB.First(&user, "id = ?", actor.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
		return
	}

	displayName := c.DefaultPostForm("displayName", user.FullName)
	email := c.DefaultPostForm("email", user.Email)

	profilePath := user.ProfilePicPath
	if profilePath == "" {
		profilePath = "/images/default-profile.png"
	}
	if file, err := c.FormFile("profilePicture"); err == nil && file.Size > 0 {
		profilePath, err = Uploads.Save(c, file, "profiles")
		if err != nil {
			fail(c, err)
			return
		}
	}

	err := config.DB.Model(&models.User{}).Where("id = ?", actor.UserID).
		Updates(map[string]interface{}{
			"full_name":        displayName,
			"email":            email,
			"profile_pic_path": profilePath,
		}).Error
	if err != nil {
		fail(c, err)
		return
	}

	// Best effort; losing the sidecar never fails the request.
	_ = settings.Write(actor.UserID, settings.Profile{
		DisplayName:    displayName,
		Email:          email,
		ProfilePicPath: profilePath,
	})

	ok(c, "Settings updated successfully!")
}

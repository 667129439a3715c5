package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"homely/internal/reports"
	"homely/internal/storage"
	"homely/internal/workflow"
)

// Uploads is the object-storage stand-in used by every upload-accepting
// handler; the tree is served statically under /uploads.
var Uploads = storage.NewLocal("./uploads")

// LastReports keeps each admin's most recently generated report dataset
// for the export endpoints.
var LastReports = reports.NewStore()

// fail maps a workflow error to the matching HTTP status with the
// standard JSON envelope.
func fail(c *gin.Context, err error) {
	switch {
	case workflow.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, workflow.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, workflow.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, workflow.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong: " + err.Error()})
	}
}

func ok(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// containsFold is the case-insensitive substring match used by every
// search box.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

package routes

import (
	"homely/internal/controllers"
	"homely/internal/middleware"
	"homely/internal/models"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("admin")
	admin.Use(middleware.RequireAuthWithRole(models.RoleAdmin))
	{
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/users/:id", controllers.GetUser)
		admin.POST("/users/:id", controllers.EditUser)
		admin.POST("/users/:id/activate", controllers.ActivateUser)
		admin.POST("/users/:id/deactivate", controllers.DeactivateUser)

		admin.POST("/reports", controllers.GenerateReport)
		admin.GET("/reports/export/excel", controllers.ExportExcel)
		admin.GET("/reports/export/pdf", controllers.ExportPDF)

		admin.GET("/settings", controllers.GetSettings)
		admin.POST("/settings", controllers.SaveSettings)
	}
}

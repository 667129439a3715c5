package routes

import (
	"homely/internal/controllers"
	"homely/internal/middleware"
	"homely/internal/models"

	"github.com/gin-gonic/gin"
)

func ManagerRoutes(r *gin.Engine) {
	manager := r.Group("manager")
	manager.Use(middleware.RequireAuthWithRole(models.RoleLandowner))
	{
		manager.GET("/dashboard", controllers.ManagerDashboard)

		manager.GET("/properties", controllers.ListProperties)
		manager.GET("/properties/:id", controllers.GetProperty)
		manager.POST("/properties", controllers.AddProperty)
		manager.POST("/properties/:id", controllers.EditProperty)
		manager.DELETE("/properties/:id", controllers.DeleteProperty)

		manager.GET("/leases", controllers.ListLeases)
		manager.POST("/leases", controllers.AddLease)
		manager.POST("/leases/:id/terminate", controllers.TerminateLease)
		manager.POST("/leases/:id/renew", controllers.RenewLease)

		manager.GET("/applications", controllers.ListApplications)
		manager.POST("/applications/:id/approve", controllers.ApproveApplication)
		manager.POST("/applications/:id/reject", controllers.RejectApplication)

		manager.GET("/maintenance", controllers.ListMaintenance)
		manager.POST("/maintenance/:id/assign", controllers.AssignCaretaker)
		manager.POST("/maintenance/:id/status", controllers.UpdateReportStatus)

		manager.GET("/arrears", controllers.Arrears)
		manager.POST("/bills", controllers.CreateBill)
		manager.POST("/payments/:id/approve", controllers.ApprovePayment)
		manager.POST("/payments/:id/reject", controllers.RejectPayment)

		manager.GET("/settings", controllers.GetSettings)
		manager.POST("/settings", controllers.SaveSettings)
	}
}

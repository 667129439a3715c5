package routes

import (
	"homely/internal/controllers"

	"github.com/gin-gonic/gin"
)

// PublicRoutes is the guest-facing listings surface; no session needed.
func PublicRoutes(r *gin.Engine) {
	public := r.Group("public")
	{
		public.GET("/listings", controllers.Listings)
		public.GET("/listings/:id", controllers.ListingDetails)
		public.GET("/listings/:id/contact", controllers.ContactLandowner)
		public.POST("/listings/:id/apply", controllers.SubmitApplication)
	}
}

package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery and request logging must be attached before any routes.
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	// Uploaded images, lease agreements and application documents are
	// publicly readable, like the hosted bucket they stand in for.
	r.Static("/uploads", "./uploads")

	AuthRoutes(r)
	PublicRoutes(r)
	ManagerRoutes(r)
	AdminRoutes(r)

	return r
}

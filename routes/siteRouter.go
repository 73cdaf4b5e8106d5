package routes

import (
	"gloryland/controllers"
	"gloryland/middleware"

	"github.com/gin-gonic/gin"
)

// PublicSiteRoutes are the content endpoints the customer pages read.
func PublicSiteRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/site-settings", controllers.GetSiteSettings())
	incomingRoutes.POST("/contact", controllers.ContactForm())
}

func SiteRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/site-settings", middleware.RequireRoles("ADMIN"), controllers.UpsertSiteSettings())
	incomingRoutes.POST("/upload", middleware.RequireRoles("ADMIN"), controllers.UploadFile())
	incomingRoutes.POST("/reviews", controllers.CreateReview())
}

package routes

import (
	"gloryland/controllers"
	"gloryland/middleware"

	"github.com/gin-gonic/gin"
)

// PublicMenuRoutes serve the customer-facing menu pages.
func PublicMenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/menu", controllers.GetMenuItems())
	incomingRoutes.GET("/menu/:menu_item_id", controllers.GetMenuItem())
	incomingRoutes.GET("/menu/:menu_item_id/reviews", controllers.GetReviewsByItem())
}

func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/menu", middleware.RequireRoles("ADMIN"), controllers.CreateMenuItem())
	incomingRoutes.PATCH("/menu/:menu_item_id", middleware.RequireRoles("ADMIN"), controllers.UpdateMenuItem())
}

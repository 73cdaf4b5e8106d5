package routes

import (
	"gloryland/controllers"
	"gloryland/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/orders", controllers.PlaceOrder())
	incomingRoutes.GET("/my-orders", controllers.GetMyOrders())

	incomingRoutes.POST("/pos-order", middleware.RequireRoles("ADMIN", "CASHIER"), controllers.PlacePOSOrder())
	incomingRoutes.GET("/admin-orders", middleware.RequireRoles("ADMIN"), controllers.GetAdminOrders())
	incomingRoutes.PATCH("/admin-orders/:order_id", middleware.RequireRoles("ADMIN"), controllers.UpdateOrderStatus())
}

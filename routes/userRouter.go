package routes

import (
	"gloryland/controllers"
	"gloryland/middleware"

	"github.com/gin-gonic/gin"
)

// PublicUserRoutes are reachable without a token.
func PublicUserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/users/signup", controllers.SignUp())
	incomingRoutes.POST("/users/login", controllers.Login())
	incomingRoutes.GET("/ws", controllers.HandleWebSocket())
}

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/users", middleware.RequireRoles("ADMIN"), controllers.GetUsers())
	incomingRoutes.GET("/users/:user_id", middleware.RequireRoles("ADMIN"), controllers.GetUser())
	incomingRoutes.PATCH("/users/:user_id/role", middleware.RequireRoles("ADMIN"), controllers.UpdateUserRole())
}

package routes

import (
	"gloryland/controllers"
	"gloryland/middleware"

	"github.com/gin-gonic/gin"
)

func BookingRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/bookings", controllers.CreateBooking())
	incomingRoutes.GET("/my-bookings", controllers.GetMyBookings())

	incomingRoutes.GET("/bookings", middleware.RequireRoles("ADMIN"), controllers.GetBookings())
	incomingRoutes.PATCH("/bookings/:booking_id", middleware.RequireRoles("ADMIN"), controllers.UpdateBookingStatus())
}

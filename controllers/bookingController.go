package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"gloryland/database"
	"gloryland/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var bookingCollection *mongo.Collection = database.OpenCollection(database.Client, "booking")

// CreateBooking takes a table or event booking from the customer form.
// New bookings always start PENDING.
func CreateBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var booking models.Booking
		if err := c.BindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		booking.Status = models.BookingPending
		booking.User_id = c.GetString("uid")
		if validationErr := validate.Struct(&booking); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
			return
		}

		booking.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		booking.Updated_at = booking.Created_at
		booking.ID = primitive.NewObjectID()
		booking.Booking_id = booking.ID.Hex()

		if _, err := bookingCollection.InsertOne(ctx, booking); err != nil {
			log.Println("insert booking:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
			return
		}

		deps.Metrics.BookingsMade.Inc()
		if deps.Publisher != nil {
			if err := deps.Publisher.Publish("bookings", "newBooking", booking); err != nil {
				log.Println("booking notification failed:", err)
			}
		}
		c.JSON(http.StatusCreated, booking)
	}
}

// GetBookings is the dashboard list: optional status filter and a
// case-insensitive search on the customer's name, sorted by event date.
func GetBookings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		lookupUser := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "user"},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "user_id"},
			{Key: "as", Value: "user"},
		}}}
		unwindUser := bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$user"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}}

		matchFields := bson.D{}
		if status := c.Query("status"); status != "" {
			matchFields = append(matchFields, bson.E{Key: "status", Value: status})
		}
		if search := c.Query("search"); search != "" {
			matchFields = append(matchFields, bson.E{Key: "user.name", Value: bson.D{
				{Key: "$regex", Value: search},
				{Key: "$options", Value: "i"},
			}})
		}
		matchStage := bson.D{{Key: "$match", Value: matchFields}}

		sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "event_date", Value: 1}}}}
		projectStage := bson.D{{Key: "$project", Value: bson.D{
			{Key: "booking_id", Value: 1},
			{Key: "booking_type", Value: 1},
			{Key: "event_date", Value: 1},
			{Key: "party_size", Value: 1},
			{Key: "notes", Value: 1},
			{Key: "status", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "user_name", Value: "$user.name"},
			{Key: "user_email", Value: "$user.email"},
		}}}

		cursor, err := bookingCollection.Aggregate(ctx, mongo.Pipeline{lookupUser, unwindUser, matchStage, sortStage, projectStage})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		defer cursor.Close(ctx)

		var bookings []bson.M
		if err := cursor.All(ctx, &bookings); err != nil {
			log.Println("decode bookings:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// GetMyBookings returns the caller's bookings, most recent event first.
func GetMyBookings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")
		matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "user_id", Value: uid}}}}
		sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "event_date", Value: -1}}}}

		cursor, err := bookingCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		defer cursor.Close(ctx)

		var bookings []bson.M
		if err := cursor.All(ctx, &bookings); err != nil {
			log.Println("decode my bookings:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// UpdateBookingStatus confirms or cancels a booking from the dashboard.
func UpdateBookingStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		bookingId := c.Param("booking_id")
		var body struct {
			Status string `json:"status"`
		}
		if err := c.BindJSON(&body); err != nil || body.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
			return
		}
		if body.Status != models.BookingPending && body.Status != models.BookingConfirmed && body.Status != models.BookingCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		updatedAt, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: body.Status},
			{Key: "updated_at", Value: updatedAt},
		}}}
		result, err := bookingCollection.UpdateOne(ctx, bson.M{"booking_id": bookingId}, update)
		if err != nil {
			log.Println("update booking:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		if deps.Publisher != nil {
			payload := gin.H{"booking_id": bookingId, "status": body.Status}
			if err := deps.Publisher.Publish("bookings", "bookingStatus", payload); err != nil {
				log.Println("booking notification failed:", err)
			}
		}
		c.JSON(http.StatusOK, gin.H{"booking_id": bookingId, "status": body.Status})
	}
}

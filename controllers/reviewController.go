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

var reviewCollection *mongo.Collection = database.OpenCollection(database.Client, "review")

// CreateReview records one review per user per menu item.
func CreateReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var review models.Review
		if err := c.BindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		review.User_id = c.GetString("uid")
		if validationErr := validate.Struct(&review); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A rating between 1 and 5 and a menu item ID are required."})
			return
		}

		count, err := menuItemCollection.CountDocuments(ctx, bson.M{"menu_item_id": review.Menu_item_id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review."})
			return
		}
		if count == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "menu item not found"})
			return
		}

		count, err = reviewCollection.CountDocuments(ctx, bson.M{
			"user_id":      review.User_id,
			"menu_item_id": review.Menu_item_id,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review."})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this item."})
			return
		}

		review.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		review.ID = primitive.NewObjectID()
		review.Review_id = review.ID.Hex()

		if _, err := reviewCollection.InsertOne(ctx, review); err != nil {
			log.Println("insert review:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review."})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GetReviewsByItem lists reviews for one menu item, newest first.
func GetReviewsByItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		menuItemId := c.Param("menu_item_id")
		matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "menu_item_id", Value: menuItemId}}}}
		sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
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
		projectStage := bson.D{{Key: "$project", Value: bson.D{
			{Key: "review_id", Value: 1},
			{Key: "rating", Value: 1},
			{Key: "comment", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "user_name", Value: "$user.name"},
		}}}

		cursor, err := reviewCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, lookupUser, unwindUser, projectStage})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		defer cursor.Close(ctx)

		var reviews []bson.M
		if err := cursor.All(ctx, &reviews); err != nil {
			log.Println("decode reviews:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

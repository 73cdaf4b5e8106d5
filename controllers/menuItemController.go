package controllers

import (
	"context"
	"log"
	"math"
	"net/http"
	"time"

	"gloryland/database"
	"gloryland/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var menuItemCollection *mongo.Collection = database.OpenCollection(database.Client, "menuItem")

// GetMenuItems lists available items for the public menu page, sorted by
// name.
func GetMenuItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
		result, err := menuItemCollection.Find(ctx, bson.M{"is_available": true}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
			return
		}
		var items []models.MenuItem
		if err := result.All(ctx, &items); err != nil {
			log.Println("decode menu items:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		menuItemId := c.Param("menu_item_id")
		var item models.MenuItem
		err := menuItemCollection.FindOne(ctx, bson.M{"menu_item_id": menuItemId}).Decode(&item)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		price := toFixed(*item.Price, 2)
		item.Price = &price
		if item.Is_available == nil {
			available := true
			item.Is_available = &available
		}
		item.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		item.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		item.ID = primitive.NewObjectID()
		item.Menu_item_id = item.ID.Hex()

		if _, err := menuItemCollection.InsertOne(ctx, item); err != nil {
			log.Println("insert menu item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		menuItemId := c.Param("menu_item_id")
		var item models.MenuItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if item.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: item.Name})
		}
		if item.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: item.Description})
		}
		if item.Price != nil {
			price := toFixed(*item.Price, 2)
			updateObj = append(updateObj, bson.E{Key: "price", Value: price})
		}
		if item.Category != nil {
			updateObj = append(updateObj, bson.E{Key: "category", Value: item.Category})
		}
		if item.Image_url != nil {
			updateObj = append(updateObj, bson.E{Key: "image_url", Value: item.Image_url})
		}
		if item.Is_available != nil {
			updateObj = append(updateObj, bson.E{Key: "is_available", Value: item.Is_available})
		}
		updatedAt, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: updatedAt})

		filter := bson.M{"menu_item_id": menuItemId}
		result, err := menuItemCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			log.Println("update menu item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func toFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}

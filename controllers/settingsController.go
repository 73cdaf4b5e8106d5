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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var settingsCollection *mongo.Collection = database.OpenCollection(database.Client, "siteSettings")

// GetSiteSettings returns the requested keys as one key→value object,
// e.g. /site-settings?key=footer_location&key=footer_hours.
func GetSiteSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		keys := c.QueryArray("key")
		cursor, err := settingsCollection.Find(ctx, bson.M{"key": bson.M{"$in": keys}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		var settings []models.SiteSetting
		if err := cursor.All(ctx, &settings); err != nil {
			log.Println("decode settings:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		settingsObj := gin.H{}
		for _, s := range settings {
			settingsObj[s.Key] = s.Value
		}
		c.JSON(http.StatusOK, settingsObj)
	}
}

// UpsertSiteSettings saves a key→value map from the dashboard.
func UpsertSiteSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var settings map[string]string
		if err := c.BindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		upsert := true
		opts := options.UpdateOptions{Upsert: &upsert}
		for key, value := range settings {
			_, err := settingsCollection.UpdateOne(
				ctx,
				bson.M{"key": key},
				bson.D{{Key: "$set", Value: bson.D{{Key: "value", Value: value}}}},
				&opts,
			)
			if err != nil {
				log.Println("upsert setting:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

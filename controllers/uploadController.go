package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadFile streams the request body into the blob store and returns the
// public URL for the dashboard to attach to menu items.
func UploadFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := c.Query("filename")
		if filename == "" || c.Request.Body == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No file to upload."})
			return
		}

		blob, err := deps.Blobs.Put(filename, c.Request.Body)
		if err != nil {
			log.Println("upload failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		c.JSON(http.StatusOK, blob)
	}
}

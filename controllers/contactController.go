package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContactForm forwards a website message to the business mailbox.
func ContactForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.Name == "" || body.Email == "" || body.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}

		subject := fmt.Sprintf("New Message from %s", body.Name)
		content := fmt.Sprintf("From: %s <%s>\n\n%s", body.Name, body.Email, body.Message)
		if err := deps.Mailer.Send(deps.ContactEmail, subject, content); err != nil {
			log.Println("contact form send failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully!"})
	}
}

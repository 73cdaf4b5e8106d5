package main

import (
	"log"
	"time"

	"gloryland/checkout"
	"gloryland/config"
	"gloryland/controllers"
	"gloryland/database"
	"gloryland/mail"
	"gloryland/metrics"
	"gloryland/middleware"
	"gloryland/notify"
	"gloryland/routes"
	"gloryland/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.LoadConfig()

	blobs, err := storage.NewDiskStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatal(err)
	}

	hub := notify.NewHub()
	publisher := notify.Fanout{hub}
	if cfg.RabbitMQURL != "" {
		amqpPub, err := notify.NewAMQPPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer amqpPub.Close()
		publisher = append(publisher, amqpPub)
	}

	var mailer mail.Mailer = mail.LogMailer{}
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	}

	registry := metrics.NewRegistry()
	finalizer := checkout.NewFinalizer(
		database.NewCatalogRepo(database.Client),
		database.NewOrderRepo(database.Client),
		publisher,
		mailer,
	)

	controllers.Init(controllers.Deps{
		Finalizer:    finalizer,
		Metrics:      registry,
		Publisher:    publisher,
		Hub:          hub,
		Mailer:       mailer,
		Blobs:        blobs,
		ContactEmail: cfg.ContactEmail,
	})

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded images are served straight from the blob directory.
	router.Static(cfg.UploadBaseURL, cfg.UploadDir)
	router.GET("/metrics", gin.WrapH(registry.Handler()))

	routes.PublicUserRoutes(router)
	routes.PublicMenuRoutes(router)
	routes.PublicSiteRoutes(router)

	router.Use(middleware.Authentication())
	routes.UserRoutes(router)
	routes.MenuRoutes(router)
	routes.OrderRoutes(router)
	routes.BookingRoutes(router)
	routes.SiteRoutes(router)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/servisku/servisku-api/config"
	"github.com/servisku/servisku-api/controllers"
	"github.com/servisku/servisku-api/models"
	"github.com/servisku/servisku-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting ServisKu API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Technician{},
		&models.ServiceRequest{},
		&models.Feedback{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize external service clients once at startup
	services.InitAuthService(cfg)
	s3Service, err := services.InitS3Service()
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}
	services.InitImageService(s3Service, cfg.DownloadBaseURL)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())
	registerRoutes(router)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// registerRoutes wires the API route table onto the router
func registerRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", healthCheck)

		// Registration
		api.POST("/users/register", controllers.RegisterUser)
		api.POST("/technicians/register", controllers.RegisterTechnician)

		// Listings and filters
		api.GET("/users", controllers.ListUsers)
		api.GET("/users/by-email/:email", controllers.GetUsersByEmail)
		api.GET("/technicians", controllers.ListTechnicians)
		api.GET("/technicians/by-jenis-keahlian", controllers.ListTechniciansByJenisKeahlian)

		// Service requests
		api.POST("/service-requests", controllers.CreateServiceRequest)
		api.GET("/service-requests/:requestId", controllers.GetServiceRequest)

		// Feedback uploads
		api.POST("/uploads", controllers.UploadFeedback)
		api.GET("/feedbacks", controllers.ListFeedbacks)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ServisKu API is running",
	})
}

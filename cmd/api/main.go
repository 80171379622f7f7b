package main

import (
	"log"

	"github.com/formlight/formlight/internal/api/middleware"
	"github.com/formlight/formlight/internal/api/routes"
	"github.com/formlight/formlight/internal/config"
	"github.com/formlight/formlight/internal/config/db"
	"github.com/formlight/formlight/internal/domain/audit"
	"github.com/formlight/formlight/internal/domain/form"
	"github.com/formlight/formlight/internal/domain/submission"
	"github.com/formlight/formlight/internal/domain/user"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&form.Form{},
		&form.FormRole{},
		&submission.FormSubmission{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

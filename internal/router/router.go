package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/shufflegram/backend/internal/engine"
	"github.com/shufflegram/backend/internal/handlers"
	"github.com/shufflegram/backend/internal/middleware"
	"github.com/shufflegram/backend/internal/models"
	"github.com/shufflegram/backend/internal/repositories"
	"github.com/shufflegram/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures the HTTP surface and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, eng *engine.Engine, notificationRepo repositories.NotificationRepository, cfg *config.Config) {
	// AutoMigrate the PostgreSQL delivery log
	if err := pgdb.AutoMigrate(&models.Notification{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migration completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	authHandler := handlers.NewAuthHandler(eng, cfg.JWTSecret, cfg.AdminAPIKey)
	authHandler.RegisterAuthRoutes(e.Group("/api/auth"))

	adminHandler := handlers.NewAdminHandler(eng, notificationRepo)
	adminGroup := e.Group("/api/admin", middleware.JWTAuthMiddleware(cfg.JWTSecret))
	adminHandler.RegisterAdminRoutes(adminGroup)
}

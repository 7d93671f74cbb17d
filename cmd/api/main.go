// Package main is the entry point for the trade journal service.
package main

import (
	"fmt"
	"log"

	_ "github.com/anchalw11/website/docs"
	"github.com/anchalw11/website/internal/config"
	"github.com/anchalw11/website/internal/handlers"
	"github.com/anchalw11/website/internal/repository"
	"github.com/anchalw11/website/internal/routes"
	"github.com/anchalw11/website/internal/service"
	"github.com/anchalw11/website/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Trade Journal API
// @version 1.0
// @description Personal trade journal with plan-tier gated features
// @host localhost:8085
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.Environment == "production" && cfg.JWTSecret == config.DevJWTSecret {
		log.Fatal("JWT_SECRET_KEY must be set in production")
	}
	if cfg.BootstrapLoginEnabled {
		log.Printf("WARNING: bootstrap login enabled for %s", cfg.BootstrapEmail)
	}

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tradeRepo := repository.NewTradeRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	if jwtService == nil {
		log.Fatal("JWT_SECRET_KEY must be at least 32 bytes")
	}
	authService := service.NewAuthService(userRepo, jwtService, service.BootstrapAccount{
		Enabled:  cfg.BootstrapLoginEnabled,
		Email:    cfg.BootstrapEmail,
		Password: cfg.BootstrapPassword,
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	tradeHandler := handlers.NewTradeHandler(tradeRepo)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	router := gin.Default()

	// Setup routes
	routes.Setup(router, cfg, authHandler, tradeHandler, healthHandler, jwtService, userRepo)

	// Start server
	log.Printf("Starting trade journal service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// Package routes defines HTTP routes for the trade journal service.
package routes

import (
	"github.com/anchalw11/website/docs"
	"github.com/anchalw11/website/internal/config"
	"github.com/anchalw11/website/internal/handlers"
	"github.com/anchalw11/website/internal/middleware"
	"github.com/anchalw11/website/internal/repository"
	"github.com/anchalw11/website/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	tradeHandler *handlers.TradeHandler,
	healthHandler *handlers.HealthHandler,
	jwtService service.JWTService,
	userRepo repository.UserRepository,
) {
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
	}))

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Trade routes; an authenticated identity is required throughout, the
	// analytics view additionally needs the enterprise tier.
	authenticate := middleware.Authenticate(jwtService, userRepo)
	trades := router.Group("/api/trades", authenticate)
	{
		trades.POST("", tradeHandler.Create)
		trades.GET("", tradeHandler.List)
		trades.DELETE("/:id", tradeHandler.Delete)
		trades.GET("/analytics", middleware.RequireEnterprise(), tradeHandler.Analytics)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

package api

import (
	"passenger-service/internal/api/handlers"
	"passenger-service/internal/api/interfaces"
	"passenger-service/internal/api/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes with proper middleware
func SetupRoutes(router *gin.Engine, services interfaces.Services) {
	cfg := services.GetConfig()

	// Global middleware
	router.Use(middlewares.Recovery())
	router.Use(middlewares.CORS(cfg.API.CORS))
	router.Use(middlewares.Security())
	router.Use(middlewares.RequestLogging(services.GetLogger()))
	router.Use(middlewares.RateLimit(cfg.API.RateLimit))

	// Health check (no auth required)
	router.GET("/health", handlers.HealthCheck(services))
	router.GET("/ping", handlers.HealthCheck(services))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		setupAuthRoutes(v1, services)
		setupPassengerRoutes(v1, services)
	}
}

// setupAuthRoutes configures the login endpoint
func setupAuthRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", handlers.Login(services))
	}
}

// setupPassengerRoutes configures passenger CRUD and reservation endpoints.
// Registration and the public listing carry no token; everything addressing
// a specific passenger goes through the bearer guard first and the
// ownership guard inside the handler.
func setupPassengerRoutes(rg *gin.RouterGroup, services interfaces.Services) {
	passengers := rg.Group("/passengers")
	{
		passengers.GET("/", handlers.ListPassengers(services))
		passengers.POST("/", handlers.CreatePassenger(services))
	}

	protected := rg.Group("/passengers")
	protected.Use(middlewares.AuthRequired(services))
	{
		protected.GET("/:id", handlers.GetPassenger(services))
		protected.PUT("/:id", handlers.UpdatePassenger(services))
		protected.DELETE("/:id", handlers.DeletePassenger(services))
		protected.GET("/:id/reservations", handlers.ListReservations(services))
		protected.POST("/:id/reservations", handlers.CreateReservation(services))
	}
}

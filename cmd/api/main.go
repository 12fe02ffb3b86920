package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"dr-settlement/internal/api/handlers"
	"dr-settlement/internal/api/middleware"
	"dr-settlement/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", path)
	}

	rules := cfg.ToRules()
	provider, err := cfg.ToProvider()
	if err != nil {
		log.Fatalf("Failed to build price provider: %v", err)
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	dayAheadHandler := handlers.NewDayAheadHandler(rules, provider)
	monthlyHandler := handlers.NewMonthlyHandler()
	emergencyHandler := handlers.NewEmergencyHandler(rules, provider)
	pricesHandler := handlers.NewPricesHandler(provider)
	rulesHandler := handlers.NewRulesHandler(rules, provider)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/settlement/day-ahead", dayAheadHandler.Settle)
		api.POST("/settlement/monthly-reserve", monthlyHandler.Settle)
		api.POST("/settlement/emergency", emergencyHandler.Settle)

		api.POST("/prices/generate", pricesHandler.Generate)
		api.GET("/rules", rulesHandler.Get)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

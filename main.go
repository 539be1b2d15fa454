package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kakeibo-dev/kakeibo/config"
	"github.com/kakeibo-dev/kakeibo/logger"
	"github.com/kakeibo-dev/kakeibo/middleware"
	"github.com/kakeibo-dev/kakeibo/routes"
	"github.com/kakeibo-dev/kakeibo/seeds"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	log.Info().Msg("Database connected successfully")

	if err := config.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if err := seeds.SeedCategories(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed categories")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	// The frontend is served from a different origin in every deployment the
	// tool has seen, so the API stays open like the reference backend.
	corsConfig := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          86400,
	}
	router.Use(cors.New(corsConfig))

	limiter := middleware.NewRateLimiter(100, time.Minute)
	router.Use(limiter.Handler())
	go scheduleLimiterCleanup(limiter)

	api := router.Group("/api")
	routes.SetupTransactionRoutes(api, db)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func scheduleLimiterCleanup(limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		limiter.Cleanup()
	}
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Rishikesh183/auction-tracker/internal/api"
	"github.com/Rishikesh183/auction-tracker/internal/config"
	"github.com/Rishikesh183/auction-tracker/internal/database"
	"github.com/Rishikesh183/auction-tracker/internal/migrations"
	"github.com/Rishikesh183/auction-tracker/internal/redis"
	"github.com/Rishikesh183/auction-tracker/internal/storage"
	"github.com/Rishikesh183/auction-tracker/internal/ws"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations on start if requested
	if os.Getenv("MIGRATE_ON_START") == "true" {
		log.Println("↗ Running DB migrations on startup...")
		if err := migrations.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize Redis (change feed + viewer state)
	rdb, err := redis.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	// Initialize photo storage (if configured)
	var store *storage.SpacesService
	if cfg.SpacesKey != "" && cfg.SpacesSecret != "" {
		store, err = storage.NewSpacesService(cfg.SpacesKey, cfg.SpacesSecret, cfg.SpacesRegion, cfg.SpacesBucket)
		if err != nil {
			log.Fatalf("Failed to initialize photo storage: %v", err)
		}
		log.Printf("[STORAGE] Spaces client initialized (bucket=%s region=%s)", cfg.SpacesBucket, cfg.SpacesRegion)
	} else {
		log.Printf("[STORAGE] Photo storage is not configured (SPACES_KEY/SPACES_SECRET missing) - uploads will fail")
	}

	// Start the viewer hub and the change-feed subscriber that feeds it
	hub := ws.NewHub()
	go hub.Run()
	ws.SetRedisClient(rdb)
	ws.StartFeedSubscriber(context.Background(), hub)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Initialize API handlers
	api.SetupRoutes(router, db, rdb, store, hub, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting auction tracker server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

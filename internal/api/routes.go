package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/Rishikesh183/auction-tracker/internal/api/handlers"
	"github.com/Rishikesh183/auction-tracker/internal/auction"
	"github.com/Rishikesh183/auction-tracker/internal/config"
	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/middleware"
	"github.com/Rishikesh183/auction-tracker/internal/storage"
	"github.com/Rishikesh183/auction-tracker/internal/ws"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, rdb *redis.Client, store *storage.SpacesService, hub *ws.Hub, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			// Aggressive no-cache for development
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] Aggressive no-cache headers enabled for all routes")
	}

	gw := auction.NewGateway(db, feed.NewPublisher(rdb))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		// Spectator endpoints: snapshots plus the live stream
		v1.GET("/ws", handlers.HandleAuctionWebSocket(hub, db, cfg))
		v1.GET("/team/:name", handlers.GetTeamDashboard(db, cfg))

		board := v1.Group("/board")
		{
			board.GET("/live", handlers.GetLiveBoard(db, cfg))
			board.GET("/results", handlers.GetResultsBoard(db))
		}

		// Admin session
		adminGroup := v1.Group("/admin")
		{
			adminGroup.POST("/login", handlers.AdminLogin(db, cfg))

			authed := adminGroup.Group("", handlers.AdminAuthMiddleware(cfg))
			{
				authed.GET("/me", handlers.AdminMe())
				authed.GET("/audit", handlers.GetAdminAudit(db))
			}
		}

		// Mutation endpoints: auctioneer only
		auctionGroup := v1.Group("/auction", handlers.AdminAuthMiddleware(cfg))
		{
			auctionGroup.POST("/update", handlers.UpdatePlayer(db, gw))
			auctionGroup.POST("/bid", handlers.PlaceBid(db, gw))
			auctionGroup.POST("/finalize", handlers.FinalizeSale(db, gw))
			auctionGroup.POST("/unsold", handlers.MarkUnsold(db, gw))
			auctionGroup.POST("/upload-photo", handlers.UploadPlayerPhoto(db, store))
			auctionGroup.POST("/delete-photo", handlers.DeletePlayerPhoto(db, store))
		}
	}
}

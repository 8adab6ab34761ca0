package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Rishikesh183/auction-tracker/internal/config"
	"github.com/Rishikesh183/auction-tracker/internal/ws"
)

// HandleAuctionWebSocket streams live view updates to a spectator
func HandleAuctionWebSocket(hub *ws.Hub, db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	return ws.HandleViewer(hub, db, cfg)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Rishikesh183/auction-tracker/internal/admin"
	"github.com/Rishikesh183/auction-tracker/internal/auction"
)

// UpdatePlayer puts a player on the block, reusing the live row when one
// exists. POST /api/v1/auction/update
func UpdatePlayer(db *sqlx.DB, gw *auction.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminUsername := c.GetString("admin_username")

		var req auction.SetupPlayerInput
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		player, err := gw.SetupOrUpdatePlayer(c.Request.Context(), req)
		if err != nil {
			admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/update", "update_player", map[string]interface{}{"name": req.Name}, false)
			respondError(c, err, "Failed to update player")
			return
		}

		admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/update", "update_player", map[string]interface{}{"name": player.Name, "base_price": player.BasePrice}, true)
		respondSuccess(c, player)
	}
}

// PlaceBid records a bid for the player on the block.
// POST /api/v1/auction/bid
func PlaceBid(db *sqlx.DB, gw *auction.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminUsername := c.GetString("admin_username")

		var req auction.BidInput
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		bid, player, err := gw.PlaceBid(c.Request.Context(), req)
		if err != nil {
			admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/bid", "place_bid", map[string]interface{}{"team": req.Team, "amount": req.Amount}, false)
			respondError(c, err, "Failed to place bid")
			return
		}

		admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/bid", "place_bid", map[string]interface{}{"team": bid.Team, "amount": bid.Amount, "player": bid.PlayerName}, true)
		respondSuccess(c, gin.H{"bid": bid, "player": player})
	}
}

// FinalizeSale closes the auction for the player on the block and charges the
// buying team. POST /api/v1/auction/finalize
func FinalizeSale(db *sqlx.DB, gw *auction.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminUsername := c.GetString("admin_username")

		var req auction.FinalizeInput
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		player, team, err := gw.FinalizeSale(c.Request.Context(), req)
		if err != nil {
			admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/finalize", "finalize_sale", map[string]interface{}{"team": req.Team, "amount": req.FinalAmount}, false)
			respondError(c, err, "Failed to finalize sale")
			return
		}

		admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/finalize", "finalize_sale", map[string]interface{}{"team": team.Name, "amount": req.FinalAmount, "player": player.Name}, true)
		respondSuccess(c, gin.H{"player": player, "team": team})
	}
}

// MarkUnsold closes the auction for the player on the block with no buyer.
// POST /api/v1/auction/unsold
func MarkUnsold(db *sqlx.DB, gw *auction.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminUsername := c.GetString("admin_username")

		var req struct {
			PlayerID string `json:"player_id"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		player, err := gw.MarkUnsold(c.Request.Context(), req.PlayerID)
		if err != nil {
			admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/unsold", "mark_unsold", map[string]interface{}{"player_id": req.PlayerID}, false)
			respondError(c, err, "Failed to mark player as unsold")
			return
		}

		admin.LogAdminAction(db, adminUsername, c.ClientIP(), "/api/v1/auction/unsold", "mark_unsold", map[string]interface{}{"player": player.Name}, true)
		respondSuccess(c, gin.H{"player": player})
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Rishikesh183/auction-tracker/internal/auction"
	"github.com/Rishikesh183/auction-tracker/internal/config"
	"github.com/Rishikesh183/auction-tracker/internal/models"
	"github.com/Rishikesh183/auction-tracker/internal/views"
)

// GetLiveBoard returns the snapshot a live-board viewer starts from: the
// player on the block, recent bids, teams, and the just-sold strip.
// GET /api/v1/board/live
func GetLiveBoard(db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		live, err := auction.LivePlayer(ctx, db)
		if err != nil {
			log.Printf("[BOARD] failed to fetch live player: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch live board"})
			return
		}

		bids, err := auction.RecentBids(ctx, db, c.Query("player_id"), cfg.BidHistoryLimit)
		if err != nil {
			log.Printf("[BOARD] failed to fetch bids: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch live board"})
			return
		}

		teams, err := auction.AllTeams(ctx, db)
		if err != nil {
			log.Printf("[BOARD] failed to fetch teams: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch live board"})
			return
		}

		recent, err := auction.RecentCompleted(ctx, db, cfg.RecentCompletedLimit)
		if err != nil {
			log.Printf("[BOARD] failed to fetch recent completed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch live board"})
			return
		}

		respondSuccess(c, gin.H{
			"current_player":   live,
			"bidding_history":  bids,
			"teams":            teams,
			"recent_completed": recent,
		})
	}
}

// GetResultsBoard returns the sold/unsold partition plus the derived global
// stats. GET /api/v1/board/results
func GetResultsBoard(db *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sold, err := auction.PlayersByStatus(ctx, db, models.StatusCompleted)
		if err != nil {
			log.Printf("[BOARD] failed to fetch sold players: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
			return
		}

		unsold, err := auction.PlayersByStatus(ctx, db, models.StatusUnsold)
		if err != nil {
			log.Printf("[BOARD] failed to fetch unsold players: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
			return
		}

		teams, err := auction.AllTeams(ctx, db)
		if err != nil {
			log.Printf("[BOARD] failed to fetch teams: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
			return
		}

		players := views.NewAllPlayersView(sold, unsold)
		teamsView := views.NewTeamsView(teams)

		respondSuccess(c, gin.H{
			"sold":   sold,
			"unsold": unsold,
			"teams":  teams,
			"stats":  views.ComputeGlobalStats(players, teamsView),
		})
	}
}

package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Rishikesh183/auction-tracker/internal/auction"
	"github.com/Rishikesh183/auction-tracker/internal/config"
)

// TeamAnalytics summarizes a franchise's squad position against the auction
// rules (total purse, squad size limit, overseas limit).
type TeamAnalytics struct {
	TotalPurse            float64 `json:"totalPurse"`
	PurseRemaining        float64 `json:"purseRemaining"`
	TotalPlayerLimit      int     `json:"totalPlayerLimit"`
	OverseasLimit         int     `json:"overseasLimit"`
	CurrentPlayersCount   int     `json:"currentPlayersCount"`
	CurrentOverseasCount  int     `json:"currentOverseasCount"`
	RetainedPlayersCount  int     `json:"retainedPlayersCount"`
	AuctionPurchasesCount int     `json:"auctionPurchasesCount"`
}

// GetTeamDashboard returns a franchise's roster and analytics.
// GET /api/v1/team/:name
func GetTeamDashboard(db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		teamName := c.Param("name")
		ctx := c.Request.Context()

		team, err := auction.TeamByName(ctx, db, teamName)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
				return
			}
			log.Printf("[TEAM] failed to fetch team %s: %v", teamName, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
			return
		}

		retained, err := auction.RetainedPlayersForTeam(ctx, db, teamName)
		if err != nil {
			log.Printf("[TEAM] failed to fetch retained players for %s: %v", teamName, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
			return
		}

		purchases, err := auction.PurchasesForTeam(ctx, db, teamName)
		if err != nil {
			log.Printf("[TEAM] failed to fetch purchases for %s: %v", teamName, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
			return
		}

		overseas := 0
		for _, p := range retained {
			if p.IsOverseas {
				overseas++
			}
		}
		for _, p := range purchases {
			if p.IsOverseas {
				overseas++
			}
		}

		analytics := TeamAnalytics{
			TotalPurse:            cfg.TotalPurse,
			PurseRemaining:        team.PurseRemaining,
			TotalPlayerLimit:      cfg.SquadLimit,
			OverseasLimit:         cfg.OverseasLimit,
			CurrentPlayersCount:   len(retained) + len(purchases),
			CurrentOverseasCount:  overseas,
			RetainedPlayersCount:  len(retained),
			AuctionPurchasesCount: len(purchases),
		}

		respondSuccess(c, gin.H{
			"teamName":         teamName,
			"team":             team,
			"retainedPlayers":  retained,
			"auctionPurchases": purchases,
			"analytics":        analytics,
		})
	}
}

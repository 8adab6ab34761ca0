package views

import "github.com/Rishikesh183/auction-tracker/internal/models"

// GlobalStats is derived from the team list and the sold/unsold partition.
// It carries no state of its own; recompute whenever either input changes.
type GlobalStats struct {
	TotalSold            int                   `json:"totalSold"`
	TotalUnsold          int                   `json:"totalUnsold"`
	TotalMoneySpent      float64               `json:"totalMoneySpent"`
	TotalRemainingPurse  float64               `json:"totalRemainingPurse"`
	MostExpensivePlayer  *models.CurrentPlayer `json:"mostExpensivePlayer"`
	TeamWithHighestPurse *models.Team          `json:"teamWithHighestPurse"`
}

// ComputeGlobalStats derives the headline numbers for the summary board
func ComputeGlobalStats(players *AllPlayersView, teams *TeamsView) GlobalStats {
	stats := GlobalStats{
		TotalSold:   len(players.Sold),
		TotalUnsold: len(players.Unsold),
	}

	for i := range players.Sold {
		p := &players.Sold[i]
		stats.TotalMoneySpent += p.CurrentBid
		if stats.MostExpensivePlayer == nil || p.CurrentBid > stats.MostExpensivePlayer.CurrentBid {
			stats.MostExpensivePlayer = p
		}
	}

	for i := range teams.Teams {
		t := &teams.Teams[i]
		stats.TotalRemainingPurse += t.PurseRemaining
		if stats.TeamWithHighestPurse == nil || t.PurseRemaining > stats.TeamWithHighestPurse.PurseRemaining {
			stats.TeamWithHighestPurse = t
		}
	}

	return stats
}

package views

import (
	"testing"
	"time"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

// Shared helpers for the projection tests: build rows and wrap them in feed
// events the way the gateway publishes them.

func strPtr(s string) *string {
	return &s
}

func player(id, name string, basePrice, currentBid float64, leadingTeam, status string) models.CurrentPlayer {
	p := models.CurrentPlayer{
		ID:         id,
		Name:       name,
		BasePrice:  basePrice,
		CurrentBid: currentBid,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if leadingTeam != "" {
		p.LeadingTeam = strPtr(leadingTeam)
	}
	return p
}

func team(id, name string, purse float64, purchased int) models.Team {
	return models.Team{
		ID:               id,
		Name:             name,
		PurseRemaining:   purse,
		PlayersPurchased: purchased,
	}
}

func bid(id, playerID, playerName, teamName string, amount float64, ts time.Time) models.Bid {
	return models.Bid{
		ID:         id,
		PlayerID:   playerID,
		PlayerName: playerName,
		Team:       teamName,
		Amount:     amount,
		Timestamp:  ts,
	}
}

func event(t *testing.T, table, changeType string, row interface{}) feed.Event {
	t.Helper()
	ev, err := feed.NewEvent(table, changeType, row)
	if err != nil {
		t.Fatalf("failed to build event: %v", err)
	}
	return ev
}

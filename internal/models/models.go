package models

import (
	"encoding/json"
	"time"
)

// Player auction status values
const (
	StatusLive      = "live"
	StatusCompleted = "completed"
	StatusUnsold    = "unsold"
)

// CurrentPlayer is the single player record being auctioned (or a historical
// one once completed/unsold). At most one row has status = live; the write
// path enforces that, not the schema.
type CurrentPlayer struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	PhotoURL    *string   `db:"photo_url" json:"photo_url"`
	BasePrice   float64   `db:"base_price" json:"base_price"`
	OldTeam     *string   `db:"old_team" json:"old_team"`
	CurrentBid  float64   `db:"current_bid" json:"current_bid"`
	LeadingTeam *string   `db:"leading_team" json:"leading_team"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Bid is an append-only bidding history entry. Player name is denormalized
// so history stays readable after the player row is reused.
type Bid struct {
	ID         string    `db:"id" json:"id"`
	PlayerID   string    `db:"player_id" json:"player_id"`
	PlayerName string    `db:"player_name" json:"player_name"`
	Team       string    `db:"team" json:"team"`
	Amount     float64   `db:"amount" json:"amount"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
}

// Team represents a franchise. Name is unique and used as the join key by
// the finalize path and the dashboard queries.
type Team struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	PurseRemaining   float64   `db:"purse_remaining" json:"purse_remaining"`
	PlayersPurchased int       `db:"players_purchased" json:"players_purchased"`
	PlayersRetained  int       `db:"players_retained" json:"players_retained"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// RetainedPlayer is a pre-auction retention entry, read-only in this service.
type RetainedPlayer struct {
	ID             string    `db:"id" json:"id"`
	TeamName       string    `db:"team_name" json:"team_name"`
	PlayerName     string    `db:"player_name" json:"player_name"`
	RetainedAmount float64   `db:"retained_amount" json:"retained_amount"`
	IsOverseas     bool      `db:"is_overseas" json:"is_overseas"`
	Role           string    `db:"role" json:"role"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// AuctionPurchase is a historical purchase record used by the team dashboard.
type AuctionPurchase struct {
	ID           string    `db:"id" json:"id"`
	TeamName     string    `db:"team_name" json:"team_name"`
	PlayerName   string    `db:"player_name" json:"player_name"`
	AuctionPrice float64   `db:"auction_price" json:"auction_price"`
	IsOverseas   bool      `db:"is_overseas" json:"is_overseas"`
	Role         string    `db:"role" json:"role"`
	PlayerID     *string   `db:"player_id" json:"player_id"`
	PurchasedAt  time.Time `db:"purchased_at" json:"purchased_at"`
}

// AdminAccount is an auctioneer login (username + bcrypt token hash)
type AdminAccount struct {
	Username    string    `db:"username" json:"username"`
	DisplayName string    `db:"display_name" json:"display_name"`
	TokenHash   string    `db:"token_hash" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// AdminAudit records an admin action for the audit trail
type AdminAudit struct {
	ID            int             `db:"id" json:"id"`
	AdminUsername string          `db:"admin_username" json:"admin_username"`
	IP            string          `db:"ip" json:"ip"`
	Route         string          `db:"route" json:"route"`
	Action        string          `db:"action" json:"action"`
	Details       json.RawMessage `db:"details" json:"details"`
	Success       bool            `db:"success" json:"success"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

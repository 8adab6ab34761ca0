package auction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Rishikesh183/auction-tracker/internal/models"
)

// Snapshot queries feeding the view models and the snapshot endpoints.
// Each mirrors the initial fetch its projection performs before it starts
// applying feed events.

// LatestPlayer returns the most recently updated player row of any status,
// or nil when the table is empty.
func LatestPlayer(ctx context.Context, db *sqlx.DB) (*models.CurrentPlayer, error) {
	var player models.CurrentPlayer
	err := db.GetContext(ctx, &player, `
		SELECT `+currentPlayerColumns+`
		FROM current_player
		ORDER BY updated_at DESC
		LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// LivePlayer returns the newest live row, or nil when no auction is running
func LivePlayer(ctx context.Context, db *sqlx.DB) (*models.CurrentPlayer, error) {
	var player models.CurrentPlayer
	err := db.GetContext(ctx, &player, `
		SELECT `+currentPlayerColumns+`
		FROM current_player
		WHERE status = 'live'
		ORDER BY created_at DESC
		LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// RecentBids returns bidding history newest first, optionally scoped to one
// player, capped at limit.
func RecentBids(ctx context.Context, db *sqlx.DB, playerID string, limit int) ([]models.Bid, error) {
	var bids []models.Bid
	err := db.SelectContext(ctx, &bids, `
		SELECT id, player_id, player_name, team, amount, timestamp
		FROM bidding_history
		WHERE ($1 = '' OR player_id = $1)
		ORDER BY timestamp DESC
		LIMIT $2`, playerID, limit)
	return bids, err
}

// AllTeams returns every team ordered by name
func AllTeams(ctx context.Context, db *sqlx.DB) ([]models.Team, error) {
	var teams []models.Team
	err := db.SelectContext(ctx, &teams, `
		SELECT id, name, purse_remaining, players_purchased, players_retained, created_at, updated_at
		FROM teams
		ORDER BY name ASC`)
	return teams, err
}

// PlayersByStatus returns players in one status partition, newest first
func PlayersByStatus(ctx context.Context, db *sqlx.DB, status string) ([]models.CurrentPlayer, error) {
	var players []models.CurrentPlayer
	err := db.SelectContext(ctx, &players, `
		SELECT `+currentPlayerColumns+`
		FROM current_player
		WHERE status = $1
		ORDER BY updated_at DESC`, status)
	return players, err
}

// RecentCompleted returns the last limit sold players, newest first
func RecentCompleted(ctx context.Context, db *sqlx.DB, limit int) ([]models.CurrentPlayer, error) {
	var players []models.CurrentPlayer
	err := db.SelectContext(ctx, &players, `
		SELECT `+currentPlayerColumns+`
		FROM current_player
		WHERE status = 'completed'
		ORDER BY updated_at DESC
		LIMIT $1`, limit)
	return players, err
}

// RetainedPlayersForTeam returns a team's retention list
func RetainedPlayersForTeam(ctx context.Context, db *sqlx.DB, teamName string) ([]models.RetainedPlayer, error) {
	var players []models.RetainedPlayer
	err := db.SelectContext(ctx, &players, `
		SELECT id, team_name, player_name, retained_amount, is_overseas, role, created_at
		FROM retained_players
		WHERE team_name = $1
		ORDER BY retained_amount DESC`, teamName)
	return players, err
}

// PurchasesForTeam returns a team's auction purchases, newest first
func PurchasesForTeam(ctx context.Context, db *sqlx.DB, teamName string) ([]models.AuctionPurchase, error) {
	var purchases []models.AuctionPurchase
	err := db.SelectContext(ctx, &purchases, `
		SELECT id, team_name, player_name, auction_price, is_overseas, role, player_id, purchased_at
		FROM auction_purchases
		WHERE team_name = $1
		ORDER BY purchased_at DESC`, teamName)
	return purchases, err
}

// TeamByName returns one team row
func TeamByName(ctx context.Context, db *sqlx.DB, name string) (*models.Team, error) {
	var team models.Team
	err := db.GetContext(ctx, &team, `
		SELECT id, name, purse_remaining, players_purchased, players_retained, created_at, updated_at
		FROM teams
		WHERE name = $1`, name)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

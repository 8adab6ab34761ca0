package auction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

const currentPlayerColumns = `id, name, photo_url, base_price, old_team, current_bid, leading_team, status, created_at, updated_at`

// Gateway performs the auction write operations against the store and
// publishes a change event per committed row.
type Gateway struct {
	db  *sqlx.DB
	pub *feed.Publisher
}

func NewGateway(db *sqlx.DB, pub *feed.Publisher) *Gateway {
	return &Gateway{db: db, pub: pub}
}

// SetupPlayerInput is the /update request body
type SetupPlayerInput struct {
	Name      string  `json:"name"`
	PhotoURL  *string `json:"photo_url"`
	BasePrice float64 `json:"base_price"`
	OldTeam   *string `json:"old_team"`
	Status    string  `json:"status"`
}

// BidInput is the /bid request body
type BidInput struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team"`
	Amount     float64 `json:"amount"`
}

// FinalizeInput is the /finalize request body
type FinalizeInput struct {
	PlayerID    string  `json:"player_id"`
	Team        string  `json:"team"`
	FinalAmount float64 `json:"final_amount"`
}

// SetupOrUpdatePlayer puts the next player on the block. If a live row
// exists it is overwritten in place (current bid reset to base price,
// leading team cleared); otherwise a new row is inserted. The transaction
// holds an advisory lock for its duration, so two concurrent setups can
// never both pass the "is there a live player" check.
func (g *Gateway) SetupOrUpdatePlayer(ctx context.Context, in SetupPlayerInput) (*models.CurrentPlayer, error) {
	if in.Name == "" || in.BasePrice == 0 {
		return nil, NewValidationError("Name and base price are required")
	}
	status := in.Status
	if status == "" {
		status = models.StatusLive
	}

	tx, err := g.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin setup transaction: %w", err)
	}
	defer tx.Rollback()

	// FOR UPDATE locks nothing when the table has no live row, so two
	// concurrent setups could both take the insert branch. The advisory
	// lock serializes setups; the partial unique index on the live status
	// is the schema-level backstop.
	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext('current_player_live'))`); err != nil {
		return nil, fmt.Errorf("failed to acquire setup lock: %w", err)
	}

	var liveID string
	err = tx.GetContext(ctx, &liveID,
		`SELECT id FROM current_player WHERE status = 'live' FOR UPDATE`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to check for live player: %w", err)
	}

	var player models.CurrentPlayer
	changeType := feed.ChangeUpdate

	if err == nil {
		err = tx.GetContext(ctx, &player, `
			UPDATE current_player
			SET name = $1, photo_url = $2, base_price = $3, old_team = $4,
				current_bid = $3, leading_team = NULL, status = $5, updated_at = NOW()
			WHERE id = $6
			RETURNING `+currentPlayerColumns,
			in.Name, in.PhotoURL, in.BasePrice, in.OldTeam, status, liveID)
		if err != nil {
			return nil, fmt.Errorf("failed to update live player: %w", err)
		}
	} else {
		changeType = feed.ChangeInsert
		err = tx.GetContext(ctx, &player, `
			INSERT INTO current_player (id, name, photo_url, base_price, old_team, current_bid, leading_team, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $4, NULL, $6, NOW(), NOW())
			RETURNING `+currentPlayerColumns,
			uuid.NewString(), in.Name, in.PhotoURL, in.BasePrice, in.OldTeam, status)
		if err != nil {
			return nil, fmt.Errorf("failed to insert player: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit setup: %w", err)
	}

	log.Printf("[AUCTION] player on block: %s (base %.2f Cr, %s)", player.Name, player.BasePrice, changeType)
	g.pub.Publish(ctx, feed.TableCurrentPlayer, changeType, player)
	return &player, nil
}

// PlaceBid appends a bidding history row and moves the player's current bid
// and leading team. Amounts are not checked against the previous bid or the
// team's purse; the auctioneer calls bids, the system records them.
func (g *Gateway) PlaceBid(ctx context.Context, in BidInput) (*models.Bid, *models.CurrentPlayer, error) {
	if in.PlayerID == "" || in.PlayerName == "" || in.Team == "" || in.Amount == 0 {
		return nil, nil, NewValidationError("All fields are required")
	}

	tx, err := g.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin bid transaction: %w", err)
	}
	defer tx.Rollback()

	var bid models.Bid
	err = tx.GetContext(ctx, &bid, `
		INSERT INTO bidding_history (id, player_id, player_name, team, amount, timestamp)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, player_id, player_name, team, amount, timestamp`,
		uuid.NewString(), in.PlayerID, in.PlayerName, in.Team, in.Amount)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record bid: %w", err)
	}

	var player models.CurrentPlayer
	err = tx.GetContext(ctx, &player, `
		UPDATE current_player
		SET current_bid = $1, leading_team = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+currentPlayerColumns,
		in.Amount, in.Team, in.PlayerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update current bid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit bid: %w", err)
	}

	log.Printf("[AUCTION] bid: %s %.2f Cr for %s", in.Team, in.Amount, in.PlayerName)
	g.pub.Publish(ctx, feed.TableBiddingHistory, feed.ChangeInsert, bid)
	g.pub.Publish(ctx, feed.TableCurrentPlayer, feed.ChangeUpdate, player)
	return &bid, &player, nil
}

// FinalizeSale marks the player sold and charges the buying team in one
// transaction. The purse decrement and purchase count are a single
// conditional UPDATE, so concurrent finalizations for the same team
// serialize in the database instead of losing an update. The purse is not
// floored at zero; overspending is a product decision left to the auctioneer.
func (g *Gateway) FinalizeSale(ctx context.Context, in FinalizeInput) (*models.CurrentPlayer, *models.Team, error) {
	if in.PlayerID == "" || in.Team == "" || in.FinalAmount == 0 {
		return nil, nil, NewValidationError("All fields are required")
	}

	tx, err := g.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin finalize transaction: %w", err)
	}
	defer tx.Rollback()

	var player models.CurrentPlayer
	err = tx.GetContext(ctx, &player, `
		UPDATE current_player
		SET status = 'completed', current_bid = $1, leading_team = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+currentPlayerColumns,
		in.FinalAmount, in.Team, in.PlayerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to mark player completed: %w", err)
	}

	var team models.Team
	err = tx.GetContext(ctx, &team, `
		UPDATE teams
		SET purse_remaining = purse_remaining - $1,
			players_purchased = players_purchased + 1,
			updated_at = NOW()
		WHERE name = $2
		RETURNING id, name, purse_remaining, players_purchased, players_retained, created_at, updated_at`,
		in.FinalAmount, in.Team)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to charge team %q: %w", in.Team, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit finalize: %w", err)
	}

	log.Printf("[AUCTION] SOLD: %s to %s for %.2f Cr (purse left %.2f)", player.Name, team.Name, in.FinalAmount, team.PurseRemaining)
	g.pub.Publish(ctx, feed.TableCurrentPlayer, feed.ChangeUpdate, player)
	g.pub.Publish(ctx, feed.TableTeams, feed.ChangeUpdate, team)
	return &player, &team, nil
}

// MarkUnsold closes the player's auction with no buyer. No team is touched.
func (g *Gateway) MarkUnsold(ctx context.Context, playerID string) (*models.CurrentPlayer, error) {
	if playerID == "" {
		return nil, NewValidationError("Player ID is required")
	}

	var player models.CurrentPlayer
	err := g.db.GetContext(ctx, &player, `
		UPDATE current_player
		SET status = 'unsold', updated_at = NOW()
		WHERE id = $1
		RETURNING `+currentPlayerColumns,
		playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark player unsold: %w", err)
	}

	log.Printf("[AUCTION] UNSOLD: %s", player.Name)
	g.pub.Publish(ctx, feed.TableCurrentPlayer, feed.ChangeUpdate, player)
	return &player, nil
}

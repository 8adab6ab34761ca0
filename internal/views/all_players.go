package views

import (
	"encoding/json"
	"log"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

// AllPlayersView partitions historical players into sold and unsold lists,
// newest first. The two partitions are kept disjoint here: every event for a
// row first evicts that id from both lists, then upserts it where its status
// says it belongs. A live row belongs to neither.
type AllPlayersView struct {
	Sold   []models.CurrentPlayer
	Unsold []models.CurrentPlayer
}

func NewAllPlayersView(sold, unsold []models.CurrentPlayer) *AllPlayersView {
	return &AllPlayersView{Sold: sold, Unsold: unsold}
}

// Apply folds one current_player event into the partition
func (v *AllPlayersView) Apply(ev feed.Event) bool {
	if ev.Table != feed.TableCurrentPlayer {
		return false
	}

	var player models.CurrentPlayer
	if err := json.Unmarshal(ev.Row, &player); err != nil {
		log.Printf("[VIEW] invalid current_player row: %v", err)
		return false
	}

	// Out-of-order delivery: a partition entry newer than this event wins
	if ev.Type != feed.ChangeDelete && (newerRowHeld(v.Sold, player) || newerRowHeld(v.Unsold, player)) {
		return false
	}

	removedSold := removeByID(&v.Sold, player.ID)
	removedUnsold := removeByID(&v.Unsold, player.ID)

	if ev.Type == feed.ChangeDelete {
		return removedSold || removedUnsold
	}

	switch player.Status {
	case models.StatusCompleted:
		v.Sold = append([]models.CurrentPlayer{player}, v.Sold...)
		return true
	case models.StatusUnsold:
		v.Unsold = append([]models.CurrentPlayer{player}, v.Unsold...)
		return true
	}

	// Back to live (player setup reused the row): staying out of both lists
	// is the change.
	return removedSold || removedUnsold
}

func newerRowHeld(players []models.CurrentPlayer, row models.CurrentPlayer) bool {
	for i := range players {
		if players[i].ID == row.ID {
			return row.UpdatedAt.Before(players[i].UpdatedAt)
		}
	}
	return false
}

func removeByID(players *[]models.CurrentPlayer, id string) bool {
	for i := range *players {
		if (*players)[i].ID == id {
			*players = append((*players)[:i], (*players)[i+1:]...)
			return true
		}
	}
	return false
}

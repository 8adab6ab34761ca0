package views

import (
	"encoding/json"
	"log"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

// DefaultRecentCompletedLimit caps the "just sold" strip on the live board
const DefaultRecentCompletedLimit = 10

// RecentCompletedView keeps the last few sold players, newest first
type RecentCompletedView struct {
	Limit   int
	Players []models.CurrentPlayer
}

func NewRecentCompletedView(limit int, snapshot []models.CurrentPlayer) *RecentCompletedView {
	if limit <= 0 {
		limit = DefaultRecentCompletedLimit
	}
	if len(snapshot) > limit {
		snapshot = snapshot[:limit]
	}
	return &RecentCompletedView{Limit: limit, Players: snapshot}
}

// Apply prepends a player whose row just became completed
func (v *RecentCompletedView) Apply(ev feed.Event) bool {
	if ev.Table != feed.TableCurrentPlayer {
		return false
	}

	var player models.CurrentPlayer
	if err := json.Unmarshal(ev.Row, &player); err != nil {
		log.Printf("[VIEW] invalid current_player row: %v", err)
		return false
	}

	// The row may be reused for the next player, so evict by id first.
	// A held entry newer than this event means out-of-order delivery.
	removed := false
	for i := range v.Players {
		if v.Players[i].ID == player.ID {
			if ev.Type != feed.ChangeDelete && player.UpdatedAt.Before(v.Players[i].UpdatedAt) {
				return false
			}
			v.Players = append(v.Players[:i], v.Players[i+1:]...)
			removed = true
			break
		}
	}

	if ev.Type != feed.ChangeDelete && player.Status == models.StatusCompleted {
		v.Players = append([]models.CurrentPlayer{player}, v.Players...)
		if len(v.Players) > v.Limit {
			v.Players = v.Players[:v.Limit]
		}
		return true
	}
	return removed
}

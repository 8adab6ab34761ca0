package views

import (
	"encoding/json"
	"log"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

// Transition kinds surfaced to viewers when the player on the block closes
const (
	TransitionSold   = "sold"
	TransitionUnsold = "unsold"
)

// Transition is the transient state a viewer shows once per player close
// (the SOLD / UNSOLD banner). Deduplicated by LastAnimatedID so a reload
// does not replay it.
type Transition struct {
	Kind   string               `json:"kind"`
	Player models.CurrentPlayer `json:"player"`
}

// CurrentPlayerView tracks the player on the block. Display is the most
// recently updated row regardless of status, which is what spectators see
// between auctions; Live is set only while a live row exists.
type CurrentPlayerView struct {
	Live           *models.CurrentPlayer
	Display        *models.CurrentPlayer
	LastAnimatedID string
}

// NewCurrentPlayerView seeds the view from the snapshot row (most recently
// updated, any status) and the viewer's persisted last-animated player id.
func NewCurrentPlayerView(latest *models.CurrentPlayer, lastAnimatedID string) *CurrentPlayerView {
	v := &CurrentPlayerView{Display: latest, LastAnimatedID: lastAnimatedID}
	if latest != nil && latest.Status == models.StatusLive {
		v.Live = latest
	}
	return v
}

// Apply folds one feed event into the view. It returns (changed, transition);
// transition is non-nil exactly when this event closed a live auction the
// viewer has not animated yet.
func (v *CurrentPlayerView) Apply(ev feed.Event) (bool, *Transition) {
	if ev.Table != feed.TableCurrentPlayer {
		return false, nil
	}

	var player models.CurrentPlayer
	if err := json.Unmarshal(ev.Row, &player); err != nil {
		log.Printf("[VIEW] invalid current_player row: %v", err)
		return false, nil
	}

	if ev.Type == feed.ChangeDelete {
		if v.Live != nil && v.Live.ID == player.ID {
			v.Live = nil
		}
		if v.Display != nil && v.Display.ID == player.ID {
			v.Display = nil
		}
		return true, nil
	}

	// Publishes run after commit on independent request goroutines, so a
	// row's events can arrive out of order; never fold a row older than the
	// one already held.
	if v.Display != nil && v.Display.ID == player.ID && player.UpdatedAt.Before(v.Display.UpdatedAt) {
		return false, nil
	}
	if v.Live != nil && v.Live.ID == player.ID && player.UpdatedAt.Before(v.Live.UpdatedAt) {
		return false, nil
	}

	var tr *Transition
	switch player.Status {
	case models.StatusLive:
		v.Live = &player
	case models.StatusCompleted, models.StatusUnsold:
		// A close is only animated when this row was the live one; a stale
		// historical update must not re-trigger the banner.
		wasLive := v.Live != nil && v.Live.ID == player.ID
		if wasLive {
			v.Live = nil
			if v.LastAnimatedID != player.ID {
				v.LastAnimatedID = player.ID
				kind := TransitionSold
				if player.Status == models.StatusUnsold {
					kind = TransitionUnsold
				}
				tr = &Transition{Kind: kind, Player: player}
			}
		}
	}

	v.Display = &player
	return true, tr
}

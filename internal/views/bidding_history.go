package views

import (
	"encoding/json"
	"log"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

// DefaultHistoryLimit caps the bidding history a viewer holds in memory
const DefaultHistoryLimit = 50

// BiddingHistoryView keeps bids newest first, capped, optionally scoped to
// one player.
type BiddingHistoryView struct {
	PlayerID string // empty = all players
	Limit    int
	Bids     []models.Bid
}

func NewBiddingHistoryView(playerID string, limit int, snapshot []models.Bid) *BiddingHistoryView {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if len(snapshot) > limit {
		snapshot = snapshot[:limit]
	}
	return &BiddingHistoryView{PlayerID: playerID, Limit: limit, Bids: snapshot}
}

// Apply merges a bid INSERT at the head. Bids are immutable, so UPDATE and
// DELETE never arrive for this table.
func (v *BiddingHistoryView) Apply(ev feed.Event) bool {
	if ev.Table != feed.TableBiddingHistory || ev.Type != feed.ChangeInsert {
		return false
	}

	var bid models.Bid
	if err := json.Unmarshal(ev.Row, &bid); err != nil {
		log.Printf("[VIEW] invalid bidding_history row: %v", err)
		return false
	}

	if v.PlayerID != "" && bid.PlayerID != v.PlayerID {
		return false
	}

	// Insert by timestamp rather than blind prepend; two commits can
	// publish out of order.
	i := 0
	for i < len(v.Bids) && v.Bids[i].Timestamp.After(bid.Timestamp) {
		i++
	}
	v.Bids = append(v.Bids, models.Bid{})
	copy(v.Bids[i+1:], v.Bids[i:])
	v.Bids[i] = bid
	if len(v.Bids) > v.Limit {
		v.Bids = v.Bids[:v.Limit]
	}
	return true
}

// Latest returns the newest bid, or nil when the history is empty
func (v *BiddingHistoryView) Latest() *models.Bid {
	if len(v.Bids) == 0 {
		return nil
	}
	return &v.Bids[0]
}

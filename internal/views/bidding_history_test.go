package views

import (
	"fmt"
	"testing"
	"time"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

func TestBiddingHistoryPrependsNewBids(t *testing.T) {
	v := NewBiddingHistoryView("", 50, nil)

	now := time.Now()
	v.Apply(event(t, feed.TableBiddingHistory, feed.ChangeInsert, bid("b1", "p1", "Kohli", "MI", 3.0, now)))
	v.Apply(event(t, feed.TableBiddingHistory, feed.ChangeInsert, bid("b2", "p1", "Kohli", "CSK", 3.5, now.Add(time.Second))))

	if len(v.Bids) != 2 {
		t.Fatalf("history length = %d, want 2", len(v.Bids))
	}
	if v.Bids[0].ID != "b2" {
		t.Errorf("newest bid not at head: got %s", v.Bids[0].ID)
	}
	if latest := v.Latest(); latest == nil || latest.Team != "CSK" {
		t.Errorf("Latest() = %+v, want CSK bid", latest)
	}
}

func TestBiddingHistoryCap(t *testing.T) {
	v := NewBiddingHistoryView("", 50, nil)

	now := time.Now()
	for i := 0; i < 60; i++ {
		b := bid(fmt.Sprintf("b%d", i), "p1", "Kohli", "MI", float64(i), now.Add(time.Duration(i)*time.Second))
		v.Apply(event(t, feed.TableBiddingHistory, feed.ChangeInsert, b))
	}

	if len(v.Bids) != 50 {
		t.Errorf("history length = %d, want cap of 50", len(v.Bids))
	}
	if v.Bids[0].ID != "b59" {
		t.Errorf("head after cap = %s, want b59", v.Bids[0].ID)
	}
}

func TestBiddingHistoryPlayerScope(t *testing.T) {
	v := NewBiddingHistoryView("p1", 50, nil)

	now := time.Now()
	v.Apply(event(t, feed.TableBiddingHistory, feed.ChangeInsert, bid("b1", "p1", "Kohli", "MI", 3.0, now)))
	changed := v.Apply(event(t, feed.TableBiddingHistory, feed.ChangeInsert, bid("b2", "p2", "Rahul", "CSK", 1.0, now)))

	if changed {
		t.Errorf("bid for a different player changed a scoped view")
	}
	if len(v.Bids) != 1 || v.Bids[0].ID != "b1" {
		t.Errorf("scoped history = %+v, want only b1", v.Bids)
	}
}

func TestBiddingHistoryOutOfOrderInsert(t *testing.T) {
	v := NewBiddingHistoryView("", 50, nil)

	now := time.Now()
	// The later bid's publish lands first; the list must still come out
	// newest first.
	v.Apply(event(t, feed.TableBiddingHistory, feed.ChangeInsert, bid("b2", "p1", "Kohli", "CSK", 5.5, now.Add(time.Second))))
	v.Apply(event(t, feed.TableBiddingHistory, feed.ChangeInsert, bid("b1", "p1", "Kohli", "MI", 5.0, now)))

	if v.Bids[0].ID != "b2" || v.Bids[1].ID != "b1" {
		t.Errorf("order = [%s %s], want [b2 b1]", v.Bids[0].ID, v.Bids[1].ID)
	}
	if latest := v.Latest(); latest == nil || latest.Amount != 5.5 {
		t.Errorf("Latest() = %+v, want the 5.5 bid", latest)
	}
}

func TestBiddingHistorySnapshotTrimmed(t *testing.T) {
	now := time.Now()
	snapshot := make([]models.Bid, 0, 60)
	for i := 0; i < 60; i++ {
		snapshot = append(snapshot, bid(fmt.Sprintf("b%d", i), "p1", "Kohli", "MI", float64(i), now))
	}

	v := NewBiddingHistoryView("", 50, snapshot)
	if len(v.Bids) != 50 {
		t.Errorf("snapshot not trimmed to cap: length = %d", len(v.Bids))
	}
}

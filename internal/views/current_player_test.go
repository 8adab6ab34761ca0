package views

import (
	"testing"
	"time"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

func TestCurrentPlayerTracksLiveRow(t *testing.T) {
	v := NewCurrentPlayerView(nil, "")

	p := player("p1", "Kohli", 2.0, 2.0, "", models.StatusLive)
	changed, tr := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeInsert, p))

	if !changed {
		t.Errorf("INSERT of live player did not change the view")
	}
	if tr != nil {
		t.Errorf("unexpected transition on live insert: %+v", tr)
	}
	if v.Live == nil || v.Live.ID != "p1" {
		t.Errorf("Live not tracking inserted player: %+v", v.Live)
	}
	if v.Display == nil || v.Display.ID != "p1" {
		t.Errorf("Display not tracking inserted player: %+v", v.Display)
	}
}

func TestCurrentPlayerSoldTransition(t *testing.T) {
	v := NewCurrentPlayerView(nil, "")

	live := player("p1", "Kohli", 2.0, 5.5, "MI", models.StatusLive)
	v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeInsert, live))

	sold := player("p1", "Kohli", 2.0, 5.5, "MI", models.StatusCompleted)
	_, tr := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, sold))

	if tr == nil {
		t.Fatalf("live->completed did not produce a transition")
	}
	if tr.Kind != TransitionSold {
		t.Errorf("transition kind = %q, want %q", tr.Kind, TransitionSold)
	}
	if v.Live != nil {
		t.Errorf("Live should clear after sale, got %+v", v.Live)
	}
	if v.Display == nil || v.Display.Status != models.StatusCompleted {
		t.Errorf("Display should show the sold player, got %+v", v.Display)
	}
}

func TestCurrentPlayerUnsoldTransition(t *testing.T) {
	v := NewCurrentPlayerView(nil, "")

	v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeInsert, player("p1", "Rahul", 1.5, 1.5, "", models.StatusLive)))
	_, tr := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p1", "Rahul", 1.5, 1.5, "", models.StatusUnsold)))

	if tr == nil || tr.Kind != TransitionUnsold {
		t.Errorf("live->unsold transition = %+v, want kind %q", tr, TransitionUnsold)
	}
}

func TestCurrentPlayerTransitionDeduplicated(t *testing.T) {
	// A reconnecting viewer carries the last animated id; the same close must
	// not animate twice.
	v := NewCurrentPlayerView(nil, "p1")

	v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeInsert, player("p1", "Kohli", 2.0, 5.5, "MI", models.StatusLive)))
	_, tr := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p1", "Kohli", 2.0, 5.5, "MI", models.StatusCompleted)))

	if tr != nil {
		t.Errorf("already-animated close produced a transition: %+v", tr)
	}

	// The next player's close still animates
	v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeInsert, player("p2", "Rahul", 1.5, 3.0, "CSK", models.StatusLive)))
	_, tr = v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p2", "Rahul", 1.5, 3.0, "CSK", models.StatusCompleted)))

	if tr == nil {
		t.Errorf("next player's close should animate after dedup of the first")
	}
}

func TestCurrentPlayerHistoricalUpdateDoesNotAnimate(t *testing.T) {
	v := NewCurrentPlayerView(nil, "")

	// A completed row updating with no live auction in flight is historical
	// noise, not a close.
	_, tr := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p9", "Old Sale", 1.0, 4.0, "RR", models.StatusCompleted)))
	if tr != nil {
		t.Errorf("historical completed update produced a transition: %+v", tr)
	}
	if v.Display == nil || v.Display.ID != "p9" {
		t.Errorf("Display should still track the most recent update")
	}
}

func TestCurrentPlayerSnapshotSeedsLive(t *testing.T) {
	latest := player("p1", "Kohli", 2.0, 2.0, "", models.StatusLive)
	v := NewCurrentPlayerView(&latest, "")
	if v.Live == nil || v.Live.ID != "p1" {
		t.Errorf("snapshot live row not seeded into Live")
	}

	done := player("p2", "Sold Guy", 1.0, 3.0, "MI", models.StatusCompleted)
	v = NewCurrentPlayerView(&done, "")
	if v.Live != nil {
		t.Errorf("completed snapshot row must not seed Live")
	}
	if v.Display == nil || v.Display.ID != "p2" {
		t.Errorf("snapshot row should seed Display regardless of status")
	}
}

func TestCurrentPlayerDelete(t *testing.T) {
	v := NewCurrentPlayerView(nil, "")
	v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeInsert, player("p1", "Kohli", 2.0, 2.0, "", models.StatusLive)))

	changed, _ := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeDelete, player("p1", "Kohli", 2.0, 2.0, "", models.StatusLive)))
	if !changed {
		t.Errorf("DELETE of tracked player did not change the view")
	}
	if v.Live != nil || v.Display != nil {
		t.Errorf("DELETE should clear both Live and Display")
	}
}

func TestCurrentPlayerStaleEventIgnored(t *testing.T) {
	now := time.Now()

	newer := player("p1", "Kohli", 2.0, 5.5, "MI", models.StatusLive)
	newer.UpdatedAt = now
	v := NewCurrentPlayerView(nil, "")
	v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, newer))

	// The earlier bid's update arrives late; the view must keep 5.5.
	stale := player("p1", "Kohli", 2.0, 4.0, "CSK", models.StatusLive)
	stale.UpdatedAt = now.Add(-time.Second)
	changed, tr := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, stale))

	if changed || tr != nil {
		t.Errorf("stale update applied: changed=%v tr=%+v", changed, tr)
	}
	if v.Live == nil || v.Live.CurrentBid != 5.5 {
		t.Errorf("live row regressed to older bid: %+v", v.Live)
	}
}

func TestCurrentPlayerIgnoresOtherTables(t *testing.T) {
	v := NewCurrentPlayerView(nil, "")
	changed, _ := v.Apply(event(t, feed.TableTeams, feed.ChangeUpdate, team("t1", "MI", 45, 0)))
	if changed {
		t.Errorf("teams event should not change the current player view")
	}
}

package views

import (
	"fmt"
	"testing"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

func TestRecentCompletedPrependsAndCaps(t *testing.T) {
	v := NewRecentCompletedView(10, nil)

	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("p%d", i)
		v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player(id, "Player "+id, 2.0, 5.0, "MI", models.StatusCompleted)))
	}

	if len(v.Players) != 10 {
		t.Fatalf("recent count = %d, want 10", len(v.Players))
	}
	if v.Players[0].ID != "p11" {
		t.Errorf("newest sale not at head: got %s", v.Players[0].ID)
	}
	if v.Players[9].ID != "p2" {
		t.Errorf("oldest retained sale = %s, want p2", v.Players[9].ID)
	}
}

func TestRecentCompletedEvictsReusedRow(t *testing.T) {
	v := NewRecentCompletedView(10, []models.CurrentPlayer{
		player("p1", "Starc", 2.0, 24.75, "KKR", models.StatusCompleted),
	})

	// The same row going live again drops off the strip.
	changed := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p1", "Cummins", 2.0, 2.0, "", models.StatusLive)))
	if !changed {
		t.Fatal("eviction did not report a change")
	}
	if len(v.Players) != 0 {
		t.Errorf("recent count = %d, want 0", len(v.Players))
	}
}

func TestRecentCompletedIgnoresUnsold(t *testing.T) {
	v := NewRecentCompletedView(10, nil)
	if changed := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p1", "Shami", 2.0, 2.0, "", models.StatusUnsold))); changed {
		t.Error("unsold row changed the recent strip")
	}
}

func TestRecentCompletedSnapshotTrimmed(t *testing.T) {
	snapshot := make([]models.CurrentPlayer, 0, 15)
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("p%d", i)
		snapshot = append(snapshot, player(id, "Player "+id, 2.0, 5.0, "MI", models.StatusCompleted))
	}

	v := NewRecentCompletedView(10, snapshot)
	if len(v.Players) != 10 {
		t.Errorf("snapshot not trimmed: length = %d", len(v.Players))
	}
}

package views

import (
	"testing"
	"time"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

func TestAllPlayersSoldPrepends(t *testing.T) {
	v := NewAllPlayersView(nil, nil)

	v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p1", "Starc", 2.0, 24.75, "KKR", models.StatusCompleted)))
	v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p2", "Pant", 2.0, 27.0, "LSG", models.StatusCompleted)))

	if len(v.Sold) != 2 {
		t.Fatalf("sold count = %d, want 2", len(v.Sold))
	}
	if v.Sold[0].ID != "p2" {
		t.Errorf("newest sale not at head: got %s", v.Sold[0].ID)
	}
	if len(v.Unsold) != 0 {
		t.Errorf("unsold count = %d, want 0", len(v.Unsold))
	}
}

func TestAllPlayersStatusMovesBetweenPartitions(t *testing.T) {
	v := NewAllPlayersView(nil, []models.CurrentPlayer{
		player("p1", "Shami", 2.0, 2.0, "", models.StatusUnsold),
	})

	// Re-auctioned and sold this time: the row leaves unsold.
	v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p1", "Shami", 2.0, 10.0, "SRH", models.StatusCompleted)))

	if len(v.Unsold) != 0 {
		t.Errorf("unsold count = %d, want 0", len(v.Unsold))
	}
	if len(v.Sold) != 1 || v.Sold[0].ID != "p1" {
		t.Fatalf("sold = %+v, want single p1", v.Sold)
	}
}

func TestAllPlayersLiveRowInNeitherList(t *testing.T) {
	v := NewAllPlayersView([]models.CurrentPlayer{
		player("p1", "Rahul", 2.0, 14.0, "DC", models.StatusCompleted),
	}, nil)

	// The live row was reset for a fresh auction of the same record.
	changed := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p1", "Rahul", 2.0, 2.0, "", models.StatusLive)))
	if !changed {
		t.Fatal("eviction from sold did not report a change")
	}
	if len(v.Sold) != 0 || len(v.Unsold) != 0 {
		t.Errorf("live row landed in a partition: sold=%d unsold=%d", len(v.Sold), len(v.Unsold))
	}

	// A live row never seen before changes nothing.
	if changed := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p2", "Gill", 2.0, 2.0, "", models.StatusLive))); changed {
		t.Error("unknown live row reported a change")
	}
}

func TestAllPlayersPartitionsStayDisjoint(t *testing.T) {
	v := NewAllPlayersView(nil, nil)

	// One record cycling through every status must never appear twice.
	statuses := []string{
		models.StatusUnsold,
		models.StatusLive,
		models.StatusCompleted,
		models.StatusCompleted,
		models.StatusUnsold,
	}
	for _, status := range statuses {
		v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, player("p1", "Ashwin", 2.0, 2.0, "", status)))

		seen := 0
		for i := range v.Sold {
			if v.Sold[i].ID == "p1" {
				seen++
			}
		}
		for i := range v.Unsold {
			if v.Unsold[i].ID == "p1" {
				seen++
			}
		}
		if seen > 1 {
			t.Fatalf("p1 appears %d times after status %q", seen, status)
		}
	}

	if len(v.Unsold) != 1 || len(v.Sold) != 0 {
		t.Errorf("final partition sold=%d unsold=%d, want 0/1", len(v.Sold), len(v.Unsold))
	}
}

func TestAllPlayersStaleEventIgnored(t *testing.T) {
	now := time.Now()

	sold := player("p1", "Shami", 2.0, 10.0, "SRH", models.StatusCompleted)
	sold.UpdatedAt = now
	v := NewAllPlayersView([]models.CurrentPlayer{sold}, nil)

	// The earlier unsold update arrives after the sale; the sale stands.
	stale := player("p1", "Shami", 2.0, 2.0, "", models.StatusUnsold)
	stale.UpdatedAt = now.Add(-time.Second)
	if changed := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeUpdate, stale)); changed {
		t.Error("stale event moved the player between partitions")
	}
	if len(v.Sold) != 1 || len(v.Unsold) != 0 {
		t.Errorf("partition after stale event: sold=%d unsold=%d, want 1/0", len(v.Sold), len(v.Unsold))
	}
}

func TestAllPlayersDelete(t *testing.T) {
	v := NewAllPlayersView([]models.CurrentPlayer{
		player("p1", "Starc", 2.0, 24.75, "KKR", models.StatusCompleted),
	}, nil)

	if changed := v.Apply(event(t, feed.TableCurrentPlayer, feed.ChangeDelete, player("p1", "Starc", 2.0, 24.75, "KKR", models.StatusCompleted))); !changed {
		t.Fatal("delete did not report a change")
	}
	if len(v.Sold) != 0 {
		t.Errorf("sold count = %d after delete, want 0", len(v.Sold))
	}
}

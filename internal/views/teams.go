package views

import (
	"encoding/json"
	"log"
	"sort"

	"github.com/Rishikesh183/auction-tracker/internal/feed"
	"github.com/Rishikesh183/auction-tracker/internal/models"
)

// TeamsView holds the full team list sorted by name
type TeamsView struct {
	Teams []models.Team
}

func NewTeamsView(snapshot []models.Team) *TeamsView {
	v := &TeamsView{Teams: snapshot}
	v.sortByName()
	return v
}

// Apply replaces the matching team in place on UPDATE. An INSERT (teams are
// seeded, but a late addition is legal) slots in keeping name order.
func (v *TeamsView) Apply(ev feed.Event) bool {
	if ev.Table != feed.TableTeams {
		return false
	}

	var team models.Team
	if err := json.Unmarshal(ev.Row, &team); err != nil {
		log.Printf("[VIEW] invalid teams row: %v", err)
		return false
	}

	switch ev.Type {
	case feed.ChangeUpdate, feed.ChangeInsert:
		for i := range v.Teams {
			if v.Teams[i].ID == team.ID {
				// Out-of-order delivery: keep the newer row
				if team.UpdatedAt.Before(v.Teams[i].UpdatedAt) {
					return false
				}
				v.Teams[i] = team
				v.sortByName()
				return true
			}
		}
		v.Teams = append(v.Teams, team)
		v.sortByName()
		return true
	case feed.ChangeDelete:
		for i := range v.Teams {
			if v.Teams[i].ID == team.ID {
				v.Teams = append(v.Teams[:i], v.Teams[i+1:]...)
				return true
			}
		}
	}
	return false
}

// ByName returns the team with the given name, or nil
func (v *TeamsView) ByName(name string) *models.Team {
	for i := range v.Teams {
		if v.Teams[i].Name == name {
			return &v.Teams[i]
		}
	}
	return nil
}

func (v *TeamsView) sortByName() {
	sort.Slice(v.Teams, func(i, j int) bool {
		return v.Teams[i].Name < v.Teams[j].Name
	})
}

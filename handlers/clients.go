// ABOUTME: Client roster operations
// ABOUTME: Ranked autocomplete search and append-if-absent onboarding
package handlers

import (
	"sort"

	"github.com/amauta/contactos/match"
	"github.com/amauta/contactos/models"
	"github.com/amauta/contactos/parse"
	"github.com/amauta/contactos/store"
)

// Clients serves roster search and quick onboarding.
type Clients struct {
	Roster store.RosterStore
}

func NewClients(roster store.RosterStore) *Clients {
	return &Clients{Roster: roster}
}

// Search returns up to topN roster names ranked against the query. An empty
// query returns the whole roster alphabetically.
func (h *Clients) Search(query string, topN int) ([]string, error) {
	roster, err := h.Roster.FetchRoster()
	if err != nil {
		return nil, err
	}

	names := uniqueNames(roster)
	return match.Rank(query, names, topN), nil
}

// Add onboards a new client under the given advisor code unless a roster
// entry with the same normalized name already exists. Reports whether a row
// was appended.
func (h *Clients) Add(name, ownerCode string) (bool, error) {
	roster, err := h.Roster.FetchRoster()
	if err != nil {
		return false, err
	}

	target := parse.Normalize(name)
	for _, rec := range roster {
		if parse.Normalize(rec.Name) == target {
			return false, nil
		}
	}

	if err := h.Roster.AppendClient(models.ClientRecord{Name: name, Owner: ownerCode}); err != nil {
		return false, err
	}
	return true, nil
}

func uniqueNames(roster []models.ClientRecord) []string {
	seen := make(map[string]bool, len(roster))
	names := make([]string, 0, len(roster))
	for _, rec := range roster {
		if rec.Name == "" || seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		names = append(names, rec.Name)
	}
	sort.Strings(names)
	return names
}

// ABOUTME: In-memory roster and event store
// ABOUTME: Test double and offline backend with the same matching semantics as Sheets
package store

import (
	"sync"

	"github.com/amauta/contactos/models"
	"github.com/amauta/contactos/parse"
)

// Memory implements RosterStore and EventStore in process memory.
type Memory struct {
	mu      sync.Mutex
	roster  []models.ClientRecord
	events  map[string][]models.ContactEvent
	fetches int
}

func NewMemory() *Memory {
	return &Memory{events: make(map[string][]models.ContactEvent)}
}

func (m *Memory) FetchRoster() ([]models.ClientRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches++
	out := make([]models.ClientRecord, len(m.roster))
	copy(out, m.roster)
	return out, nil
}

func (m *Memory) AppendClient(rec models.ClientRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roster = append(m.roster, rec)
	return nil
}

func (m *Memory) EventsFor(sheet string) ([]models.ContactEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.ContactEvent, len(m.events[sheet]))
	copy(out, m.events[sheet])
	return out, nil
}

func (m *Memory) UpsertEvent(sheet string, ev models.ContactEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.events[sheet]
	target := parse.Normalize(ev.Client)
	for i, row := range rows {
		if parse.Normalize(row.Client) == target {
			rows[i] = ev
			return nil
		}
	}
	m.events[sheet] = append(rows, ev)
	return nil
}

func (m *Memory) MarkDone(sheet, client string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.events[sheet]
	target := parse.Normalize(client)
	for i, row := range rows {
		if parse.Normalize(row.Client) == target {
			rows[i].Status = models.StatusDone
			rows[i].NextContactDate = ""
			return nil
		}
	}
	return &models.NotFoundError{Name: client}
}

// FetchCount reports how many roster reads reached this store. Used by the
// cache tests.
func (m *Memory) FetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches
}

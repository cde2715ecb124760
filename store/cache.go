// ABOUTME: Short-lived read cache over the roster store
// ABOUTME: Bounds redundant reads within a TTL; callers invalidate after writes
package store

import (
	"sync"
	"time"

	"github.com/amauta/contactos/models"
)

// DefaultRosterTTL bounds how long a fetched roster may be reused.
const DefaultRosterTTL = 60 * time.Second

// CachedRoster wraps a RosterStore with a TTL read cache. Writes through
// AppendClient invalidate the cache so the matcher never resolves against a
// roster that is missing a row it just created. Event-row writes do not pass
// through here; callers invalidate explicitly when needed.
type CachedRoster struct {
	src RosterStore
	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	roster    []models.ClientRecord
	fetchedAt time.Time
}

func NewCachedRoster(src RosterStore, ttl time.Duration) *CachedRoster {
	if ttl <= 0 {
		ttl = DefaultRosterTTL
	}
	return &CachedRoster{src: src, ttl: ttl, now: time.Now}
}

func (c *CachedRoster) FetchRoster() ([]models.ClientRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.roster != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		out := make([]models.ClientRecord, len(c.roster))
		copy(out, c.roster)
		return out, nil
	}

	roster, err := c.src.FetchRoster()
	if err != nil {
		return nil, err
	}
	c.roster = roster
	c.fetchedAt = c.now()

	out := make([]models.ClientRecord, len(roster))
	copy(out, roster)
	return out, nil
}

func (c *CachedRoster) AppendClient(rec models.ClientRecord) error {
	if err := c.src.AppendClient(rec); err != nil {
		return err
	}
	c.Invalidate()
	return nil
}

// Invalidate drops the cached roster so the next read hits the store.
func (c *CachedRoster) Invalidate() {
	c.mu.Lock()
	c.roster = nil
	c.mu.Unlock()
}

// ABOUTME: Tests for the roster TTL cache
// ABOUTME: Validates reuse within the window, expiry, and write invalidation
package store

import (
	"testing"
	"time"

	"github.com/amauta/contactos/models"
)

func TestCachedRosterReusesWithinTTL(t *testing.T) {
	mem := NewMemory()
	_ = mem.AppendClient(models.ClientRecord{Name: "Juan Pérez", Owner: "FA"})

	cache := NewCachedRoster(mem, time.Minute)
	for i := 0; i < 3; i++ {
		roster, err := cache.FetchRoster()
		if err != nil {
			t.Fatalf("FetchRoster failed: %v", err)
		}
		if len(roster) != 1 {
			t.Fatalf("expected 1 record, got %d", len(roster))
		}
	}

	if got := mem.FetchCount(); got != 1 {
		t.Errorf("expected a single upstream fetch, got %d", got)
	}
}

func TestCachedRosterExpires(t *testing.T) {
	mem := NewMemory()
	cache := NewCachedRoster(mem, time.Minute)

	current := time.Now()
	cache.now = func() time.Time { return current }

	_, _ = cache.FetchRoster()
	current = current.Add(2 * time.Minute)
	_, _ = cache.FetchRoster()

	if got := mem.FetchCount(); got != 2 {
		t.Errorf("expected refetch after TTL, got %d fetches", got)
	}
}

func TestCachedRosterAppendInvalidates(t *testing.T) {
	mem := NewMemory()
	cache := NewCachedRoster(mem, time.Minute)

	_, _ = cache.FetchRoster()
	if err := cache.AppendClient(models.ClientRecord{Name: "Nueva S.A.", Owner: "FL"}); err != nil {
		t.Fatalf("AppendClient failed: %v", err)
	}

	roster, err := cache.FetchRoster()
	if err != nil {
		t.Fatalf("FetchRoster failed: %v", err)
	}
	if len(roster) != 1 {
		t.Errorf("expected the appended client to be visible, got %d records", len(roster))
	}
}

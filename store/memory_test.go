// ABOUTME: Tests for the in-memory event store
// ABOUTME: Validates upsert-by-normalized-name and mark-done semantics
package store

import (
	"errors"
	"testing"

	"github.com/amauta/contactos/models"
)

func TestMemoryUpsertReplacesByNormalizedName(t *testing.T) {
	mem := NewMemory()

	_ = mem.UpsertEvent("FACUNDO", models.ContactEvent{Client: "José Díaz", Type: models.TypeLlamada})
	_ = mem.UpsertEvent("FACUNDO", models.ContactEvent{Client: "JOSE DIAZ", Type: models.TypeReunion})

	events, err := mem.EventsFor("FACUNDO")
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("expected upsert to replace the row, got %d rows", len(events))
	}
	if events[0].Type != models.TypeReunion {
		t.Errorf("expected latest write to win, got %q", events[0].Type)
	}
}

func TestMemoryMarkDone(t *testing.T) {
	mem := NewMemory()
	_ = mem.UpsertEvent("REGINA", models.ContactEvent{
		Client:          "Ana López",
		Status:          models.StatusInProgress,
		NextContactDate: "10/07/2025",
	})

	if err := mem.MarkDone("REGINA", "ana lopez"); err != nil {
		t.Fatalf("MarkDone failed: %v", err)
	}

	events, _ := mem.EventsFor("REGINA")
	if events[0].Status != models.StatusDone || events[0].NextContactDate != "" {
		t.Errorf("expected done status with cleared next contact, got %+v", events[0])
	}
}

func TestMemoryMarkDoneMissingRow(t *testing.T) {
	mem := NewMemory()

	err := mem.MarkDone("REGINA", "Nadie")
	var nf *models.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	// A failed mark-done must not have created a row.
	events, _ := mem.EventsFor("REGINA")
	if len(events) != 0 {
		t.Errorf("expected no rows, got %d", len(events))
	}
}

// ABOUTME: Collaborator interfaces for the roster and per-advisor event sheets
// ABOUTME: Implemented by the Google Sheets backend and by in-memory doubles
package store

import (
	"github.com/amauta/contactos/models"
)

// RosterStore serves the full client roster.
type RosterStore interface {
	// FetchRoster returns every known client with its owning advisor code.
	FetchRoster() ([]models.ClientRecord, error)
	// AppendClient adds a roster row. Absence checks are the caller's job.
	AppendClient(rec models.ClientRecord) error
}

// EventStore is the per-advisor contact-event table, one sheet per advisor,
// columns in fixed order: client, type, reason, date, status, note, next
// contact. Rows are located by normalized client name.
type EventStore interface {
	// EventsFor returns all events on the advisor's sheet.
	EventsFor(sheet string) ([]models.ContactEvent, error)
	// UpsertEvent updates the row matching the event's client, or appends one.
	UpsertEvent(sheet string, ev models.ContactEvent) error
	// MarkDone sets status=Hecho and clears the next-contact date on the
	// matching row. Returns NotFoundError when no row matches; it must never
	// fabricate a row.
	MarkDone(sheet, client string) error
}

// ABOUTME: Data models for the sales-contact tracker
// ABOUTME: Defines ClientRecord, ContactEvent, HistoryEntry, and Reminder structs
package models

import (
	"github.com/google/uuid"
)

// DateLayout is the date literal format used across the spreadsheet,
// the history log, and every user-facing surface.
const DateLayout = "02/01/2006"

// ParseDateLayout additionally accepts single-digit day/month cells.
const ParseDateLayout = "2/1/2006"

// ClientRecord is one row of the roster sheet. Names are not guaranteed
// unique; near-duplicates are expected and tolerated by the matcher.
type ClientRecord struct {
	Name  string `json:"name"`
	Owner string `json:"owner"` // advisor code, e.g. "FA"
}

// ContactType constants. Stored verbatim in the TIPO column.
const (
	TypeLlamada  = "LLAMADA"
	TypeMensajes = "MENSAJES"
	TypeReunion  = "REUNION"
	TypeOtro     = "OTRO"
	TypeContacto = "CONTACTO" // unclassified / generic contact
)

// Status constants. Stored verbatim in the ESTADO column.
const (
	StatusInProgress       = "En curso"
	StatusDone             = "Hecho"
	StatusMeeting          = "REUNION"
	StatusPositiveResponse = "Respuesta positiva"
)

// ContactEvent is one row of an advisor's event sheet, columns A..G in
// fixed order. Dates are DD/MM/YYYY literals, empty when unset.
type ContactEvent struct {
	Client          string `json:"client"`
	Type            string `json:"type"`
	Reason          string `json:"reason"`
	ContactDate     string `json:"contact_date"`
	Status          string `json:"status"`
	Note            string `json:"note"`
	NextContactDate string `json:"next_contact_date,omitempty"`
	Owner           string `json:"owner"`
}

// HistoryEntry is the denormalized projection of a registered contact,
// kept both in the session panel and in the durable history log.
// Identity for de-duplication is (Cliente, Detalle, Fecha).
type HistoryEntry struct {
	ID              uuid.UUID `json:"id"`
	Cliente         string    `json:"cliente"`
	Detalle         string    `json:"detalle"`
	Fecha           string    `json:"fecha"`
	Estado          string    `json:"estado"`
	Nota            string    `json:"nota"`
	ProximoContacto string    `json:"proximo_contacto,omitempty"`
	Asesor          string    `json:"asesor"`
}

// Urgency constants for reminders.
const (
	UrgencyOverdue = "vencido"
	UrgencyDueSoon = "proximo"
)

// Reminder is a pending follow-up derived from an event's next-contact date.
type Reminder struct {
	Client  string `json:"client"`
	Owner   string `json:"owner"` // advisor sheet name
	DueDate string `json:"due_date"`
	Detail  string `json:"detail"`
	Urgency string `json:"urgency"`
}

// ABOUTME: Handler bundle wiring the tracker's collaborators together
// ABOUTME: Built once at startup and passed to the CLI, TUI, and MCP surfaces
package handlers

import (
	"github.com/amauta/contactos/db"
	"github.com/amauta/contactos/models"
	"github.com/amauta/contactos/store"
)

// Set bundles the orchestration handlers sharing one collaborator graph.
type Set struct {
	Registrar *Registrar
	Reminders *Reminders
	Clients   *Clients
	History   *db.HistoryLog
	Session   *models.Session
}

// NewSet wires the handlers over the given stores, history log, and advisor
// sheet map.
func NewSet(roster store.RosterStore, events store.EventStore, history *db.HistoryLog, advisors map[string]string) *Set {
	return &Set{
		Registrar: NewRegistrar(roster, events, history, advisors),
		Reminders: NewReminders(events, advisors),
		Clients:   NewClients(roster),
		History:   history,
		Session:   models.NewSession(),
	}
}

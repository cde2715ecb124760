// ABOUTME: TUI view for pending reminders
// ABOUTME: Renders the reminder table with urgency indicators
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/amauta/contactos/models"
)

func (m Model) renderRemindersTable() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v", m.err)
	}
	if len(m.reminders) == 0 {
		return "🎉 No hay pendientes."
	}

	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Cliente", Width: 28},
		{Title: "Fecha", Width: 12},
		{Title: "Motivo", Width: 30},
		{Title: "Asesor", Width: 12},
	}

	var rows []table.Row
	for _, r := range m.reminders {
		indicator := "🟡"
		if r.Urgency == models.UrgencyOverdue {
			indicator = "🔴"
		}
		detail := r.Detail
		if detail == "" {
			detail = "-"
		}
		rows = append(rows, table.Row{indicator, r.Client, r.DueDate, detail, r.Owner})
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

// ABOUTME: Reminder computation over per-advisor event sheets
// ABOUTME: Classifies due follow-ups as overdue or due-soon; mark-done mutation
package handlers

import (
	"sort"
	"time"

	"github.com/amauta/contactos/models"
	"github.com/amauta/contactos/store"
)

// dueSoonWindow is how far ahead a follow-up still counts as due-soon.
const dueSoonWindow = 3 // days

// Reminders scans event sheets for pending follow-ups.
type Reminders struct {
	Events   store.EventStore
	Advisors map[string]string
}

func NewReminders(events store.EventStore, advisors map[string]string) *Reminders {
	return &Reminders{Events: events, Advisors: advisors}
}

// Due returns the pending follow-ups for one advisor code, or for every
// advisor when ownerCode is empty. An event is overdue when its next-contact
// date is before today, due-soon when within the next three days, excluded
// otherwise. Done events never appear: a done event with a stale next-contact
// date is not a live reminder. Malformed dates are skipped. Results are not
// globally sorted by urgency; presentation decides that.
func (h *Reminders) Due(ownerCode string, today time.Time) ([]models.Reminder, error) {
	sheets, err := h.scopeSheets(ownerCode)
	if err != nil {
		return nil, err
	}

	today = truncateDay(today)
	horizon := today.AddDate(0, 0, dueSoonWindow)

	var pending []models.Reminder
	for _, sheet := range sheets {
		events, err := h.Events.EventsFor(sheet)
		if err != nil {
			return nil, err
		}

		for _, ev := range events {
			if ev.NextContactDate == "" || ev.Status == models.StatusDone {
				continue
			}
			due, err := time.Parse(models.ParseDateLayout, ev.NextContactDate)
			if err != nil {
				continue
			}

			urgency := ""
			switch {
			case due.Before(today):
				urgency = models.UrgencyOverdue
			case !due.After(horizon):
				urgency = models.UrgencyDueSoon
			default:
				continue
			}

			pending = append(pending, models.Reminder{
				Client:  ev.Client,
				Owner:   sheet,
				DueDate: ev.NextContactDate,
				Detail:  ev.Reason,
				Urgency: urgency,
			})
		}
	}
	return pending, nil
}

// MarkDone closes the follow-up for a client within the advisor's scope.
// The row must already exist; a missing row is a NotFoundError, never a
// reason to create one.
func (h *Reminders) MarkDone(client, ownerCode string) error {
	sheet, err := sheetFor(h.Advisors, ownerCode)
	if err != nil {
		return err
	}
	return h.Events.MarkDone(sheet, client)
}

// MarkDoneOnSheet is MarkDone for callers that already hold the sheet name,
// like the reminders TUI where each row carries its sheet.
func (h *Reminders) MarkDoneOnSheet(client, sheet string) error {
	return h.Events.MarkDone(sheet, client)
}

func (h *Reminders) scopeSheets(ownerCode string) ([]string, error) {
	if ownerCode != "" {
		sheet, err := sheetFor(h.Advisors, ownerCode)
		if err != nil {
			return nil, err
		}
		return []string{sheet}, nil
	}

	sheets := make([]string, 0, len(h.Advisors))
	for _, sheet := range h.Advisors {
		sheets = append(sheets, sheet)
	}
	sort.Strings(sheets) // stable scan order across runs
	return sheets, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

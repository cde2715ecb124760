// ABOUTME: Contact registration orchestration
// ABOUTME: parse -> resolve -> persist event row -> session + durable history
package handlers

import (
	"fmt"
	"time"

	"github.com/amauta/contactos/db"
	"github.com/amauta/contactos/match"
	"github.com/amauta/contactos/models"
	"github.com/amauta/contactos/parse"
	"github.com/amauta/contactos/store"
)

// suggestionLimit bounds the similarity sweep shown on a failed lookup.
const suggestionLimit = 5

// Registrar runs the one-contact pipeline. All collaborators are injected;
// every external call blocks until complete and nothing is retried
// automatically: entry mistakes get corrected by hand.
type Registrar struct {
	Roster   store.RosterStore
	Events   store.EventStore
	History  *db.HistoryLog
	Advisors map[string]string
	Now      func() time.Time
}

func NewRegistrar(roster store.RosterStore, events store.EventStore, history *db.HistoryLog, advisors map[string]string) *Registrar {
	return &Registrar{
		Roster:   roster,
		Events:   events,
		History:  history,
		Advisors: advisors,
		Now:      time.Now,
	}
}

// RegisterRequest carries one contact submission. TypeOverride, when set,
// wins over the type detected from the sentence (guided forms know better).
type RegisterRequest struct {
	Sentence        string
	Status          string
	Note            string
	NextContactDate string
	TypeOverride    string
}

// Register parses the sentence, resolves the client against the roster,
// writes the event row to the advisor's sheet, and appends to both history
// views. Returns the canonical client name and the destination sheet.
func (r *Registrar) Register(session *models.Session, req RegisterRequest) (clientName, sheetName string, err error) {
	client, date, reason, err := parse.ExtractContactInfo(req.Sentence)
	if err != nil {
		return "", "", err
	}

	roster, err := r.Roster.FetchRoster()
	if err != nil {
		return "", "", err
	}

	res := match.Resolve(client, roster, "")
	switch res.Outcome {
	case match.NotFound:
		return "", "", &models.NotFoundError{
			Name:        client,
			Suggestions: suggestions(client, roster),
		}
	case match.Ambiguous:
		return "", "", &models.AmbiguousMatchError{Name: client, Candidates: res.Candidates}
	}

	rec := res.Record
	sheet, err := sheetFor(r.Advisors, rec.Owner)
	if err != nil {
		return "", "", err
	}

	contactType := req.TypeOverride
	if contactType == "" {
		contactType = parse.ClassifyType(req.Sentence)
	}

	note := req.Note
	if note == "" {
		note = "-"
	}

	err = r.Events.UpsertEvent(sheet, models.ContactEvent{
		Client:          rec.Name,
		Type:            contactType,
		Reason:          reason,
		ContactDate:     date,
		Status:          req.Status,
		Note:            note,
		NextContactDate: req.NextContactDate,
		Owner:           rec.Owner,
	})
	if err != nil {
		return "", "", err
	}

	entry := models.HistoryEntry{
		Cliente:         rec.Name,
		Detalle:         fmt.Sprintf("%s (%s)", reason, date),
		Fecha:           r.Now().Format(models.DateLayout),
		Estado:          req.Status,
		Nota:            req.Note,
		ProximoContacto: req.NextContactDate,
		Asesor:          sheet,
	}
	session.Append(entry)
	if _, err := r.History.Append(entry); err != nil {
		return "", "", err
	}

	return rec.Name, sheet, nil
}

// suggestions runs the display ranker over the roster to give the user
// something actionable on a failed lookup.
func suggestions(client string, roster []models.ClientRecord) []string {
	names := make([]string, 0, len(roster))
	for _, rec := range roster {
		names = append(names, rec.Name)
	}
	return match.Rank(client, names, suggestionLimit)
}

func sheetFor(advisors map[string]string, code string) (string, error) {
	sheet, ok := advisors[code]
	if !ok || sheet == "" {
		return "", &models.ConfigurationError{Owner: code}
	}
	return sheet, nil
}

// BatchResult summarizes a multi-line submission. One bad line never aborts
// the rest of the batch.
type BatchResult struct {
	Succeeded int
	Failures  []BatchFailure
}

type BatchFailure struct {
	Line int
	Err  error
}

// RegisterBatch registers each request in order, isolating failures per line.
func (r *Registrar) RegisterBatch(session *models.Session, reqs []RegisterRequest) BatchResult {
	var result BatchResult
	for i, req := range reqs {
		if _, _, err := r.Register(session, req); err != nil {
			result.Failures = append(result.Failures, BatchFailure{Line: i + 1, Err: err})
			continue
		}
		result.Succeeded++
	}
	return result
}

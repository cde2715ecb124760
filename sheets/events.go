// ABOUTME: Per-advisor event sheet operations
// ABOUTME: Row lookup by normalized client, column-scoped updates, row appends
package sheets

import (
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/amauta/contactos/models"
	"github.com/amauta/contactos/parse"
)

// Event sheets start data at row 2; row 1 holds headers.
const firstDataRow = 2

// EventsFor reads all contact events from an advisor's sheet.
func (c *Client) EventsFor(sheet string) ([]models.ContactEvent, error) {
	rows, err := c.eventRows(sheet)
	if err != nil {
		return nil, err
	}

	events := make([]models.ContactEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, eventFromRow(row, sheet))
	}
	return events, nil
}

// UpsertEvent writes the event into the row whose client matches by
// normalized name, or appends a new row. Columns A..G in fixed order.
func (c *Client) UpsertEvent(sheet string, ev models.ContactEvent) error {
	rows, err := c.eventRows(sheet)
	if err != nil {
		return err
	}

	values := [][]interface{}{{
		ev.Client, ev.Type, ev.Reason, ev.ContactDate, ev.Status, ev.Note, ev.NextContactDate,
	}}

	if idx := findClientRow(rows, ev.Client); idx >= 0 {
		rowNum := firstDataRow + idx
		_, err = c.svc.Spreadsheets.Values.
			Update(c.spreadsheetID, fmt.Sprintf("%s!A%d:G%d", sheet, rowNum, rowNum),
				&sheets.ValueRange{Values: values}).
			ValueInputOption("RAW").
			Context(c.ctx).Do()
		if err != nil {
			return &models.PersistenceError{Op: "actualizar contacto", Err: err}
		}
		return nil
	}

	_, err = c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, sheet+"!A:G", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(c.ctx).Do()
	if err != nil {
		return &models.PersistenceError{Op: "agregar contacto", Err: err}
	}
	return nil
}

// MarkDone sets estado=Hecho and clears próximo contacto on the matching row.
// Missing rows are a NotFoundError, never created here.
func (c *Client) MarkDone(sheet, client string) error {
	rows, err := c.eventRows(sheet)
	if err != nil {
		return err
	}

	idx := findClientRow(rows, client)
	if idx < 0 {
		return &models.NotFoundError{Name: client}
	}
	rowNum := firstDataRow + idx

	_, err = c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, fmt.Sprintf("%s!E%d", sheet, rowNum),
			&sheets.ValueRange{Values: [][]interface{}{{models.StatusDone}}}).
		ValueInputOption("RAW").
		Context(c.ctx).Do()
	if err != nil {
		return &models.PersistenceError{Op: "marcar hecho", Err: err}
	}

	_, err = c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, fmt.Sprintf("%s!G%d", sheet, rowNum),
			&sheets.ValueRange{Values: [][]interface{}{{""}}}).
		ValueInputOption("RAW").
		Context(c.ctx).Do()
	if err != nil {
		return &models.PersistenceError{Op: "limpiar próximo contacto", Err: err}
	}
	return nil
}

func (c *Client) eventRows(sheet string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, sheet+"!A2:G").
		Context(c.ctx).Do()
	if err != nil {
		return nil, &models.PersistenceError{Op: "leer hoja " + sheet, Err: err}
	}
	return resp.Values, nil
}

func findClientRow(rows [][]interface{}, client string) int {
	target := parse.Normalize(client)
	for i, row := range rows {
		if parse.Normalize(cell(row, 0)) == target {
			return i
		}
	}
	return -1
}

func eventFromRow(row []interface{}, sheet string) models.ContactEvent {
	return models.ContactEvent{
		Client:          cell(row, 0),
		Type:            cell(row, 1),
		Reason:          cell(row, 2),
		ContactDate:     cell(row, 3),
		Status:          cell(row, 4),
		Note:            cell(row, 5),
		NextContactDate: cell(row, 6),
		Owner:           sheet,
	}
}

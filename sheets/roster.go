// ABOUTME: Roster sheet operations
// ABOUTME: Reads the CLIENTES sheet and appends new client rows
package sheets

import (
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/amauta/contactos/models"
)

// FetchRoster reads every client row from the CLIENTES sheet. Rows with an
// empty client cell are skipped; duplicate names are kept, the matcher
// tolerates them.
func (c *Client) FetchRoster() ([]models.ClientRecord, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, RosterSheet+"!A2:B").
		Context(c.ctx).Do()
	if err != nil {
		return nil, &models.PersistenceError{Op: "leer hoja CLIENTES", Err: err}
	}

	var roster []models.ClientRecord
	for _, row := range resp.Values {
		name := strings.TrimSpace(cell(row, 0))
		if name == "" {
			continue
		}
		roster = append(roster, models.ClientRecord{
			Name:  name,
			Owner: strings.TrimSpace(cell(row, 1)),
		})
	}
	return roster, nil
}

// AppendClient adds a roster row. Callers check for existing entries first.
func (c *Client) AppendClient(rec models.ClientRecord) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{{rec.Name, rec.Owner}},
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, RosterSheet+"!A:B", values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(c.ctx).Do()
	if err != nil {
		return &models.PersistenceError{Op: "agregar cliente", Err: err}
	}
	return nil
}

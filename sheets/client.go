// ABOUTME: Google Sheets client for the commercial spreadsheet
// ABOUTME: Service-account auth and spreadsheet handle shared by roster/events
package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// RosterSheet is the sheet holding the client roster (A: client, B: advisor).
const RosterSheet = "CLIENTES"

// Client talks to the shared commercial spreadsheet. It implements
// store.RosterStore and store.EventStore. Constructed once at process start
// and passed by reference to the components that need it.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	ctx           context.Context
}

// NewClient builds an authenticated client from service-account credentials
// JSON (the GOOGLE_CREDS_JSON payload).
func NewClient(ctx context.Context, credsJSON []byte, spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	config, err := google.JWTConfigFromJSON(credsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service-account credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: spreadsheetID, ctx: ctx}, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, ok := row[i].(string)
	if !ok {
		return fmt.Sprintf("%v", row[i])
	}
	return s
}

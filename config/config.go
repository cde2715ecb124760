// ABOUTME: Environment-driven configuration
// ABOUTME: Credentials, spreadsheet ID, advisor sheet map, history DB path
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Config is built once at process start and passed to whatever needs it.
type Config struct {
	SpreadsheetID   string
	GoogleCredsJSON []byte
	// AdvisorSheets maps advisor codes to event sheet names. Staff changes,
	// so the map stays configurable through ADVISOR_SHEETS.
	AdvisorSheets map[string]string
	HistoryPath   string
}

func defaultAdvisorSheets() map[string]string {
	return map[string]string{
		"FA": "FACUNDO",
		"FL": "FLORENCIA",
		"AC": "AGUSTIN",
		"RE": "REGINA",
		"JC": "JERONIMO",
	}
}

// Load reads configuration from the environment. A missing GOOGLE_CREDS_JSON
// or SPREADSHEET_ID is allowed here; commands that need the spreadsheet check
// at startup.
func Load() (*Config, error) {
	cfg := &Config{
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		GoogleCredsJSON: []byte(os.Getenv("GOOGLE_CREDS_JSON")),
		AdvisorSheets:   defaultAdvisorSheets(),
	}

	if raw := os.Getenv("ADVISOR_SHEETS"); raw != "" {
		sheets := make(map[string]string)
		if err := json.Unmarshal([]byte(raw), &sheets); err != nil {
			return nil, fmt.Errorf("invalid ADVISOR_SHEETS: %w", err)
		}
		cfg.AdvisorSheets = sheets
	}

	cfg.HistoryPath = os.Getenv("HISTORY_DB_PATH")
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = filepath.Join(xdg.DataHome, "contactos", "historial.db")
	}

	return cfg, nil
}

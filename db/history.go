// ABOUTME: Durable append-only history log backed by SQLite
// ABOUTME: De-duplicates on (cliente, detalle, fecha); always read fresh
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/amauta/contactos/models"
)

const historySchema = `
	CREATE TABLE IF NOT EXISTS historial (
		id TEXT PRIMARY KEY,
		cliente TEXT NOT NULL,
		detalle TEXT NOT NULL,
		fecha TEXT NOT NULL,
		estado TEXT NOT NULL DEFAULT '',
		nota TEXT NOT NULL DEFAULT '',
		proximo_contacto TEXT NOT NULL DEFAULT '',
		asesor TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(cliente, detalle, fecha)
	)
`

// HistoryLog is the cross-session view of registered contacts. It backs the
// export and the de-duplication the session panel cannot provide on its own.
type HistoryLog struct {
	db *sql.DB
}

// OpenHistoryLog opens (and initializes) the log at path.
func OpenHistoryLog(path string) (*HistoryLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	database, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// Single connection avoids database locked errors.
	database.SetMaxOpenConns(1)

	if _, err := database.Exec(historySchema); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &HistoryLog{db: database}, nil
}

// Append writes an entry unless a row with the same (cliente, detalle, fecha)
// already exists. Reports whether a row was inserted.
func (l *HistoryLog) Append(e models.HistoryEntry) (bool, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	res, err := l.db.Exec(`
		INSERT OR IGNORE INTO historial
			(id, cliente, detalle, fecha, estado, nota, proximo_contacto, asesor)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.Cliente, e.Detalle, e.Fecha, e.Estado, e.Nota, e.ProximoContacto, e.Asesor,
	)
	if err != nil {
		return false, fmt.Errorf("failed to append history entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// All returns every entry most-recent-first. No caching: reminder
// cross-checks and de-duplication need a fresh read every time.
func (l *HistoryLog) All() ([]models.HistoryEntry, error) {
	rows, err := l.db.Query(`
		SELECT id, cliente, detalle, fecha, estado, nota, proximo_contacto, asesor
		FROM historial
		ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		var id string
		if err := rows.Scan(&id, &e.Cliente, &e.Detalle, &e.Fecha, &e.Estado, &e.Nota, &e.ProximoContacto, &e.Asesor); err != nil {
			return nil, err
		}
		e.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse entry ID: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (l *HistoryLog) Close() error {
	return l.db.Close()
}

// ABOUTME: Tests for the durable history log
// ABOUTME: Validates de-duplication on (cliente, detalle, fecha) and ordering
package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amauta/contactos/models"
)

func setupTestLog(t *testing.T) *HistoryLog {
	t.Helper()
	dir, err := os.MkdirTemp("", "historial-*")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	log, err := OpenHistoryLog(filepath.Join(dir, "historial.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })
	return log
}

func TestHistoryAppendAndRead(t *testing.T) {
	log := setupTestLog(t)

	inserted, err := log.Append(models.HistoryEntry{
		Cliente: "JUAN PEREZ",
		Detalle: "revisión de cartera (10/07/2025)",
		Fecha:   "10/07/2025",
		Estado:  models.StatusInProgress,
		Asesor:  "FACUNDO",
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	entries, err := log.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "JUAN PEREZ", entries[0].Cliente)
	assert.NotEqual(t, entries[0].ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestHistoryAppendDeduplicates(t *testing.T) {
	log := setupTestLog(t)

	entry := models.HistoryEntry{
		Cliente: "JUAN PEREZ",
		Detalle: "revisión de cartera (10/07/2025)",
		Fecha:   "10/07/2025",
	}

	inserted, err := log.Append(entry)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = log.Append(entry)
	require.NoError(t, err)
	assert.False(t, inserted, "identical (cliente, detalle, fecha) must not insert twice")

	entries, err := log.All()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistoryDifferentDateIsNotDuplicate(t *testing.T) {
	log := setupTestLog(t)

	_, err := log.Append(models.HistoryEntry{Cliente: "A", Detalle: "x", Fecha: "01/07/2025"})
	require.NoError(t, err)
	inserted, err := log.Append(models.HistoryEntry{Cliente: "A", Detalle: "x", Fecha: "02/07/2025"})
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestHistoryAllMostRecentFirst(t *testing.T) {
	log := setupTestLog(t)

	_, err := log.Append(models.HistoryEntry{Cliente: "PRIMERO", Detalle: "x", Fecha: "01/07/2025"})
	require.NoError(t, err)
	_, err = log.Append(models.HistoryEntry{Cliente: "SEGUNDO", Detalle: "x", Fecha: "02/07/2025"})
	require.NoError(t, err)

	entries, err := log.All()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "SEGUNDO", entries[0].Cliente)
}

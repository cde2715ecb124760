// ABOUTME: Tests for the history CSV export
// ABOUTME: Validates Detalle splitting, fallbacks, and TIPO re-derivation
package handlers

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amauta/contactos/models"
)

func TestExportRowSplitsDetalle(t *testing.T) {
	row := ExportRowFromEntry(models.HistoryEntry{
		Cliente: "JUAN PEREZ",
		Detalle: "revisión de cartera (10/07/2025)",
		Fecha:   "12/07/2025",
	})

	assert.Equal(t, "revisión de cartera", row.Motivo)
	assert.Equal(t, "10/07/2025", row.FechaUltimo)
}

func TestExportRowPassthroughFallsBackToRowDate(t *testing.T) {
	row := ExportRowFromEntry(models.HistoryEntry{
		Cliente: "JUAN PEREZ",
		Detalle: "Llamé a Juan Pérez el 10/07/2025 por cobranza",
		Fecha:   "12/07/2025",
	})

	assert.Equal(t, "Llamé a Juan Pérez el 10/07/2025 por cobranza", row.Motivo)
	assert.Equal(t, "12/07/2025", row.FechaUltimo)
}

func TestExportRowRederivesTipo(t *testing.T) {
	row := ExportRowFromEntry(models.HistoryEntry{
		Detalle: "Llamé a Juan Pérez el 10/07/2025 por cobranza",
	})
	assert.Equal(t, models.TypeLlamada, row.Tipo)

	row = ExportRowFromEntry(models.HistoryEntry{Detalle: "seguimiento general (01/07/2025)"})
	assert.Equal(t, models.TypeContacto, row.Tipo)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []models.HistoryEntry{
		{
			Cliente: "JUAN PEREZ",
			Detalle: "cobranza (10/07/2025)",
			Fecha:   "10/07/2025",
			Estado:  models.StatusInProgress,
			Asesor:  "FACUNDO",
		},
	})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "CLIENTE", records[0][0])
	assert.Equal(t, "JUAN PEREZ", records[1][0])
	assert.Equal(t, "cobranza", records[1][1])
	assert.Equal(t, "10/07/2025", records[1][2])
}

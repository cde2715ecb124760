// ABOUTME: CSV export of the durable history log
// ABOUTME: Splits Detalle back into motivo + fecha and re-derives TIPO
package handlers

import (
	"encoding/csv"
	"io"
	"regexp"

	"github.com/amauta/contactos/models"
	"github.com/amauta/contactos/parse"
)

// detalleRe matches the "<reason> (<date>)" convention the registrar writes.
var detalleRe = regexp.MustCompile(`^(.*) \((\d{1,2}/\d{1,2}/\d{4})\)$`)

// ExportRow is one line of the exported history CSV.
type ExportRow struct {
	Cliente         string
	Motivo          string
	FechaUltimo     string
	Tipo            string
	Estado          string
	Nota            string
	ProximoContacto string
	Asesor          string
}

// ExportRowFromEntry splits the entry's Detalle into (motivo, fecha_ultimo)
// when it follows the registrar's convention; otherwise the detail passes
// through unchanged and the row's own date is used. The TIPO column is
// re-derived from the detail text via the classifier.
func ExportRowFromEntry(e models.HistoryEntry) ExportRow {
	motivo := e.Detalle
	fecha := e.Fecha
	if m := detalleRe.FindStringSubmatch(e.Detalle); m != nil {
		motivo = m[1]
		fecha = m[2]
	}

	return ExportRow{
		Cliente:         e.Cliente,
		Motivo:          motivo,
		FechaUltimo:     fecha,
		Tipo:            parse.ClassifyType(e.Detalle),
		Estado:          e.Estado,
		Nota:            e.Nota,
		ProximoContacto: e.ProximoContacto,
		Asesor:          e.Asesor,
	}
}

var exportHeader = []string{
	"CLIENTE", "MOTIVO", "FECHA_ULTIMO", "TIPO", "ESTADO", "NOTA", "PROXIMO_CONTACTO", "ASESOR",
}

// WriteCSV writes the full history, most-recent-first, as UTF-8 CSV.
func WriteCSV(w io.Writer, entries []models.HistoryEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, e := range entries {
		row := ExportRowFromEntry(e)
		record := []string{
			row.Cliente, row.Motivo, row.FechaUltimo, row.Tipo,
			row.Estado, row.Nota, row.ProximoContacto, row.Asesor,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ABOUTME: History export CLI command
// ABOUTME: Dumps the durable history log as CSV
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/amauta/contactos/handlers"
)

// ExportCommand writes the full durable history as CSV to a file or stdout.
func ExportCommand(h *handlers.Set, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	entries, err := h.History.All()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := handlers.WriteCSV(w, entries); err != nil {
		return err
	}

	if *out != "" {
		fmt.Printf("⬇️  Historial exportado a %s (%d registros)\n", *out, len(entries))
	}
	return nil
}

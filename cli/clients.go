// ABOUTME: Roster CLI commands
// ABOUTME: Ranked client search and quick onboarding
package cli

import (
	"flag"
	"fmt"

	"github.com/amauta/contactos/handlers"
)

// SearchClientsCommand prints roster names ranked against a query.
func SearchClientsCommand(h *handlers.Set, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("q", "", "Name or part of a name")
	limit := fs.Int("limit", 20, "Maximum number of results")
	_ = fs.Parse(args)

	names, err := h.Clients.Search(*query, *limit)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// AddClientCommand onboards a client unless it already exists.
func AddClientCommand(h *handlers.Set, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("nombre", "", "Client name (required)")
	owner := fs.String("asesor", "", "Advisor code (required)")
	_ = fs.Parse(args)

	if *name == "" || *owner == "" {
		return fmt.Errorf("las opciones -nombre y -asesor son obligatorias")
	}

	added, err := h.Clients.Add(*name, *owner)
	if err != nil {
		return err
	}

	if added {
		fmt.Printf("✅ Cliente %q agregado a la hoja CLIENTES\n", *name)
	} else {
		fmt.Printf("ℹ️  El cliente %q ya existía\n", *name)
	}
	return nil
}

// ABOUTME: Contact registration CLI commands
// ABOUTME: Single guided registration and multi-line batch loading
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amauta/contactos/handlers"
	"github.com/amauta/contactos/models"
)

// RegisterCommand registers one contact from a sentence.
func RegisterCommand(h *handlers.Set, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	sentence := fs.String("frase", "", "Contact sentence, e.g. 'Llamé a Juan Pérez el 10/07/2025 por cobranza'")
	status := fs.String("estado", models.StatusInProgress, "Status (En curso/Hecho/REUNION/Respuesta positiva)")
	note := fs.String("nota", "", "Free-form note")
	next := fs.String("proximo", "", "Next contact date DD/MM/YYYY")
	contactType := fs.String("tipo", "", "Explicit type (LLAMADA/MENSAJES/REUNION/OTRO); overrides detection")
	_ = fs.Parse(args)

	if strings.TrimSpace(*sentence) == "" {
		return fmt.Errorf("la opción -frase es obligatoria")
	}

	client, sheet, err := h.Registrar.Register(h.Session, handlers.RegisterRequest{
		Sentence:        *sentence,
		Status:          *status,
		Note:            *note,
		NextContactDate: *next,
		TypeOverride:    *contactType,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✅ Contacto registrado para %s (hoja %s)\n", client, sheet)
	return nil
}

// BatchCommand registers one contact per input line, isolating failures so a
// bad line never aborts the rest of the batch.
func BatchCommand(h *handlers.Set, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	file := fs.String("file", "", "File with one contact sentence per line (default: stdin)")
	status := fs.String("estado", models.StatusInProgress, "Status applied to every line")
	next := fs.String("proximo", "", "Next contact date applied to every line")
	_ = fs.Parse(args)

	var in io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	var reqs []handlers.RegisterRequest
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reqs = append(reqs, handlers.RegisterRequest{
			Sentence:        line,
			Status:          *status,
			NextContactDate: *next,
		})
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	result := h.Registrar.RegisterBatch(h.Session, reqs)
	fmt.Printf("✅ %d contactos cargados.\n", result.Succeeded)
	for _, f := range result.Failures {
		fmt.Printf("⚠️  Línea %d: %v\n", f.Line, f.Err)
	}
	return nil
}

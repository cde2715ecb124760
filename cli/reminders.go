// ABOUTME: Reminder CLI commands
// ABOUTME: Lists pending follow-ups and marks them done
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/amauta/contactos/handlers"
	"github.com/amauta/contactos/models"
)

// RemindersCommand lists due and overdue follow-ups.
func RemindersCommand(h *handlers.Set, args []string) error {
	fs := flag.NewFlagSet("reminders", flag.ExitOnError)
	owner := fs.String("asesor", "", "Advisor code to scope by (empty scans every advisor)")
	overdueOnly := fs.Bool("vencidos", false, "Show only overdue follow-ups")
	_ = fs.Parse(args)

	reminders, err := h.Reminders.Due(*owner, time.Now())
	if err != nil {
		return err
	}

	if len(reminders) == 0 {
		fmt.Println("🎉 No hay pendientes.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CLIENTE\tFECHA\tMOTIVO\tASESOR")
	_, _ = fmt.Fprintln(w, "-------\t-----\t------\t------")

	for _, r := range reminders {
		if *overdueOnly && r.Urgency != models.UrgencyOverdue {
			continue
		}
		icon := "🟡"
		if r.Urgency == models.UrgencyOverdue {
			icon = "🔴"
		}
		detail := r.Detail
		if detail == "" {
			detail = "-"
		}
		_, _ = fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n", icon, r.Client, r.DueDate, detail, r.Owner)
	}

	_ = w.Flush()
	return nil
}

// DoneCommand marks a follow-up as done.
func DoneCommand(h *handlers.Set, args []string) error {
	fs := flag.NewFlagSet("done", flag.ExitOnError)
	client := fs.String("cliente", "", "Client name (required)")
	owner := fs.String("asesor", "", "Advisor code owning the row (required)")
	_ = fs.Parse(args)

	if *client == "" || *owner == "" {
		return fmt.Errorf("las opciones -cliente y -asesor son obligatorias")
	}

	if err := h.Reminders.MarkDone(*client, *owner); err != nil {
		return err
	}

	fmt.Printf("✔️  Recordatorio de %s marcado como hecho\n", *client)
	return nil
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amauta/contactos/db"
	"github.com/amauta/contactos/handlers"
	"github.com/amauta/contactos/models"
	"github.com/amauta/contactos/store"
)

func setupTestCLI(t *testing.T) *handlers.Set {
	t.Helper()

	history, err := db.OpenHistoryLog(filepath.Join(t.TempDir(), "historial.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = history.Close() })

	mem := store.NewMemory()
	if err := mem.AppendClient(models.ClientRecord{Name: "JUAN PEREZ", Owner: "FA"}); err != nil {
		t.Fatal(err)
	}

	return handlers.NewSet(mem, mem, history, map[string]string{"FA": "FACUNDO"})
}

func TestRegisterCommand(t *testing.T) {
	h := setupTestCLI(t)

	err := RegisterCommand(h, []string{"-frase", "Llamé a Juan Pérez el 10/07/2025 por cobranza"})
	if err != nil {
		t.Errorf("RegisterCommand failed: %v", err)
	}

	entries, err := h.History.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 history entry, got %d", len(entries))
	}
}

func TestRegisterCommandRequiresSentence(t *testing.T) {
	h := setupTestCLI(t)

	if err := RegisterCommand(h, nil); err == nil {
		t.Error("expected error without -frase")
	}
}

func TestBatchCommand(t *testing.T) {
	h := setupTestCLI(t)

	file := filepath.Join(t.TempDir(), "lote.txt")
	lines := "Llamé a Juan Pérez el 10/07/2025 por cobranza\n\nfrase sin formato\n"
	if err := os.WriteFile(file, []byte(lines), 0o644); err != nil {
		t.Fatal(err)
	}

	// A malformed line must not abort the batch.
	if err := BatchCommand(h, []string{"-file", file}); err != nil {
		t.Errorf("BatchCommand failed: %v", err)
	}
}

func TestRemindersCommand(t *testing.T) {
	h := setupTestCLI(t)

	err := RemindersCommand(h, []string{"-asesor", "FA"})
	if err != nil {
		t.Errorf("RemindersCommand failed: %v", err)
	}
}

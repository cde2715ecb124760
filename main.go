// ABOUTME: Entry point for the sales contact tracker
// ABOUTME: Routes to the CLI commands, the TUI, or the MCP server
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/amauta/contactos/cli"
	"github.com/amauta/contactos/config"
	"github.com/amauta/contactos/db"
	"github.com/amauta/contactos/handlers"
	"github.com/amauta/contactos/sheets"
	"github.com/amauta/contactos/store"
	"github.com/amauta/contactos/tui"
)

const version = "0.1.0"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("contactos version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "mcp":
		h, closeFn := buildHandlers(cfg)
		defer closeFn()
		if err := cli.MCPCommand(h); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	case "tui":
		fs := flag.NewFlagSet("tui", flag.ExitOnError)
		owner := fs.String("asesor", "", "Advisor code to scope by")
		_ = fs.Parse(commandArgs)

		h, closeFn := buildHandlers(cfg)
		defer closeFn()
		if err := tui.Run(h, *owner); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "register":
		runCommand(cfg, cli.RegisterCommand, commandArgs)
	case "batch":
		runCommand(cfg, cli.BatchCommand, commandArgs)
	case "reminders":
		runCommand(cfg, cli.RemindersCommand, commandArgs)
	case "done":
		runCommand(cfg, cli.DoneCommand, commandArgs)

	case "clients":
		if len(commandArgs) == 0 {
			fmt.Println("Error: clients requires a subcommand (search or add)")
			printUsage()
			os.Exit(1)
		}
		switch commandArgs[0] {
		case "search":
			runCommand(cfg, cli.SearchClientsCommand, commandArgs[1:])
		case "add":
			runCommand(cfg, cli.AddClientCommand, commandArgs[1:])
		default:
			fmt.Printf("Unknown clients command: %s\n\n", commandArgs[0])
			printUsage()
			os.Exit(1)
		}

	case "export":
		runCommand(cfg, cli.ExportCommand, commandArgs)

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runCommand(cfg *config.Config, cmd func(*handlers.Set, []string) error, args []string) {
	h, closeFn := buildHandlers(cfg)
	defer closeFn()
	if err := cmd(h, args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// buildHandlers wires the spreadsheet stores, the durable history log, and the
// handler set. The returned func closes the history database.
func buildHandlers(cfg *config.Config) (*handlers.Set, func()) {
	if len(cfg.GoogleCredsJSON) == 0 {
		log.Fatal("GOOGLE_CREDS_JSON is not set; the spreadsheet is required")
	}

	client, err := sheets.NewClient(context.Background(), cfg.GoogleCredsJSON, cfg.SpreadsheetID)
	if err != nil {
		log.Fatalf("Failed to connect to Google Sheets: %v", err)
	}

	history, err := db.OpenHistoryLog(cfg.HistoryPath)
	if err != nil {
		log.Fatalf("Failed to open history database: %v", err)
	}

	roster := store.NewCachedRoster(client, store.DefaultRosterTTL)
	h := handlers.NewSet(roster, client, history, cfg.AdvisorSheets)
	return h, func() { _ = history.Close() }
}

func printUsage() {
	fmt.Printf(`contactos v%s - Seguimiento de contactos comerciales

USAGE:
  contactos [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit

ENVIRONMENT:
  GOOGLE_CREDS_JSON      Service-account credentials JSON (required)
  SPREADSHEET_ID         Shared commercial spreadsheet ID (required)
  ADVISOR_SHEETS         JSON map of advisor codes to sheet names (optional)
  HISTORY_DB_PATH        History database path (default: ~/.local/share/contactos/historial.db)

COMMANDS:
  contactos register     Register one contact from a sentence
    -frase <text>          Contact sentence (required)
    -estado <status>       Status (default: En curso)
    -nota <text>           Free-form note
    -proximo <date>        Next contact date DD/MM/YYYY
    -tipo <type>           Explicit type; overrides detection

  contactos batch        Register one contact per input line
    -file <path>           Input file (default: stdin)
    -estado <status>       Status applied to every line
    -proximo <date>        Next contact date applied to every line

  contactos reminders    List due and overdue follow-ups
    -asesor <code>         Scope to one advisor
    -vencidos              Show only overdue follow-ups

  contactos done         Mark a follow-up as done
    -cliente <name>        Client name (required)
    -asesor <code>         Advisor code (required)

  contactos clients search   Search the roster
    -q <text>              Query (empty lists everything)
    -limit <n>             Max results (default: 20)

  contactos clients add      Add a client to the roster
    -nombre <name>         Client name (required)
    -asesor <code>         Advisor code (required)

  contactos export       Export the durable history as CSV
    -out <path>            Output file (default: stdout)

  contactos tui          Interactive reminders dashboard
    -asesor <code>         Scope to one advisor

  contactos mcp          Start MCP server (for Claude Desktop integration)

EXAMPLES:
  contactos register -frase "Llamé a Juan Pérez el 10/07/2025 por revisión de cartera"
  contactos reminders -asesor FA
  contactos clients search -q garcia
  contactos export -out historial.csv

`, version)
}

// ABOUTME: MCP server subcommand
// ABOUTME: Exposes the contact tracker as MCP tools on stdio
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/amauta/contactos/handlers"
)

// MCPCommand starts the MCP server on stdio.
func MCPCommand(h *handlers.Set) error {
	log.Println("Starting contactos MCP server...")

	tools := handlers.NewToolHandlers(h)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "contactos",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "register_contact",
		Description: "Register a sales contact from a natural Spanish sentence like 'Llamé a Juan Pérez el 10/07/2025 por revisión de cartera'",
	}, tools.RegisterContact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_clients",
		Description: "Search the client roster by name, ranked by closeness to the query",
	}, tools.FindClients)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_client",
		Description: "Add a new client to the roster under an advisor code",
	}, tools.AddClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "due_reminders",
		Description: "List overdue and upcoming follow-ups, optionally scoped to one advisor",
	}, tools.DueReminders)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mark_done",
		Description: "Mark a client's pending follow-up as done",
	}, tools.MarkDone)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}

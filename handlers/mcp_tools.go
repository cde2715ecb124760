// ABOUTME: MCP tool handlers over the tracker
// ABOUTME: Implements register_contact, find_clients, due_reminders, and friends
package handlers

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/amauta/contactos/models"
)

// ToolHandlers adapts the handler set to MCP tool calls.
type ToolHandlers struct {
	set *Set
}

func NewToolHandlers(set *Set) *ToolHandlers {
	return &ToolHandlers{set: set}
}

type RegisterContactInput struct {
	Sentence        string `json:"sentence" jsonschema:"Contact sentence, e.g. 'Llamé a Juan Pérez el 10/07/2025 por revisión de cartera' (required)"`
	Status          string `json:"status,omitempty" jsonschema:"Status: En curso, Hecho, REUNION, Respuesta positiva"`
	Note            string `json:"note,omitempty" jsonschema:"Free-form note"`
	NextContactDate string `json:"next_contact_date,omitempty" jsonschema:"Next contact date DD/MM/YYYY"`
	Type            string `json:"type,omitempty" jsonschema:"Explicit contact type (LLAMADA/MENSAJES/REUNION/OTRO); overrides detection"`
}

type RegisterContactOutput struct {
	Client string `json:"client"`
	Sheet  string `json:"sheet"`
}

func (h *ToolHandlers) RegisterContact(_ context.Context, request *mcp.CallToolRequest, input RegisterContactInput) (*mcp.CallToolResult, RegisterContactOutput, error) {
	status := input.Status
	if status == "" {
		status = models.StatusInProgress
	}

	client, sheet, err := h.set.Registrar.Register(h.set.Session, RegisterRequest{
		Sentence:        input.Sentence,
		Status:          status,
		Note:            input.Note,
		NextContactDate: input.NextContactDate,
		TypeOverride:    input.Type,
	})
	if err != nil {
		return nil, RegisterContactOutput{}, err
	}

	return nil, RegisterContactOutput{Client: client, Sheet: sheet}, nil
}

type FindClientsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (name or part of a name)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindClientsOutput struct {
	Clients []string `json:"clients"`
}

func (h *ToolHandlers) FindClients(_ context.Context, request *mcp.CallToolRequest, input FindClientsInput) (*mcp.CallToolResult, FindClientsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	names, err := h.set.Clients.Search(input.Query, limit)
	if err != nil {
		return nil, FindClientsOutput{}, err
	}
	return nil, FindClientsOutput{Clients: names}, nil
}

type AddClientInput struct {
	Name  string `json:"name" jsonschema:"Client name (required)"`
	Owner string `json:"owner" jsonschema:"Advisor code the client belongs to (required)"`
}

type AddClientOutput struct {
	Added   bool   `json:"added"`
	Message string `json:"message"`
}

func (h *ToolHandlers) AddClient(_ context.Context, request *mcp.CallToolRequest, input AddClientInput) (*mcp.CallToolResult, AddClientOutput, error) {
	added, err := h.set.Clients.Add(input.Name, input.Owner)
	if err != nil {
		return nil, AddClientOutput{}, err
	}

	msg := "el cliente ya existía"
	if added {
		msg = "cliente agregado a la hoja CLIENTES"
	}
	return nil, AddClientOutput{Added: added, Message: msg}, nil
}

type DueRemindersInput struct {
	Owner string `json:"owner,omitempty" jsonschema:"Advisor code to scope by; empty scans every advisor"`
}

type DueRemindersOutput struct {
	Reminders []models.Reminder `json:"reminders"`
}

func (h *ToolHandlers) DueReminders(_ context.Context, request *mcp.CallToolRequest, input DueRemindersInput) (*mcp.CallToolResult, DueRemindersOutput, error) {
	reminders, err := h.set.Reminders.Due(input.Owner, time.Now())
	if err != nil {
		return nil, DueRemindersOutput{}, err
	}
	return nil, DueRemindersOutput{Reminders: reminders}, nil
}

type MarkDoneInput struct {
	Client string `json:"client" jsonschema:"Client name (required)"`
	Owner  string `json:"owner" jsonschema:"Advisor code owning the event row (required)"`
}

type MarkDoneOutput struct {
	Success bool `json:"success"`
}

func (h *ToolHandlers) MarkDone(_ context.Context, request *mcp.CallToolRequest, input MarkDoneInput) (*mcp.CallToolResult, MarkDoneOutput, error) {
	if err := h.set.Reminders.MarkDone(input.Client, input.Owner); err != nil {
		return nil, MarkDoneOutput{}, err
	}
	return nil, MarkDoneOutput{Success: true}, nil
}

// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Interactive dashboard over pending follow-up reminders
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amauta/contactos/handlers"
	"github.com/amauta/contactos/models"
)

// Model is the main bubbletea model.
type Model struct {
	handlers *handlers.Set
	owner    string

	reminders   []models.Reminder
	selectedRow int
	status      string
	err         error

	width  int
	height int
}

// NewModel creates the reminders dashboard, optionally scoped to one advisor.
func NewModel(h *handlers.Set, owner string) Model {
	m := Model{
		handlers: h,
		owner:    owner,
		width:    80,
		height:   24,
	}
	m.reload()
	return m
}

// Run starts the full-screen program.
func Run(h *handlers.Set, owner string) error {
	p := tea.NewProgram(NewModel(h, owner), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) reload() {
	m.reminders, m.err = m.handlers.Reminders.Due(m.owner, time.Now())
	if m.selectedRow >= len(m.reminders) {
		m.selectedRow = 0
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < len(m.reminders)-1 {
			m.selectedRow++
		}
	case "r":
		m.reload()
		m.status = "Recargado"
	case "d":
		if m.selectedRow < len(m.reminders) {
			r := m.reminders[m.selectedRow]
			if err := m.handlers.Reminders.MarkDoneOnSheet(r.Client, r.Owner); err != nil {
				m.status = fmt.Sprintf("Error: %v", err)
			} else {
				m.status = fmt.Sprintf("✔️ %s marcado como hecho", r.Client)
				m.reload()
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	title := titleStyle.Render("📋 Recordatorios pendientes")
	if m.owner != "" {
		title = titleStyle.Render(fmt.Sprintf("📋 Recordatorios pendientes (%s)", m.owner))
	}

	body := m.renderRemindersTable()

	help := helpStyle.Render("↑/↓ navegar • d marcar hecho • r recargar • q salir")

	out := title + "\n" + body + "\n" + help
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status)
	}
	return out
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))
)

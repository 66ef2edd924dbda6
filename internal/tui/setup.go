package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// SetupModel collects a roster of distinct player names. An empty enter
// finishes once the minimum is reached.
type SetupModel struct {
	nameInput  textinput.Model
	logger     *log.Logger
	minPlayers int

	names   []string
	errMsg  string
	done    bool
	aborted bool
}

// NewSetupModel creates the roster entry screen, pre-seeded with any
// remembered names.
func NewSetupModel(remembered []string, minPlayers int, logger *log.Logger) *SetupModel {
	ti := textinput.New()
	ti.Placeholder = "nombre del jugador"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &SetupModel{
		nameInput:  ti,
		logger:     logger.WithPrefix("setup"),
		minPlayers: minPlayers,
		names:      append([]string(nil), remembered...),
	}
}

// Names returns the collected roster.
func (m *SetupModel) Names() []string {
	return m.names
}

// Aborted reports whether the user quit instead of finishing.
func (m *SetupModel) Aborted() bool {
	return m.aborted
}

func (m *SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				if len(m.names) >= m.minPlayers {
					m.done = true
					return m, tea.Quit
				}
				m.errMsg = fmt.Sprintf("hacen falta al menos %d jugadores", m.minPlayers)
				return m, nil
			}
			if m.hasName(name) {
				m.errMsg = fmt.Sprintf("%s ya está en la lista", name)
				return m, nil
			}
			m.names = append(m.names, name)
			m.errMsg = ""
			m.nameInput.SetValue("")
			return m, nil

		case "backspace":
			// Remove the last added name when the input is empty.
			if m.nameInput.Value() == "" && len(m.names) > 0 {
				m.names = m.names[:len(m.names)-1]
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *SetupModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("El Impostor · jugadores"))
	b.WriteString("\n\n")
	for i, name := range m.names {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, PlayerStyle.Render(name)))
	}
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(HintStyle.Render("enter añade · enter en blanco termina · esc cancela"))
	b.WriteString("\n")
	return b.String()
}

func (m *SetupModel) hasName(name string) bool {
	for _, existing := range m.names {
		if existing == name {
			return true
		}
	}
	return false
}

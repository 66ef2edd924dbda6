// Package tui implements the pass-the-device screens: collecting a
// roster and privately revealing each player's role for one round.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/elimpostor/elimpostor/internal/game"
)

type revealPhase int

const (
	phaseHandoff revealPhase = iota // waiting for the named player to take the device
	phaseShowing                    // role on screen, waiting to hide
	phaseSummary                    // all roles dealt, show starter
)

// RevealModel walks the shuffled roster: each player takes the device,
// reveals their role, hides it, and passes on. The round itself is
// immutable; the model only tracks where in the walk we are.
type RevealModel struct {
	round  game.Round
	logger *log.Logger

	phase     revealPhase
	current   int
	playAgain bool
	quitting  bool
}

// NewRevealModel creates the reveal flow for one round.
func NewRevealModel(round game.Round, logger *log.Logger) *RevealModel {
	return &RevealModel{
		round:  round,
		logger: logger.WithPrefix("reveal"),
	}
}

// PlayAgain reports whether the summary screen ended with a replay
// request.
func (m *RevealModel) PlayAgain() bool {
	return m.playAgain
}

func (m *RevealModel) Init() tea.Cmd {
	return nil
}

func (m *RevealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "enter", " ":
		switch m.phase {
		case phaseHandoff:
			m.phase = phaseShowing
		case phaseShowing:
			m.current++
			if m.current >= len(m.round.Players) {
				m.phase = phaseSummary
			} else {
				m.phase = phaseHandoff
			}
		case phaseSummary:
			m.quitting = true
			return m, tea.Quit
		}

	case "r":
		if m.phase == phaseSummary {
			m.playAgain = true
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *RevealModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("El Impostor"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseHandoff:
		player := m.round.Players[m.current]
		b.WriteString(FrameStyle.Render(fmt.Sprintf(
			"Pásale el dispositivo a %s\n\n%s",
			PlayerStyle.Render(player),
			HintStyle.Render("pulsa enter cuando nadie más mire"),
		)))

	case phaseShowing:
		b.WriteString(FrameStyle.Render(m.roleCard()))
		b.WriteString("\n")
		b.WriteString(HintStyle.Render("pulsa enter para ocultar y pasar"))

	case phaseSummary:
		b.WriteString(FrameStyle.Render(fmt.Sprintf(
			"Todos los papeles están repartidos.\n\nEmpieza %s",
			PlayerStyle.Render(m.round.Starter),
		)))
		b.WriteString("\n")
		b.WriteString(HintStyle.Render("r para jugar otra vez · q para salir"))
	}
	b.WriteString("\n")
	return b.String()
}

// roleCard renders the current player's secret.
func (m *RevealModel) roleCard() string {
	record := m.round.Roles[m.current]
	player := m.round.Players[m.current]

	switch record.Role {
	case game.RoleImpostor:
		card := fmt.Sprintf("%s, eres %s\n\nNo conoces la palabra secreta.\nDisimula.",
			PlayerStyle.Render(player), ImpostorStyle.Render("el impostor"))
		if record.Partner != "" {
			card += fmt.Sprintf("\n\nTu cómplice es %s.", ImpostorStyle.Render(record.Partner))
		}
		return card

	case game.RoleJester:
		return fmt.Sprintf("%s, eres %s\n\nLa palabra secreta es %s.\nGanas si te expulsan a ti.",
			PlayerStyle.Render(player), JesterStyle.Render("el bufón"),
			WordStyle.Render(m.round.SecretWord))

	default:
		return fmt.Sprintf("%s, eres ciudadano\n\nLa palabra secreta es %s.",
			PlayerStyle.Render(player), WordStyle.Render(m.round.SecretWord))
	}
}

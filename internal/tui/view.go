package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pdxmph/feedbook/internal/state"
)

// View renders the UI
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var panel string
	switch m.state.View() {
	case state.ViewContacts:
		panel = m.renderContacts()
	default:
		panel = m.renderFeedback()
	}

	parts := []string{
		m.renderNav(),
		borderStyle.Width(m.width - 2).Render(panel),
	}
	if m.alert != "" {
		parts = append(parts, alertStyle.Render(" "+m.alert))
	}
	parts = append(parts, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderNav renders the view switcher
func (m Model) renderNav() string {
	labels := []string{"[1] Feedback", "[2] Contacts"}

	var items []string
	for i, v := range state.Views {
		if v == m.state.View() {
			items = append(items, activeNavStyle.Render(" "+labels[i]+" "))
		} else {
			items = append(items, navStyle.Render(" "+labels[i]+" "))
		}
	}
	return strings.Join(items, " ")
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	switch m.mode {
	case modeForm:
		return " Tab/↓: next • Shift+Tab/↑: prev • Enter: add contact • Esc: cancel"
	case modeFilter:
		return " Type to filter • ↑/↓: navigate • Enter: confirm • Esc: clear"
	}

	if m.state.View() == state.ViewFeedback {
		return " ←/→: select • Enter: vote • g/n/b: good/neutral/bad • 1/2: switch view • q: quit"
	}

	help := " j/k: navigate • a: add • d: delete • /: filter"
	if m.state.Filter() != "" {
		help += " • Esc: clear filter"
	}
	help += " • 1/2: switch view • q: quit"
	return help
}

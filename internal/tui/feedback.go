package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pdxmph/feedbook/internal/state"
)

func (m Model) updateFeedback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.button > 0 {
			m.button--
		}
	case "l", "right":
		if m.button < len(state.Categories)-1 {
			m.button++
		}
	case "enter", " ":
		return m.leaveFeedback(state.Categories[m.button]), nil
	case "g":
		return m.leaveFeedback(state.Good), nil
	case "n":
		return m.leaveFeedback(state.Neutral), nil
	case "b":
		return m.leaveFeedback(state.Bad), nil
	}
	return m, nil
}

func (m Model) leaveFeedback(c state.Category) Model {
	if err := m.state.LeaveFeedback(c); err != nil {
		m.err = err
		return m
	}
	for i, candidate := range state.Categories {
		if candidate == c {
			m.button = i
		}
	}
	slog.Debug("left feedback", "category", c, "total", m.state.Total())
	return m
}

// renderFeedback renders the feedback panel
func (m Model) renderFeedback() string {
	var lines []string

	lines = append(lines, titleStyle.Render("Please leave feedback"))
	lines = append(lines, "")

	var buttons []string
	for i, c := range state.Categories {
		label := fmt.Sprintf("[ %s ]", buttonLabel(c))
		if i == m.button {
			label = selectedStyle.Render(label)
		}
		buttons = append(buttons, label)
	}
	lines = append(lines, strings.Join(buttons, "  "))
	lines = append(lines, "")

	lines = append(lines, titleStyle.Render("Statistics"))
	lines = append(lines, "")

	total := m.state.Total()
	if total == 0 {
		lines = append(lines, dimStyle.Render("There is no feedback"))
		return strings.Join(lines, "\n")
	}

	tally := m.state.Tally()
	lines = append(lines, fmt.Sprintf("Good: %d", tally.Good))
	lines = append(lines, fmt.Sprintf("Neutral: %d", tally.Neutral))
	lines = append(lines, fmt.Sprintf("Bad: %d", tally.Bad))
	lines = append(lines, fmt.Sprintf("Total: %d", total))
	lines = append(lines, fmt.Sprintf("Positive feedback: %d%%", m.state.PositivePercentage()))

	return strings.Join(lines, "\n")
}

func buttonLabel(c state.Category) string {
	name := c.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

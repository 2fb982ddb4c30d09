package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pdxmph/feedbook/internal/state"
)

func (m Model) updateContacts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.mode = modeForm
		m.formField = FormFieldName
		for i := range m.form {
			m.form[i].Blur()
		}
		m.form[FormFieldName].Focus()
		return m, textinput.Blink

	case "/":
		m.mode = modeFilter
		m.filter.SetValue(m.state.Filter())
		m.filter.CursorEnd()
		m.filter.Focus()
		return m, textinput.Blink

	case "j", "down":
		if m.selected < len(m.state.VisibleContacts())-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "d":
		contacts := m.state.VisibleContacts()
		if len(contacts) > 0 && m.selected < len(contacts) {
			contact := contacts[m.selected]
			if m.state.DeleteContact(contact.ID) {
				slog.Debug("deleted contact", "id", contact.ID, "name", contact.Name)
			}
			m.selected = m.ensureValidSelection()
		}

	case "esc":
		// Clear filter and return to full list
		if m.state.Filter() != "" {
			m = m.setFilter("")
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m = m.closeForm()
		return m, nil

	case "tab", "down":
		if m.formField < FormFieldCount-1 {
			return m.focusField(m.formField + 1)
		}
		return m, nil

	case "shift+tab", "up":
		if m.formField > 0 {
			return m.focusField(m.formField - 1)
		}
		return m, nil

	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form[m.formField], cmd = m.form[m.formField].Update(msg)
	return m, cmd
}

func (m Model) focusField(field int) (tea.Model, tea.Cmd) {
	m.form[m.formField].Blur()
	m.formField = field
	m.form[m.formField].Focus()
	return m, textinput.Blink
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	name := m.form[FormFieldName].Value()
	number := m.form[FormFieldNumber].Value()

	if strings.TrimSpace(name) == "" {
		m.alert = "Name is required."
		return m.focusField(FormFieldName)
	}
	if strings.TrimSpace(number) == "" {
		m.alert = "Number is required."
		return m.focusField(FormFieldNumber)
	}

	contact, err := m.state.AddContact(name, number)
	if errors.Is(err, state.ErrDuplicateName) {
		slog.Debug("rejected contact", "name", name)
		m.alert = err.Error()
		return m, nil
	}
	if err != nil {
		m.err = err
		return m, nil
	}

	slog.Debug("added contact", "id", contact.ID, "name", contact.Name)
	return m.closeForm(), nil
}

func (m Model) closeForm() Model {
	m.mode = modeNormal
	m.formField = FormFieldName
	for i := range m.form {
		m.form[i].Reset()
		m.form[i].Blur()
	}
	return m
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.filter.Blur()
		return m.setFilter(""), nil
	case "enter":
		m.mode = modeNormal
		m.filter.Blur()
		return m, nil
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down":
		if m.selected < len(m.state.VisibleContacts())-1 {
			m.selected++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != m.state.Filter() {
		m = m.setFilter(m.filter.Value())
	}
	return m, cmd
}

func (m Model) setFilter(text string) Model {
	m.state.SetFilter(text)
	if m.filter.Value() != text {
		m.filter.SetValue(text)
	}
	m.selected = m.ensureValidSelection()
	slog.Debug("changed filter", "filter", text, "visible", len(m.state.VisibleContacts()))
	return m
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	contacts := m.state.VisibleContacts()
	if len(contacts) == 0 {
		return 0
	}
	if m.selected >= len(contacts) {
		return len(contacts) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// renderContacts renders the phonebook panel
func (m Model) renderContacts() string {
	var lines []string

	lines = append(lines, titleStyle.Render("Phonebook"))
	lines = append(lines, "")

	fieldLabels := []string{
		"Name:   ",
		"Number: ",
	}
	for i, label := range fieldLabels {
		if m.mode == modeForm {
			lines = append(lines, label+m.form[i].View())
		} else {
			lines = append(lines, label+dimStyle.Render(m.form[i].Placeholder))
		}
	}
	if m.mode == modeForm {
		lines = append(lines, selectedStyle.Render("[ Add contact ]"))
	} else {
		lines = append(lines, dimStyle.Render("[ Add contact ] press a"))
	}
	lines = append(lines, "")

	contacts := m.state.VisibleContacts()
	lines = append(lines, titleStyle.Render(fmt.Sprintf("Contacts (%d)", len(contacts))))
	lines = append(lines, "")

	if m.mode == modeFilter {
		lines = append(lines, m.filter.View())
	} else if filter := m.state.Filter(); filter != "" {
		lines = append(lines, "Find contacts by name: "+filter)
	} else {
		lines = append(lines, dimStyle.Render("Find contacts by name: press /"))
	}
	lines = append(lines, "")

	if len(contacts) == 0 {
		lines = append(lines, dimStyle.Render("No contacts"))
	}

	for i, c := range contacts {
		line := fmt.Sprintf("  %s: %s", c.Name, c.Number)
		if i == m.selected && m.mode != modeForm {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pdxmph/feedbook/internal/ids"
	"github.com/pdxmph/feedbook/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+c":    tea.KeyCtrlC,
}

func key(s string) tea.KeyMsg {
	if t, ok := namedKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (Model, *state.State) {
	t.Helper()
	st := state.New(ids.NewSequence("t-", 1))
	m := New(st)
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}), st
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func typeKeys(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, key(k))
	}
	return m
}

func TestLoadingBeforeWindowSize(t *testing.T) {
	m := New(state.New(ids.NewUUID()))
	assert.Equal(t, "Loading...", m.View())
}

func TestInitialView(t *testing.T) {
	m, st := newTestModel(t)

	assert.Equal(t, state.ViewFeedback, st.View())
	view := m.View()
	assert.Contains(t, view, "Please leave feedback")
	assert.Contains(t, view, "There is no feedback")
	assert.Contains(t, view, "[ Good ]")
	assert.NotContains(t, view, "Phonebook")
}

func TestSwitchViews(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "2")
	assert.Equal(t, state.ViewContacts, st.View())
	assert.Contains(t, m.View(), "Phonebook")
	assert.Contains(t, m.View(), "Rosie Simpson: 459-12-56")

	m = typeKeys(t, m, "2", "1")
	assert.Equal(t, state.ViewFeedback, st.View())
	assert.Contains(t, m.View(), "Statistics")
}

func TestLeaveFeedbackKeys(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "g", "g", "b")
	assert.Equal(t, state.Tally{Good: 2, Bad: 1}, st.Tally())

	view := m.View()
	assert.Contains(t, view, "Good: 2")
	assert.Contains(t, view, "Neutral: 0")
	assert.Contains(t, view, "Bad: 1")
	assert.Contains(t, view, "Total: 3")
	assert.Contains(t, view, "Positive feedback: 67%")
	assert.NotContains(t, view, "There is no feedback")
}

func TestFeedbackButtons(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "right", "enter")
	assert.Equal(t, state.Tally{Neutral: 1}, st.Tally())

	m = typeKeys(t, m, "right", "right", "enter")
	assert.Equal(t, state.Tally{Neutral: 1, Bad: 1}, st.Tally())

	m = typeKeys(t, m, "left", "left", "left", "enter")
	assert.Equal(t, state.Tally{Good: 1, Neutral: 1, Bad: 1}, st.Tally())
	assert.Equal(t, 0, m.button)
}

func TestFeedbackKeysIgnoredOnContacts(t *testing.T) {
	m, st := newTestModel(t)

	typeKeys(t, m, "2", "g", "b")
	assert.Equal(t, 0, st.Total())
}

func TestAddContact(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "2", "a", "Jacob Mercer", "tab", "555-01-01", "enter")

	contacts := st.Contacts()
	require.Len(t, contacts, 5)
	assert.Equal(t, state.Contact{ID: "t-1", Name: "Jacob Mercer", Number: "555-01-01"}, contacts[4])
	assert.Equal(t, modeNormal, m.mode)
	assert.Contains(t, m.View(), "Jacob Mercer: 555-01-01")
	assert.Equal(t, "", m.form[FormFieldName].Value())
}

func TestAddContactFormKeysAreText(t *testing.T) {
	m, st := newTestModel(t)

	// q, d and 1 are commands in normal mode but plain text in the form.
	m = typeKeys(t, m, "2", "a", "q", "d", "1", "tab", "1", "enter")

	require.Len(t, st.Contacts(), 5)
	assert.Equal(t, "qd1", st.Contacts()[4].Name)
	assert.Equal(t, state.ViewContacts, st.View())
}

func TestAddDuplicateShowsAlert(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "2", "a", "Rosie Simpson", "tab", "000-00-00", "enter")

	assert.Len(t, st.Contacts(), 4)
	assert.Equal(t, "Rosie Simpson is already in contacts.", m.alert)
	assert.Contains(t, m.View(), "Rosie Simpson is already in contacts.")
	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, "Rosie Simpson", m.form[FormFieldName].Value())

	// The alert goes away on the next key press.
	m = typeKeys(t, m, "esc")
	assert.Equal(t, "", m.alert)
	assert.Equal(t, modeNormal, m.mode)
}

func TestAddContactRequiresFields(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "2", "a", "enter")
	assert.Equal(t, "Name is required.", m.alert)

	m = typeKeys(t, m, "Jacob Mercer", "enter")
	assert.Equal(t, "Number is required.", m.alert)
	assert.Equal(t, FormFieldNumber, m.formField)
	assert.Len(t, st.Contacts(), 4)
}

func TestFilterContacts(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "2", "/", "r", "o", "s", "i")
	assert.Equal(t, "rosi", st.Filter())
	assert.Equal(t, []state.Contact{state.SeedContacts()[0]}, st.VisibleContacts())

	m = typeKeys(t, m, "enter")
	assert.Equal(t, modeNormal, m.mode)
	view := m.View()
	assert.Contains(t, view, "Rosie Simpson: 459-12-56")
	assert.NotContains(t, view, "Hermione Kline")
	assert.Contains(t, view, "Contacts (1)")

	m = typeKeys(t, m, "esc")
	assert.Equal(t, "", st.Filter())
	assert.Contains(t, m.View(), "Hermione Kline")
}

func TestFilterEscClears(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "2", "/", "KLINE", "esc")
	assert.Equal(t, "", st.Filter())
	assert.Equal(t, modeNormal, m.mode)
	assert.Len(t, st.VisibleContacts(), 4)
}

func TestDeleteSelectedContact(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "2", "j", "d")
	assert.Equal(t, []string{"Rosie Simpson", "Eden Clements", "Annie Copeland"}, contactNames(st.Contacts()))

	// Deleting the last entry keeps the selection in range.
	m = typeKeys(t, m, "j", "j", "j", "d")
	assert.Equal(t, []string{"Rosie Simpson", "Eden Clements"}, contactNames(st.Contacts()))
	assert.Equal(t, 1, m.selected)
}

func TestDeleteFromFilteredList(t *testing.T) {
	m, st := newTestModel(t)

	m = typeKeys(t, m, "2", "/", "eden", "enter", "d")
	assert.Equal(t, []string{"Rosie Simpson", "Hermione Kline", "Annie Copeland"}, contactNames(st.Contacts()))
	assert.Empty(t, st.VisibleContacts())
	assert.Contains(t, m.View(), "No contacts")

	// Nothing visible, nothing to delete.
	typeKeys(t, m, "d")
	assert.Len(t, st.Contacts(), 3)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m = typeKeys(t, m, "2", "a")
	_, cmd = m.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpPerMode(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.renderHelp(), "g/n/b")

	m = typeKeys(t, m, "2")
	assert.Contains(t, m.renderHelp(), "a: add")

	m = typeKeys(t, m, "a")
	assert.Contains(t, m.renderHelp(), "Enter: add contact")

	m = typeKeys(t, m, "esc", "/")
	assert.Contains(t, m.renderHelp(), "Type to filter")
}

func contactNames(contacts []state.Contact) []string {
	out := make([]string, len(contacts))
	for i, c := range contacts {
		out[i] = c.Name
	}
	return out
}

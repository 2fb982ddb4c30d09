package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pdxmph/feedbook/internal/state"
)

type mode int

const (
	modeNormal mode = iota
	modeForm
	modeFilter
)

// Form field indices
const (
	FormFieldName = iota
	FormFieldNumber
	FormFieldCount // Total number of fields
)

// Model is the bubbletea model rendering a *state.State
type Model struct {
	state  *state.State
	width  int
	height int
	mode   mode
	err    error

	// alert is shown until the next key press
	alert string

	// Feedback panel
	button int

	// Contacts panel
	selected  int
	form      [FormFieldCount]textinput.Model
	formField int
	filter    textinput.Model
}

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	activeNavStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	navStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// New creates a model over st
func New(st *state.State) Model {
	ti := textinput.New()
	ti.Placeholder = "Find contacts by name"
	ti.Width = 30
	ti.CharLimit = 50
	ti.Prompt = "> "
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	ti.SetValue(st.Filter())

	m := Model{
		state:  st,
		filter: ti,
	}

	for i := range m.form {
		m.form[i] = textinput.New()
		m.form[i].Width = 30
		m.form[i].CharLimit = 100

		switch i {
		case FormFieldName:
			m.form[i].Placeholder = "Name"
		case FormFieldNumber:
			m.form[i].Placeholder = "Number"
		}
	}

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			m.filter.Width = m.width - 10
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		m.alert = ""

		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeFilter:
			return m.updateFilter(msg)
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "1":
			return m.switchView(state.ViewFeedback), nil
		case "2":
			return m.switchView(state.ViewContacts), nil
		}

		if m.state.View() == state.ViewFeedback {
			return m.updateFeedback(msg)
		}
		return m.updateContacts(msg)
	}

	return m, nil
}

func (m Model) switchView(v state.View) Model {
	if err := m.state.SwitchView(v); err != nil {
		m.err = err
		return m
	}
	slog.Debug("switched view", "view", v)
	return m
}

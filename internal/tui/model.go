// Package tui is the terminal presentation layer. It forwards keystrokes,
// clicks and focus changes to the controller and renders the states it
// publishes.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/i474232898/weather-orbit/internal/controller"
)

// Session is the controller surface the UI drives.
type Session interface {
	State() controller.State
	OnInputChange(text string)
	OnKeyDown(key controller.Key)
	OnSelect(index int)
	OnFocus()
	OnBlur()
	OnReset()
	OnClick()
	ClearHistory()
	Refresh()
}

// stateMsg delivers a published controller state.
type stateMsg controller.State

// Screen rows used for mouse hit testing.
const (
	inputRow = 2
	listTop  = 4
)

type model struct {
	session Session
	state   controller.State

	input   textinput.Model
	spinner spinner.Model
	focused bool

	// echoes are texts sent to the controller and not yet seen in a state;
	// acked is the last one seen. A state whose query matches neither was
	// changed by the controller and overwrites the input.
	echoes []string
	acked  string

	width  int
	height int
}

func newModel(session Session) model {
	ti := textinput.New()
	ti.Placeholder = controller.DefaultPlaceholder
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "› "
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	return model{
		session: session,
		state:   session.State(),
		input:   ti,
		spinner: s,
		focused: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateMsg:
		m.apply(controller.State(msg))
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "up":
		m.session.OnKeyDown(controller.KeyUp)
	case "down":
		m.session.OnKeyDown(controller.KeyDown)
	case "enter":
		m.session.OnKeyDown(controller.KeyEnter)
	case "esc":
		m.session.OnKeyDown(controller.KeyEscape)
	case "ctrl+u":
		m.echoes = nil
		m.input.SetValue("")
		m.session.OnReset()
	case "ctrl+l":
		m.session.ClearHistory()
	case "ctrl+r":
		m.session.Refresh()
	case "tab":
		m.toggleFocus()
	case "backspace":
		if m.input.Value() == "" {
			m.session.OnKeyDown(controller.KeyBackspace)
			break
		}
		return m.edit(msg)
	default:
		if !m.focused {
			m.toggleFocus()
		}
		return m.edit(msg)
	}
	m.apply(m.session.State())
	return m, nil
}

// edit lets the text input consume msg and forwards the resulting text.
func (m model) edit(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.echoes = append(m.echoes, after)
		m.session.OnInputChange(after)
	}
	m.apply(m.session.State())
	return m, cmd
}

func (m *model) toggleFocus() {
	m.focused = !m.focused
	if m.focused {
		m.input.Focus()
		m.session.OnFocus()
		return
	}
	m.input.Blur()
	m.session.OnBlur()
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.MouseLeft {
		return m, nil
	}
	switch {
	case msg.Y == inputRow:
		if !m.focused {
			m.toggleFocus()
		}
		m.session.OnClick()
	case m.state.ListVisible && msg.Y >= listTop && msg.Y < listTop+len(m.state.Items()):
		m.session.OnSelect(msg.Y - listTop)
	default:
		return m, nil
	}
	m.apply(m.session.State())
	return m, nil
}

// apply adopts s unless an equal or newer state was already applied.
func (m *model) apply(s controller.State) {
	if s.Version < m.state.Version {
		return
	}
	m.state = s
	m.input.Placeholder = s.Placeholder

	for i, text := range m.echoes {
		if text == s.Query {
			m.acked = text
			m.echoes = m.echoes[i+1:]
			return
		}
	}
	if s.Query == m.acked || s.Query == m.input.Value() {
		return
	}
	m.echoes = nil
	m.acked = s.Query
	m.input.SetValue(s.Query)
	m.input.CursorEnd()
}

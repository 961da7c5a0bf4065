// Package valueinput provides a popup to type a slider value.
package valueinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/popup"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func errorStyle() lipgloss.Style {
	return styles.T().S().Error
}

// Model is a value editing popup.
type Model struct {
	ui.Base
	title   string
	input   textinput.Model
	isRange bool
	err     string
	context any // passed through to Result action
}

// New creates a new value input model.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 64
	return Model{input: ti}
}

// Start initializes the input with a title and the current value text.
func (m *Model) Start(title, initialText string, isRange bool, context any, width, height int) {
	m.title = title
	m.isRange = isRange
	m.context = context
	m.err = ""
	m.input.Placeholder = "42"
	if isRange {
		m.input.Placeholder = "10, 90"
	}
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Focus()
	m.SetSize(width, height)
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 1)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true, Context: ctx})
			}

		case "enter":
			values, err := Parse(m.input.Value(), m.isRange)
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Values: values, Context: ctx})
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Text returns the current input text.
func (m *Model) Text() string {
	return m.input.Value()
}

// Err returns the last parse error shown to the user.
func (m *Model) Err() string {
	return m.err
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	content := titleStyle().Render(m.title) + "\n\n" + m.input.View()
	if m.err != "" {
		content += "\n" + errorStyle().Render(m.err)
	}
	hint := "Enter: confirm, Esc: cancel"
	if m.isRange {
		hint = "Two values, e.g. 10, 90 · " + hint
	}
	return content + "\n\n" + hintStyle().Render(hint)
}

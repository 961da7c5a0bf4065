// Package confirm provides a confirmation popup: yes/no, or a choice among
// options whose last entry cancels.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/popup"
	"github.com/llehouerou/rangeslider/internal/ui/render"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a confirmation popup.
type Model struct {
	ui.Base
	title    string
	message  string
	context  any
	active   bool
	options  []string // nil in yes/no mode
	selected int
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays a yes/no question.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.ShowWithOptions(title, message, nil, context, width, height)
}

// ShowWithOptions displays a choice. The last option is the cancel choice.
func (m *Model) ShowWithOptions(title, message string, options []string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.options = options
	m.selected = 0
	m.active = true
	m.SetSize(width, height)
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}
	if len(m.options) > 0 {
		return m, m.handleOptionKey(keyMsg.String())
	}
	return m, m.handleYesNoKey(keyMsg.String())
}

func (m *Model) handleOptionKey(key string) tea.Cmd {
	last := len(m.options) - 1
	switch key {
	case "up", "k":
		m.selected = max(m.selected-1, 0)
	case "down", "j":
		m.selected = min(m.selected+1, last)
	case "enter":
		return m.finish(m.selected < last, m.selected)
	case "esc":
		return m.finish(false, last)
	}
	return nil
}

func (m *Model) handleYesNoKey(key string) tea.Cmd {
	switch key {
	case "enter", "y", "Y":
		return m.finish(true, 0)
	case "esc", "n", "N":
		return m.finish(false, 0)
	}
	return nil
}

func (m *Model) finish(confirmed bool, option int) tea.Cmd {
	m.active = false
	r := Result{Confirmed: confirmed, Context: m.context, SelectedOption: option}
	return func() tea.Msg {
		return ActionMsg(r)
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	lines := []string{
		s.Title.Render(render.Sanitize(m.title)),
		"",
		s.Base.Render(render.Sanitize(m.message)),
		"",
	}

	if len(m.options) == 0 {
		lines = append(lines, s.Muted.Render("Enter/Y: confirm, Esc/N: cancel"))
		return strings.Join(lines, "\n")
	}

	for i, opt := range m.options {
		if i == m.selected {
			lines = append(lines, s.Title.Render("> "+opt))
		} else {
			lines = append(lines, s.Base.Render("  "+opt))
		}
	}
	lines = append(lines, "", s.Muted.Render("↑↓/jk navigate · enter select"))
	return strings.Join(lines, "\n")
}

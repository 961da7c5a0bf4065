// Package helpbindings provides a scrollable popup listing key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/popup"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global": "Global",
	"slider": "Focused slider",
	"demo":   "Demo",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	keys         *keymap.Resolver
	lines        []string
	scrollOffset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{keys: keymap.Default()}
}

// SetContexts sets which binding contexts to display. Contexts are always
// shown in keymap.Contexts order.
func (m *Model) SetContexts(contexts []string) {
	var shown []string
	for _, ctx := range keymap.Contexts() {
		if slices.Contains(contexts, ctx) {
			shown = append(shown, ctx)
		}
	}
	m.lines = m.buildLines(shown)
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// ScrollOffset returns the index of the first visible line.
func (m *Model) ScrollOffset() int {
	return m.scrollOffset
}

// View implements popup.Popup. The border is added by the caller.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	// Width comes from all lines, not just the visible ones, so the popup
	// does not change size while scrolling.
	maxWidth := 0
	for _, line := range m.lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	visible := make([]string, 0, end-m.scrollOffset)
	for _, line := range m.lines[m.scrollOffset:end] {
		visible = append(visible, line+strings.Repeat(" ", maxWidth-lipgloss.Width(line)))
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

func (m *Model) buildLines(contexts []string) []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.FgBase)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	separatorStyle := t.S().Subtle

	keyWidth := 0
	for _, ctx := range contexts {
		for _, b := range keymap.ByContext(ctx) {
			keyWidth = max(keyWidth, lipgloss.Width(m.keys.Describe(b.Action)))
		}
	}

	var lines []string
	for i, ctx := range contexts {
		if i > 0 {
			lines = append(lines, "")
		}
		label := categoryLabels[ctx]
		if label == "" {
			label = ctx
		}
		lines = append(lines,
			headerStyle.Render(label),
			separatorStyle.Render(strings.Repeat("─", keyWidth+15)),
		)
		for _, b := range keymap.ByContext(ctx) {
			keys := m.keys.Describe(b.Action)
			padded := keys + strings.Repeat(" ", keyWidth-lipgloss.Width(keys))
			lines = append(lines, keyStyle.Render(padded)+"  "+descStyle.Render(b.Description))
		}
	}
	return lines
}

func (m *Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m *Model) visibleHeight() int {
	// Leave room for popup chrome (title, footer, borders, margins)
	return max(m.Height()-10, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

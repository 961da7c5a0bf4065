// Package headerbar renders the one-line bar above the sliders.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/rangeslider/internal/ui/render"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const helpHint = "? help"

// Render returns the header: the application name, one tab per slider with
// the active one highlighted, and the help hint on the right.
func Render(name string, tabs []string, active, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	s := t.S()
	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	separator := s.Subtle.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		tab = render.Sanitize(tab)
		if i == active {
			parts = append(parts, activeStyle.Render(tab))
		} else {
			parts = append(parts, s.Muted.Render(tab))
		}
	}

	left := styles.ApplyGradient(name, t.Primary, t.Secondary)
	if len(parts) > 0 {
		left += "  " + strings.Join(parts, separator)
	}
	hint := s.Subtle.Render(helpHint)

	left = ansi.Truncate(left, max(width-lipgloss.Width(hint)-1, 0), "…")
	return render.Row(left, hint, width)
}

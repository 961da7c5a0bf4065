package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/headerbar"
	"github.com/llehouerou/rangeslider/internal/ui/layout"
	"github.com/llehouerou/rangeslider/internal/ui/render"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	narrow := layout.IsNarrowMode(m.width)
	content := layout.ContentHeight(m.height)

	sliders := m.renderSliders(layout.SlidersWidth(m.width, narrow), layout.SlidersHeight(content, narrow))
	events := m.log.Render(layout.LogWidth(m.width, narrow), layout.LogHeight(content, narrow))

	var body string
	if narrow {
		body = lipgloss.JoinVertical(lipgloss.Left, sliders, events)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sliders, events)
	}

	view := strings.Join([]string{
		headerbar.Render(appName, m.titles(), m.focus, m.width),
		body,
		m.renderStatus(),
	}, "\n")

	return m.popups.View(view)
}

func (m Model) titles() []string {
	titles := make([]string, len(m.sliders))
	for i := range m.sliders {
		titles[i] = m.sliders[i].Title()
	}
	return titles
}

// renderSliders stacks the visible slider panels and pads the column to
// height.
func (m Model) renderSliders(width, height int) string {
	panels := make([]string, 0, m.last-m.first)
	for i := m.first; i < m.last; i++ {
		panels = append(panels, styles.PanelStyle(i == m.focus).
			Width(width-2).
			Render(m.sliders[i].View()))
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(panels, "\n"))
}

// renderStatus shows the last status message on the left and what the
// focused handle reports to assistive technology on the right.
func (m Model) renderStatus() string {
	s := styles.T().S()

	left := s.Muted.Render(render.Sanitize(m.status))
	if m.statusErr {
		left = s.Error.Render(render.Sanitize(m.status))
	}

	v := m.Focused()
	attrs := v.Slider().Attributes(v.Focus())
	right := attrs[slider.AttrRole] + " " + attrs[slider.AttrValueNow]
	if label := attrs[slider.AttrLabel]; label != "" {
		right = label + ": " + right
	}
	if text := attrs[slider.AttrValueText]; text != "" && text != attrs[slider.AttrValueNow] {
		right += " (" + text + ")"
	}

	return render.Row(left, s.Muted.Render(render.Sanitize(right)), m.width)
}

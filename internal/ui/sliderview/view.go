package sliderview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/render"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

const (
	glyphHandle         = "●"
	glyphHandleDisabled = "○"
	glyphFill           = "━"
	glyphTrack          = "─"
	glyphTick           = "╵"
	glyphTickMajor      = "┃"
)

// View renders the header, the track, and the tick rows when ticks are on.
func (m Model) View() string {
	if m.Width() == 0 {
		return ""
	}

	lines := []string{m.renderHeader(), m.renderTrack()}
	if len(m.surface.ticks) > 0 {
		lines = append(lines, m.renderTicks())
		if labels := m.renderTickLabels(); labels != "" {
			lines = append(lines, labels)
		}
	}
	return strings.Join(lines, "\n")
}

// LineCount returns the number of lines View produces.
func (m Model) LineCount() int {
	n := 2
	if len(m.surface.ticks) > 0 {
		n++
		if m.hasTickLabels() {
			n++
		}
	}
	return n
}

func (m Model) renderHeader() string {
	s := styles.T().S()

	value := m.ValueText()
	titleStyle := s.Title
	switch {
	case m.slider.Disabled():
		titleStyle = s.Disabled
		value += " (disabled)"
	case m.IsFocused():
		titleStyle = s.HandleFocus
	}

	title := render.Truncate(m.title, max(m.Width()-lipgloss.Width(value)-1, 0))
	return render.Row(titleStyle.Render(title), s.Muted.Render(value), m.Width())
}

func (m Model) renderTrack() string {
	t := styles.T()
	s := t.S()

	cells := m.surface.Cells()
	lo := m.surface.HandleColumn(slider.HandleMin)
	hi := m.surface.HandleColumn(slider.HandleMax)
	isRange := m.slider.IsRange()
	disabled := m.slider.Disabled()

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", ui.TrackPadding))
	for c := range cells {
		switch {
		case c == hi:
			b.WriteString(m.renderHandle(slider.HandleMax))
		case isRange && c == lo:
			b.WriteString(m.renderHandle(slider.HandleMin))
		case c >= lo && c < hi:
			if disabled {
				b.WriteString(s.Disabled.Render(glyphFill))
				continue
			}
			color := styles.GradientAt(float64(c)/float64(max(cells-1, 1)), t.Primary, t.Secondary)
			b.WriteString(lipgloss.NewStyle().Foreground(color).Render(glyphFill))
		default:
			if disabled {
				b.WriteString(s.Disabled.Render(glyphTrack))
				continue
			}
			b.WriteString(s.Track.Render(glyphTrack))
		}
	}
	return b.String()
}

func (m Model) renderHandle(h slider.Handle) string {
	s := styles.T().S()
	switch {
	case m.slider.Disabled():
		return s.Disabled.Render(glyphHandleDisabled)
	case m.slider.Dragging() && m.focus == h:
		return s.HandleDrag.Render(glyphHandle)
	case m.IsFocused() && m.focus == h:
		return s.HandleFocus.Render(glyphHandle)
	}
	return s.Handle.Render(glyphHandle)
}

func (m Model) renderTicks() string {
	s := styles.T().S()

	row := make([]string, m.surface.Cells())
	for i := range row {
		row[i] = " "
	}
	for _, tick := range m.surface.ticks {
		col := m.surface.Column(tick.Offset)
		if tick.Major {
			row[col] = s.TickMajor.Render(glyphTickMajor)
		} else {
			row[col] = s.Tick.Render(glyphTick)
		}
	}
	return strings.Repeat(" ", ui.TrackPadding) + strings.Join(row, "")
}

func (m Model) hasTickLabels() bool {
	for _, tick := range m.surface.ticks {
		if tick.Label != "" {
			return true
		}
	}
	return false
}

func (m Model) renderTickLabels() string {
	var labels []render.Label
	for _, tick := range m.surface.ticks {
		if tick.Label != "" {
			labels = append(labels, render.Label{Col: m.surface.Column(tick.Offset), Text: tick.Label})
		}
	}
	if len(labels) == 0 {
		return ""
	}
	line := render.PlaceLabels(labels, m.surface.Cells())
	return strings.Repeat(" ", ui.TrackPadding) + styles.T().S().Muted.Render(line)
}

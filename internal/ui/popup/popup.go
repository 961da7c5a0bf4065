package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

// Render wraps content in a rounded border with an optional title and footer.
// The box is at most maxWidth columns wide; longer lines are truncated.
func Render(title, content, footer string, maxWidth int) string {
	t := styles.T()

	// border and padding take two columns on each side
	inner := max(maxLineWidth(content), lipgloss.Width(title), lipgloss.Width(footer))
	inner = min(inner, max(maxWidth-4, 1))

	lines := make([]string, 0, strings.Count(content, "\n")+5)
	if title != "" {
		lines = append(lines, t.S().Title.Render(ansi.Truncate(title, inner, "…")), "")
	}
	for line := range strings.SplitSeq(content, "\n") {
		lines = append(lines, ansi.Truncate(line, inner, "…"))
	}
	if footer != "" {
		lines = append(lines, "", t.S().Subtle.Render(ansi.Truncate(footer, inner, "…")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Width(inner+2).
		Render(strings.Join(lines, "\n"))
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

// Center pads pre-rendered content so that it sits in the middle of a
// termWidth x termHeight screen.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, ansi.StringWidth(line))
	}

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	for i, line := range lines {
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Compose overlays a centred popup on top of a base view. Blank overlay
// lines leave the base visible; other lines replace the base between the
// overlay's first and last visible column. ANSI styling on both sides is
// preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, overlayLine := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(baseLine, 0, startCol)
		if pw := ansi.StringWidth(prefix); pw < startCol {
			// a wide rune straddled the cut
			prefix += strings.Repeat(" ", startCol-pw)
		}
		line := prefix + content
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			if sw := ansi.StringWidth(suffix); sw < width-endCol {
				suffix += strings.Repeat(" ", width-endCol-sw)
			}
			line += suffix
		}
		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}

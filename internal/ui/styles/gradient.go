package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient, one color per
// grapheme cluster.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, cluster := range clusters {
		c := GradientAt(float64(i)/float64(len(clusters)-1), from, to)
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(cluster))
	}
	return b.String()
}

// GradientAt returns the color at position t (0..1) between from and to.
// Blending is done in HCL space for perceptually uniform transitions.
func GradientAt(t float64, from, to lipgloss.Color) lipgloss.Color {
	t = max(0, min(1, t))
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// lipglossToColor converts a hex lipgloss.Color to a color.Color. ANSI
// palette colors fall back to a neutral gray.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes,
// and turns non-breaking spaces into plain spaces. Labels come from user
// configuration and must not break the terminal.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 0x20 && c != '\t' {
			return true
		}
		if c >= 0x80 && c <= 0x9f {
			return true
		}
		if c == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens a string to fit within maxWidth, adding "..." if truncated.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row joins left and right aligned content into a line of the given width.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Label is a piece of text anchored at a column.
type Label struct {
	Col  int
	Text string
}

// PlaceLabels lays labels out on a single line of the given width, each
// centred on its column. A label that would overlap the previous one or run
// off the line is dropped; labels must be sorted by column.
func PlaceLabels(labels []Label, width int) string {
	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}

	next := 0 // first free column
	for _, l := range labels {
		text := Sanitize(l.Text)
		w := runewidth.StringWidth(text)
		if w == 0 || w > width {
			continue
		}
		start := max(0, min(l.Col-w/2, width-w))
		if start < next {
			continue
		}
		col := start
		for _, r := range text {
			line[col] = r
			// Wide runes take two cells; blank the second one.
			if rw := runewidth.RuneWidth(r); rw == 2 && col+1 < width {
				line[col+1] = 0
			}
			col += runewidth.RuneWidth(r)
		}
		next = start + w + 1
	}

	var b strings.Builder
	for _, r := range line {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

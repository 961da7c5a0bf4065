package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused handle, titles
	Secondary lipgloss.Color // Gold - gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Slider parts
	Track    lipgloss.Color // unselected part of the track
	Handle   lipgloss.Color // unfocused handle
	Disabled lipgloss.Color // everything on a disabled slider

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base        lipgloss.Style
	Muted       lipgloss.Style
	Subtle      lipgloss.Style
	Title       lipgloss.Style
	Track       lipgloss.Style
	Handle      lipgloss.Style
	HandleFocus lipgloss.Style
	HandleDrag  lipgloss.Style
	Tick        lipgloss.Style
	TickMajor   lipgloss.Style
	Disabled    lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Track:    lipgloss.Color("#3a3a3a"),
	Handle:   lipgloss.Color("#e0e0e0"),
	Disabled: lipgloss.Color("#4a4a4a"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Track:  lipgloss.NewStyle().Foreground(t.Track),
		Handle: lipgloss.NewStyle().Foreground(t.Handle).Bold(true),
		HandleFocus: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		HandleDrag: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true),
		Tick:      lipgloss.NewStyle().Foreground(t.FgSubtle),
		TickMajor: lipgloss.NewStyle().Foreground(t.FgMuted).Bold(true),
		Disabled:  lipgloss.NewStyle().Foreground(t.Disabled),
		Success:   lipgloss.NewStyle().Foreground(t.Success),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Warning:   lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Package sliderview hosts a slider.Slider in a Bubble Tea program: it draws
// the track, handles and ticks, and turns mouse and key messages into engine
// calls.
package sliderview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui"
)

// eventQueue collects engine events between two flushes. It is shared by
// pointer so copies of Model see the same queue.
type eventQueue struct {
	events []Event
}

// Model is one slider on screen.
type Model struct {
	ui.Base
	name    string
	title   string
	slider  *slider.Slider
	surface *Surface
	queue   *eventQueue
	keys    *keymap.Resolver
	focus   slider.Handle

	// Screen position of the top-left corner of the view.
	originX, originY int
}

// New creates a slider view. opts are passed to slider.New after the
// terminal surface.
func New(name, title string, cfg slider.Config, opts ...slider.Option) (Model, error) {
	surface := NewSurface(ui.MinTrackWidth)
	opts = append([]slider.Option{slider.WithSurface(surface)}, opts...)

	s, err := slider.New(cfg, opts...)
	if err != nil {
		return Model{}, fmt.Errorf("slider %q: %w", name, err)
	}

	q := &eventQueue{}
	for _, kind := range []slider.EventKind{slider.EventStartChange, slider.EventChange, slider.EventStopChange} {
		s.On(kind, func(v slider.Value) {
			q.events = append(q.events, Event{Kind: kind, Value: v})
		})
	}

	focus := slider.HandleMax
	if s.IsRange() {
		focus = slider.HandleMin
	}

	return Model{
		name:    name,
		title:   title,
		slider:  s,
		surface: surface,
		queue:   q,
		keys:    keymap.Default(),
		focus:   focus,
	}, nil
}

// Name returns the slider's identifier.
func (m Model) Name() string {
	return m.name
}

// Title returns the slider's display title.
func (m Model) Title() string {
	return m.title
}

// Slider returns the underlying engine.
func (m Model) Slider() *slider.Slider {
	return m.slider
}

// Focus returns the handle that receives key input.
func (m Model) Focus() slider.Handle {
	return m.focus
}

// SetSize sets the view dimensions and resizes the track to fit.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.surface.SetCells(max(ui.MinTrackWidth, width-2*ui.TrackPadding))
}

// SetOrigin tells the view where its top-left corner is on screen, so mouse
// coordinates can be mapped onto the track.
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// SetFocused focuses or blurs the view. Blurring ends any key interaction
// on the focused handle; call Flush afterwards to collect its events.
func (m *Model) SetFocused(focused bool) {
	if !focused && m.IsFocused() {
		m.slider.Blur(m.focus)
	}
	m.Base.SetFocused(focused)
}

// SetValue sets the slider value programmatically.
func (m Model) SetValue(v any) (tea.Cmd, error) {
	err := m.slider.SetValue(v)
	return m.Flush(), err
}

// Move shifts the slider value by a number of steps.
func (m Model) Move(steps any) (tea.Cmd, error) {
	err := m.slider.Move(steps)
	return m.Flush(), err
}

// SetDisabled enables or disables user interaction. Disabling ends a drag
// in progress; the returned command carries its events.
func (m Model) SetDisabled(disabled bool) tea.Cmd {
	m.slider.SetDisabled(disabled)
	return m.Flush()
}

// ValueText is the value as the slider describes it to assistive
// technology: the value text of the max handle, or of both handles in range
// mode.
func (m Model) ValueText() string {
	hi := m.surface.Attribute(slider.HandleMax, slider.AttrValueText)
	if !m.slider.IsRange() {
		return hi
	}
	return m.surface.Attribute(slider.HandleMin, slider.AttrValueText) + " - " + hi
}

// Flush returns a command delivering the events queued since the last
// flush, or nil when there are none.
func (m Model) Flush() tea.Cmd {
	if len(m.queue.events) == 0 {
		return nil
	}
	a := Changed{Slider: m.name, Events: m.queue.events}
	m.queue.events = nil
	return func() tea.Msg {
		return ActionMsg(a)
	}
}

// trackX and trackY are the screen coordinates of the first track cell.
func (m Model) trackX() int {
	return m.originX + ui.TrackPadding
}

func (m Model) trackY() int {
	return m.originY + 1
}

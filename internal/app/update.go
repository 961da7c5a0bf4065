package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/action"
	"github.com/llehouerou/rangeslider/internal/ui/confirm"
	"github.com/llehouerou/rangeslider/internal/ui/helpbindings"
	"github.com/llehouerou/rangeslider/internal/ui/layout"
	"github.com/llehouerou/rangeslider/internal/ui/sliderview"
	"github.com/llehouerou/rangeslider/internal/ui/valueinput"
)

// Demo step counts for the move buttons.
const (
	moveBackSteps    = -5
	moveForwardSteps = 10
)

// Reset choices offered for a persisted slider; the last one cancels.
const (
	resetAndForget = iota
	resetOnly
)

var resetOptions = []string{"Reset and forget saved value", "Reset", "Cancel"}

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.popups.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		return m.broadcast(msg)

	case action.Msg:
		return m.handleAction(msg)
	}

	// Cursor blink and other popup internals.
	return m, m.popups.Update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.popups.Active() != nil {
		return m, m.popups.Update(msg)
	}

	if m.sliders[m.focus].WantsKey(msg) {
		var cmd tea.Cmd
		m.sliders[m.focus], cmd = m.sliders[m.focus].Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) { //nolint:exhaustive // slider keys are handled above
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.popups.ShowHelp(keymap.Contexts())
	case keymap.ActionFocusNext:
		return m, m.setFocus((m.focus + 1) % len(m.sliders))
	case keymap.ActionFocusPrev:
		return m, m.setFocus((m.focus - 1 + len(m.sliders)) % len(m.sliders))
	case keymap.ActionClearLog:
		m.log.Clear()
	case keymap.ActionMoveBack:
		return m, m.move(moveBackSteps)
	case keymap.ActionMoveForward:
		return m, m.move(moveForwardSteps)
	case keymap.ActionToggleDisabled:
		m.toggleDisabled()
	case keymap.ActionEditValue:
		return m, m.editValue()
	case keymap.ActionReset:
		m.confirmReset()
	}
	return m, nil
}

// handleMouse gives every slider the event: a press is hit-tested by each
// one, motion and release only matter to the one dragging.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.popups.Active() != nil {
		return m, nil
	}

	cmds := make([]tea.Cmd, 0, len(m.sliders)+1)
	for i := range m.sliders {
		var cmd tea.Cmd
		m.sliders[i], cmd = m.sliders[i].Update(msg)
		cmds = append(cmds, cmd)

		if msg.Action == tea.MouseActionPress && m.sliders[i].Slider().Dragging() && i != m.focus {
			cmds = append(cmds, m.setFocus(i))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.sliders))
	for i := range m.sliders {
		var cmd tea.Cmd
		m.sliders[i], cmd = m.sliders[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case sliderview.Changed:
		m.recordChange(a)
	case helpbindings.Close:
		m.popups.HideHelp()
	case valueinput.Result:
		return m.handleValueInput(a)
	case confirm.Result:
		return m.handleReset(a)
	}
	return m, nil
}

func (m *Model) recordChange(a sliderview.Changed) {
	m.logEvents(a)
	if m.state != nil && m.persist[a.Slider] {
		m.state.SaveValue(a.Slider, a.Final().Pair)
	}
}

func (m *Model) logEvents(a sliderview.Changed) {
	for _, e := range a.Events {
		m.log.Add(Entry{Time: m.now(), Slider: a.Slider, Kind: string(e.Kind), Value: e.Value.String()})
	}
}

func (m Model) handleValueInput(r valueinput.Result) (tea.Model, tea.Cmd) {
	m.popups.HideValueInput()
	if r.Canceled {
		return m, nil
	}

	name, _ := r.Context.(string)
	i := m.indexOf(name)
	if i < 0 || len(r.Values) == 0 {
		return m, nil
	}

	var value any = r.Values[0]
	if len(r.Values) == 2 {
		value = slider.Pair{r.Values[0], r.Values[1]}
	}
	cmd, err := m.sliders[i].SetValue(value)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpSliderSet, name, err))
		return m, cmd
	}
	m.logger.WithField("slider", name).WithField("value", value).Debug("value typed")
	return m, cmd
}

func (m *Model) confirmReset() {
	v := m.sliders[m.focus]
	initial := slider.Value{Pair: m.initial[v.Name()], IsRange: v.Slider().IsRange()}
	title := "Reset " + v.Title() + "?"
	message := "Back to " + initial.String()

	if m.state != nil && m.persist[v.Name()] {
		m.popups.ShowConfirm(title, message, resetOptions, v.Name())
		return
	}
	m.popups.ShowConfirm(title, message, nil, v.Name())
}

func (m Model) handleReset(r confirm.Result) (tea.Model, tea.Cmd) {
	name, _ := r.Context.(string)
	i := m.indexOf(name)
	if !r.Confirmed || i < 0 {
		return m, nil
	}

	v := m.sliders[i]
	initial := m.initial[name]
	var value any = initial[slider.HandleMax]
	if v.Slider().IsRange() {
		value = initial
	}
	cmd, err := v.SetValue(value)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpSliderSet, name, err))
		return m, cmd
	}

	if m.state == nil || !m.persist[name] || r.SelectedOption != resetAndForget {
		return m, cmd
	}

	// Delivering the change would save it again: log it here instead.
	if c, ok := changedOf(cmd); ok {
		m.logEvents(c)
	}
	if err := m.state.DeleteValue(name); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpStateForget, name, err))
		return m, nil
	}
	m.setStatus("Forgot saved value of " + v.Title())
	return m, nil
}

// setFocus moves keyboard focus to slider i. The returned command carries
// the events of the key interaction the blur ended, if any.
func (m *Model) setFocus(i int) tea.Cmd {
	if i == m.focus {
		return nil
	}
	m.sliders[m.focus].SetFocused(false)
	cmd := m.sliders[m.focus].Flush()
	m.focus = i
	m.sliders[i].SetFocused(true)
	m.layout()
	return cmd
}

func (m *Model) move(steps int) tea.Cmd {
	v := m.sliders[m.focus]
	cmd, err := v.Move(steps)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpSliderMove, v.Name(), err))
	}
	return cmd
}

// toggleDisabled records the events of a drag that disabling ended before
// the disabled entry itself.
func (m *Model) toggleDisabled() {
	v := m.sliders[m.focus]
	disabled := !v.Slider().Disabled()
	if c, ok := changedOf(v.SetDisabled(disabled)); ok {
		m.recordChange(c)
	}

	kind := kindEnabled
	if disabled {
		kind = kindDisabled
	}
	m.log.Add(Entry{Time: m.now(), Slider: v.Name(), Kind: kind, Value: v.Slider().Value().String()})
}

// changedOf runs a command from a slider view and returns the change it
// carries, if any.
func changedOf(cmd tea.Cmd) (sliderview.Changed, bool) {
	if cmd == nil {
		return sliderview.Changed{}, false
	}
	msg, ok := cmd().(action.Msg)
	if !ok {
		return sliderview.Changed{}, false
	}
	c, ok := msg.Action.(sliderview.Changed)
	return c, ok
}

func (m *Model) editValue() tea.Cmd {
	v := m.sliders[m.focus]
	p := v.Slider().Pair()
	text := slider.FormatValue(p[slider.HandleMax])
	if v.Slider().IsRange() {
		text = slider.FormatValue(p[slider.HandleMin]) + ", " + text
	}
	return m.popups.ShowValueInput(v.Name(), v.Title(), text, v.Slider().IsRange())
}

// layout sizes the slider views and tells each one where it sits on screen.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	narrow := layout.IsNarrowMode(m.width)
	inner := max(layout.SlidersWidth(m.width, narrow)-layout.PanelChromeWidth, 0)
	available := layout.SlidersHeight(layout.ContentHeight(m.height), narrow)

	heights := make([]int, len(m.sliders))
	for i := range m.sliders {
		lines := m.sliders[i].LineCount()
		m.sliders[i].SetSize(inner, lines)
		heights[i] = layout.PanelHeight(lines)
	}
	m.first, m.last = layout.VisiblePanels(heights, available, m.focus)

	y := layout.HeaderHeight
	for i := range m.sliders {
		if i < m.first || i >= m.last {
			// Off screen: no press can reach it.
			m.sliders[i].SetOrigin(-m.width, -m.height)
			continue
		}
		// Content starts after the top border, and after the left border
		// and padding.
		m.sliders[i].SetOrigin(layout.PanelChromeWidth/2, y+1)
		y += heights[i]
	}
}

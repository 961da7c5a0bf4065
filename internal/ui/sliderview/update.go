package sliderview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui"
)

var sliderKeys = map[keymap.Action]slider.Key{
	keymap.ActionHome:         slider.KeyHome,
	keymap.ActionEnd:          slider.KeyEnd,
	keymap.ActionIncrease:     slider.KeyIncrease,
	keymap.ActionDecrease:     slider.KeyDecrease,
	keymap.ActionPageIncrease: slider.KeyPageIncrease,
	keymap.ActionPageDecrease: slider.KeyPageDecrease,
}

// Update handles mouse, key and terminal focus messages. Events emitted by
// the slider come back as a single Changed action.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.IsFocused() {
			m.handleKey(msg)
		}
	case tea.BlurMsg:
		// The release will never reach us.
		m.slider.EndInteraction()
	}
	return m, m.Flush()
}

// WantsKey reports whether the key is a slider key this view would handle.
func (m Model) WantsKey(msg tea.KeyMsg) bool {
	act := m.keys.Resolve(msg.String())
	_, ok := sliderKeys[act]
	return ok || act == keymap.ActionSwitchHandle
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	x := msg.X - m.trackX()

	switch msg.Action { //nolint:exhaustive // only press, motion and release matter
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.slider.Dragging() {
			// A new press means the previous release was lost.
			m.slider.EndInteraction()
		}
		if msg.Y != m.trackY() {
			return
		}
		h, ok := m.hitHandle(x)
		if !ok {
			return
		}
		if m.slider.PointerDown(h, float64(x)) {
			m.focus = h
		}

	case tea.MouseActionMotion:
		// Motion anywhere on screen keeps dragging.
		m.slider.PointerMove(float64(x))

	case tea.MouseActionRelease:
		m.slider.PointerUp()
	}
}

// hitHandle returns the handle a press at track column x grabs: the nearest
// one within ui.HandleHitRadius.
func (m Model) hitHandle(x int) (slider.Handle, bool) {
	hi := m.surface.HandleColumn(slider.HandleMax)
	if !m.slider.IsRange() {
		return slider.HandleMax, abs(x-hi) <= ui.HandleHitRadius
	}

	lo := m.surface.HandleColumn(slider.HandleMin)
	dLo, dHi := abs(x-lo), abs(x-hi)
	if min(dLo, dHi) > ui.HandleHitRadius {
		return 0, false
	}
	switch {
	case dLo < dHi:
		return slider.HandleMin, true
	case dHi < dLo:
		return slider.HandleMax, true
	case x < hi:
		return slider.HandleMin, true
	case x > lo:
		return slider.HandleMax, true
	case hi == m.surface.Cells()-1:
		// Both handles on the last cell: only the min handle can move.
		return slider.HandleMin, true
	}
	return slider.HandleMax, true
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	act := m.keys.Resolve(msg.String())
	if act == keymap.ActionSwitchHandle {
		m.switchHandle()
		return
	}

	k, ok := sliderKeys[act]
	if !ok {
		return
	}
	// Terminals report no key release, so every press is a full
	// down/up pair.
	if m.slider.KeyDown(m.focus, k) {
		m.slider.KeyUp(m.focus)
	}
}

func (m *Model) switchHandle() {
	if !m.slider.IsRange() {
		return
	}
	m.slider.Blur(m.focus)
	if m.focus == slider.HandleMin {
		m.focus = slider.HandleMax
	} else {
		m.focus = slider.HandleMin
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

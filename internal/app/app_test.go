package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/state"
	"github.com/llehouerou/rangeslider/internal/ui/action"
	"github.com/llehouerou/rangeslider/internal/ui/testutil"
	"github.com/llehouerou/rangeslider/internal/ui/valueinput"
)

var testTime = time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{Sliders: []config.SliderConfig{
		{Name: "a", Title: "Alpha", Value: int64(50), Persist: true},
		{Name: "b", Title: "Bravo", Range: true, Value: []any{int64(20), int64(60)}},
	}}
}

// newTestModel builds a demo whose slider tracks have 101 cells starting
// at screen column 3. Slider a's track is on row 3, slider b's on row 7.
func newTestModel(t *testing.T, st state.Interface) Model {
	t.Helper()
	m, err := New(testConfig(), st, Options{Now: func() time.Time { return testTime }})
	require.NoError(t, err)
	return send(t, m, tea.WindowSizeMsg{Width: 161, Height: 40})
}

// send delivers msg and then every action the resulting commands produce,
// as the Bubble Tea runtime would.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m, ok := next.(Model)
	require.True(t, ok)
	return drain(t, m, cmd)
}

func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
	case action.Msg:
		m = send(t, m, msg)
	}
	return m
}

func logKinds(m Model) []string {
	var out []string
	for _, e := range m.Log().Entries() {
		out = append(out, e.Slider+":"+e.Kind)
	}
	return out
}

func TestNew_NoSliders(t *testing.T) {
	_, err := New(&config.Config{}, nil, Options{})
	assert.Error(t, err)
}

func TestNew_InvalidSlider(t *testing.T) {
	cfg := &config.Config{Sliders: []config.SliderConfig{{Name: "bad", Min: int64(10), Max: int64(5)}}}
	_, err := New(cfg, nil, Options{})
	assert.ErrorIs(t, err, slider.ErrConfiguration)
}

func TestNew_RestoresPersistedValues(t *testing.T) {
	st := state.NewMock()
	st.SetValue("a", slider.Pair{0, 75})
	st.SetValue("b", slider.Pair{10, 90}) // b is not persisted

	m := newTestModel(t, st)

	assert.Equal(t, slider.Pair{0, 75}, m.Focused().Slider().Pair())
	assert.Equal(t, slider.Pair{20, 60}, m.sliders[1].Slider().Pair())
	status, isErr := m.Status()
	assert.Equal(t, "Restored 1 saved value(s)", status)
	assert.False(t, isErr)
	assert.Zero(t, m.Log().Len(), "restoring is not an interaction")
}

func TestKey_SliderKeysReachFocusedSlider(t *testing.T) {
	st := state.NewMock()
	m := newTestModel(t, st)

	m = send(t, m, testutil.Key("right"))

	assert.Equal(t, 51.0, m.Focused().Slider().Value().Float())
	assert.Equal(t, []string{"a:start_change", "a:change", "a:stop_change"}, logKinds(m))
	assert.Equal(t, 1, st.Saves())
	saved, err := st.GetValue("a")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 51.0, saved.Hi)
}

func TestKey_UnpersistedSliderIsNotSaved(t *testing.T) {
	st := state.NewMock()
	m := newTestModel(t, st)

	m = send(t, m, testutil.Key("j"))
	m = send(t, m, testutil.Key("left"))

	assert.Equal(t, slider.Pair{19, 60}, m.sliders[1].Slider().Pair())
	assert.Zero(t, st.Saves())
}

func TestKey_FocusCycles(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Key("j"))
	assert.Equal(t, "b", m.Focused().Name())

	m = send(t, m, testutil.Key("j"))
	assert.Equal(t, "a", m.Focused().Name())

	m = send(t, m, testutil.Key("k"))
	assert.Equal(t, "b", m.Focused().Name())
	assert.False(t, m.sliders[0].IsFocused())
}

func TestKey_Quit(t *testing.T) {
	m := newTestModel(t, nil)

	_, cmd := m.Update(testutil.Key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestKey_MoveButtons(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Key("]"))
	assert.Equal(t, 60.0, m.Focused().Slider().Value().Float())

	m = send(t, m, testutil.Key("["))
	assert.Equal(t, 55.0, m.Focused().Slider().Value().Float())
	assert.Equal(t, []string{"a:change", "a:change"}, logKinds(m))
}

func TestKey_ToggleDisabled(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Key("d"))
	assert.True(t, m.Focused().Slider().Disabled())

	// Keys no longer move a disabled slider.
	m = send(t, m, testutil.Key("right"))
	assert.Equal(t, 50.0, m.Focused().Slider().Value().Float())

	m = send(t, m, testutil.Key("d"))
	assert.False(t, m.Focused().Slider().Disabled())
	assert.Equal(t, []string{"a:" + kindDisabled, "a:" + kindEnabled}, logKinds(m))
}

func TestKey_ClearLog(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Key("right"))
	require.NotZero(t, m.Log().Len())

	m = send(t, m, testutil.Key("c"))
	assert.Zero(t, m.Log().Len())
}

func TestHelp_CapturesKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Key("?"))
	require.NotNil(t, m.popups.Active())
	assert.Contains(t, testutil.StripANSI(m.View()), "Focused slider")

	// q closes the popup instead of quitting.
	m = send(t, m, testutil.Key("q"))
	assert.Nil(t, m.popups.Active())
}

func TestEditValue_AppliesResult(t *testing.T) {
	st := state.NewMock()
	m := newTestModel(t, st)

	m = send(t, m, testutil.Key("enter"))
	require.Equal(t, "a", m.popups.Editing())

	m = send(t, m, valueinput.ActionMsg(valueinput.Result{Values: []float64{42}, Context: "a"}))

	assert.Empty(t, m.popups.Editing())
	assert.Equal(t, 42.0, m.Focused().Slider().Value().Float())
	assert.Equal(t, []string{"a:change"}, logKinds(m))
	assert.Equal(t, 1, st.Saves())
}

func TestEditValue_RangeText(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Key("j"))
	m = send(t, m, testutil.Key("enter"))

	require.Equal(t, "b", m.popups.Editing())
	assert.Equal(t, "20, 60", m.popups.input.Text())
}

func TestEditValue_Cancel(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Key("enter"))
	m = send(t, m, testutil.Key("esc"))

	assert.Empty(t, m.popups.Editing())
	assert.Equal(t, 50.0, m.Focused().Slider().Value().Float())
	assert.Zero(t, m.Log().Len())
}

func TestEditValue_UnknownSliderIgnored(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, valueinput.ActionMsg(valueinput.Result{Values: []float64{1}, Context: "zzz"}))
	assert.Zero(t, m.Log().Len())
}

func TestMouse_DragMovesFocus(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Press(23, 7)) // b's min handle
	assert.Equal(t, "b", m.Focused().Name())

	m = send(t, m, testutil.Motion(33, 12))
	m = send(t, m, testutil.Release(33, 12))

	assert.Equal(t, slider.Pair{30, 60}, m.sliders[1].Slider().Pair())
	assert.Equal(t, []string{"b:start_change", "b:change", "b:stop_change"}, logKinds(m))
	assert.Equal(t, 50.0, m.sliders[0].Slider().Value().Float())
}

func TestMouse_IgnoredUnderPopup(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Key("?"))
	m = send(t, m, testutil.Press(53, 3))
	m = send(t, m, testutil.Motion(63, 3))

	assert.Equal(t, 50.0, m.Focused().Slider().Value().Float())
	assert.False(t, m.Focused().Slider().Dragging())
}

func TestBlur_EndsDrag(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, testutil.Press(53, 3))
	m = send(t, m, testutil.Motion(63, 3))
	m = send(t, m, tea.BlurMsg{})

	assert.False(t, m.Focused().Slider().Dragging())
	assert.Equal(t, []string{"a:start_change", "a:change", "a:stop_change"}, logKinds(m))
}

func TestKey_DisableEndsDrag(t *testing.T) {
	st := state.NewMock()
	m := newTestModel(t, st)

	m = send(t, m, testutil.Press(53, 3))
	m = send(t, m, testutil.Motion(63, 3))
	m = send(t, m, testutil.Key("d"))

	assert.False(t, m.Focused().Slider().Dragging())
	m = send(t, m, testutil.Motion(80, 3))
	m = send(t, m, testutil.Release(80, 3))

	assert.Equal(t, 60.0, m.Focused().Slider().Value().Float())
	assert.Equal(t, []string{"a:start_change", "a:change", "a:stop_change", "a:" + kindDisabled}, logKinds(m))
	saved, err := st.GetValue("a")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 60.0, saved.Hi)
}

func TestLayout_HiddenPanelsAreNotHit(t *testing.T) {
	m, err := New(testConfig(), nil, Options{})
	require.NoError(t, err)
	// Room for the first panel only.
	m = send(t, m, tea.WindowSizeMsg{Width: 161, Height: 6})
	require.Equal(t, 0, m.first)
	require.Equal(t, 1, m.last)

	// Where slider b's handle would be if it were drawn.
	m = send(t, m, testutil.Press(23, 7))
	assert.False(t, m.sliders[1].Slider().Dragging())

	// Focusing b scrolls it into view.
	m = send(t, m, testutil.Key("j"))
	assert.Equal(t, 1, m.first)
	assert.Equal(t, 2, m.last)
}

func TestView(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, testutil.Key("right"))

	view := testutil.StripANSI(m.View())
	lines := testutil.SplitLines(view)

	assert.Len(t, lines, 40)
	assert.Contains(t, lines[0], "rangeslider")
	assert.Contains(t, lines[0], "Alpha")
	assert.Contains(t, lines[0], "Bravo")
	assert.Contains(t, view, "Events (3)")
	assert.Contains(t, lines[len(lines)-1], "slider 51")
	for i, line := range lines {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), 161, "line %d too wide", i)
	}
}

func TestView_Narrow(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	view := testutil.StripANSI(m.View())
	events := strings.Index(view, "Events (0)")
	sliders := strings.Index(view, "Alpha")
	require.NotEqual(t, -1, events)
	assert.Greater(t, events, sliders, "event log goes below the sliders")
}

func TestView_ZeroSize(t *testing.T) {
	m, err := New(testConfig(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, m.View())
}

func TestReset_ForgetsSavedValue(t *testing.T) {
	st := state.NewMock()
	m := newTestModel(t, st)
	m = send(t, m, testutil.Key("right"))
	m.Log().Clear()

	m = send(t, m, testutil.Key("r"))
	require.NotNil(t, m.popups.Active())
	assert.Contains(t, testutil.StripANSI(m.View()), "Back to 50")

	m = send(t, m, testutil.Key("enter")) // reset and forget

	assert.Nil(t, m.popups.Active())
	assert.Equal(t, 50.0, m.Focused().Slider().Value().Float())
	saved, err := st.GetValue("a")
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.Equal(t, []string{"a:change"}, logKinds(m))
	status, _ := m.Status()
	assert.Equal(t, "Forgot saved value of Alpha", status)
}

func TestReset_KeepsSaving(t *testing.T) {
	st := state.NewMock()
	m := newTestModel(t, st)
	m = send(t, m, testutil.Key("right"))

	m = send(t, m, testutil.Key("r"))
	for range resetOnly {
		m = send(t, m, testutil.Key("down"))
	}
	m = send(t, m, testutil.Key("enter")) // reset only

	assert.Equal(t, 50.0, m.Focused().Slider().Value().Float())
	saved, err := st.GetValue("a")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 50.0, saved.Hi)
	assert.Equal(t, 2, st.Saves())
}

func TestReset_UnpersistedAsksYesNo(t *testing.T) {
	m := newTestModel(t, state.NewMock())
	m = send(t, m, testutil.Key("j"))
	m = send(t, m, testutil.Key("end"))
	require.NotEqual(t, slider.Pair{20, 60}, m.Focused().Slider().Pair())

	m = send(t, m, testutil.Key("r"))
	assert.Contains(t, testutil.StripANSI(m.View()), "Enter/Y: confirm")
	m = send(t, m, testutil.Key("y"))

	assert.Equal(t, slider.Pair{20, 60}, m.Focused().Slider().Pair())
}

func TestReset_Cancel(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, testutil.Key("right"))

	m = send(t, m, testutil.Key("r"))
	m = send(t, m, testutil.Key("esc"))

	assert.Nil(t, m.popups.Active())
	assert.Equal(t, 51.0, m.Focused().Slider().Value().Float())
}

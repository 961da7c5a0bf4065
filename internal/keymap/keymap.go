package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "slider", "demo"
}

// Bindings contains all key bindings, used for resolution and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionFocusNext, []string{"j", "ctrl+n"}, "Next slider", "global"},
	{ActionFocusPrev, []string{"k", "ctrl+p"}, "Previous slider", "global"},
	{ActionClearLog, []string{"c"}, "Clear event log", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Slider handle
	{ActionIncrease, []string{"right", "up", "l"}, "Increase by one step", "slider"},
	{ActionDecrease, []string{"left", "down", "h"}, "Decrease by one step", "slider"},
	{ActionHome, []string{"home"}, "Set to minimum", "slider"},
	{ActionEnd, []string{"end"}, "Set to maximum", "slider"},
	{ActionPageIncrease, []string{"pgup"}, "Increase by ten steps", "slider"},
	{ActionPageDecrease, []string{"pgdown"}, "Decrease by ten steps", "slider"},
	{ActionSwitchHandle, []string{"tab", "shift+tab"}, "Switch handle", "slider"},

	// Demo
	{ActionMoveBack, []string{"["}, "Move -5 steps", "demo"},
	{ActionMoveForward, []string{"]"}, "Move +10 steps", "demo"},
	{ActionToggleDisabled, []string{"d"}, "Toggle disabled", "demo"},
	{ActionEditValue, []string{"enter", "="}, "Type a value", "demo"},
	{ActionReset, []string{"r"}, "Reset to initial value", "demo"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts lists binding contexts in help display order.
func Contexts() []string {
	return []string{"global", "slider", "demo"}
}

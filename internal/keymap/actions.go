// Package keymap translates key names into application actions.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit      Action = "quit"
	ActionHelp      Action = "help"
	ActionFocusNext Action = "focus_next" // next slider
	ActionFocusPrev Action = "focus_prev" // previous slider
	ActionClearLog  Action = "clear_log"

	// Slider handle keys
	ActionIncrease     Action = "increase"
	ActionDecrease     Action = "decrease"
	ActionHome         Action = "home"
	ActionEnd          Action = "end"
	ActionPageIncrease Action = "page_increase"
	ActionPageDecrease Action = "page_decrease"
	ActionSwitchHandle Action = "switch_handle" // tab - range sliders only

	// Demo actions on the focused slider
	ActionMoveBack       Action = "move_back"    // [ - move(-5)
	ActionMoveForward    Action = "move_forward" // ] - move(10)
	ActionToggleDisabled Action = "toggle_disabled"
	ActionEditValue      Action = "edit_value"
	ActionReset          Action = "reset"
)

package valueinput

import (
	"github.com/llehouerou/rangeslider/internal/ui/action"
)

// Result contains the edited value.
type Result struct {
	Values   []float64 // one value, or two in range mode
	Context  any       // User-provided context passed through
	Canceled bool      // True if user pressed Escape
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "valueinput.result" }

// ActionMsg creates an action.Msg for a valueinput action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "valueinput", Action: a}
}

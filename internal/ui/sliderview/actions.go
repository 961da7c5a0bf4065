package sliderview

import (
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/action"
)

// Event is one lifecycle event emitted by a slider.
type Event struct {
	Kind  slider.EventKind
	Value slider.Value
}

// Changed carries the events a slider emitted while handling one message,
// in emission order.
type Changed struct {
	Slider string // slider name
	Events []Event
}

// ActionType implements action.Action.
func (a Changed) ActionType() string { return "slider.changed" }

// Final returns the value of the last event.
func (a Changed) Final() slider.Value {
	return a.Events[len(a.Events)-1].Value
}

// ActionMsg creates an action.Msg for a slider action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "slider", Action: a}
}

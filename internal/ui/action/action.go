// Package action defines the messages UI components send to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component asks the app to handle.
// ActionType returns an identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that produced it.
type Msg struct {
	Source string // "slider", "valueinput"
	Action Action
}

var _ tea.Msg = Msg{}

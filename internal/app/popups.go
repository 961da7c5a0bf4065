package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/ui/confirm"
	"github.com/llehouerou/rangeslider/internal/ui/helpbindings"
	"github.com/llehouerou/rangeslider/internal/ui/popup"
	"github.com/llehouerou/rangeslider/internal/ui/valueinput"
)

const valueInputWidth = 40

// Popups manages the modal popups. At most one is active; help wins.
type Popups struct {
	help     helpbindings.Model
	showHelp bool
	confirm  confirm.Model
	input    valueinput.Model
	editing  string // name of the slider being edited, "" when closed

	width  int
	height int
}

// NewPopups creates the popup set.
func NewPopups() Popups {
	return Popups{
		help:    helpbindings.New(),
		confirm: confirm.New(),
		input:   valueinput.New(),
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Popups) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.help.SetSize(width, height)
	p.confirm.SetSize(width, height)
	if p.editing != "" {
		p.input.SetSize(p.inputWidth(), height)
	}
}

// Active returns the visible popup, or nil.
func (p *Popups) Active() popup.Popup {
	switch {
	case p.showHelp:
		return &p.help
	case p.confirm.Active():
		return &p.confirm
	case p.editing != "":
		return &p.input
	}
	return nil
}

// Update forwards a message to the active popup.
func (p *Popups) Update(msg tea.Msg) tea.Cmd {
	active := p.Active()
	if active == nil {
		return nil
	}
	_, cmd := active.Update(msg)
	return cmd
}

// ShowHelp displays the help popup with the given contexts.
func (p *Popups) ShowHelp(contexts []string) {
	p.help.SetContexts(contexts)
	p.help.SetSize(p.width, p.height)
	p.showHelp = true
}

// HideHelp hides the help popup.
func (p *Popups) HideHelp() {
	p.showHelp = false
}

// ShowConfirm asks a yes/no question, or offers options when given.
func (p *Popups) ShowConfirm(title, message string, options []string, context any) {
	p.confirm.ShowWithOptions(title, message, options, context, p.width, p.height)
}

// ShowValueInput opens the value editor for a slider.
func (p *Popups) ShowValueInput(name, title, text string, isRange bool) tea.Cmd {
	p.editing = name
	p.input.Start(title, text, isRange, name, p.inputWidth(), p.height)
	return p.input.Init()
}

// HideValueInput closes the value editor.
func (p *Popups) HideValueInput() {
	p.editing = ""
}

// Editing returns the name of the slider being edited.
func (p *Popups) Editing() string {
	return p.editing
}

func (p *Popups) inputWidth() int {
	return max(min(valueInputWidth, p.width-4), 1)
}

// View draws the active popup centred over base.
func (p *Popups) View(base string) string {
	active := p.Active()
	if active == nil {
		return base
	}
	box := popup.Render("", active.View(), "", p.width)
	return popup.Compose(base, popup.Center(box, p.width, p.height), p.width)
}

// Package app is the demo program: a column of sliders, an event log and a
// status line.
package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"

	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/state"
	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/sliderview"
)

const appName = "rangeslider"

// Options carries the optional collaborators of the demo.
type Options struct {
	Logger logrus.FieldLogger
	Tracer trace.Tracer
	Now    func() time.Time
}

// Model is the root application model.
type Model struct {
	sliders []sliderview.Model
	persist map[string]bool
	initial map[string]slider.Pair // configured values, for reset
	focus   int
	log     *EventLog
	popups  Popups
	keys    *keymap.Resolver
	state   state.Interface // nil when nothing is persisted
	logger  logrus.FieldLogger
	now     func() time.Time

	status    string
	statusErr bool

	width  int
	height int
	// visible slider panels, [first, last)
	first int
	last  int
}

// New builds the demo from configuration. stateMgr may be nil.
func New(cfg *config.Config, stateMgr state.Interface, opts Options) (Model, error) {
	if len(cfg.Sliders) == 0 {
		return Model{}, errors.New("no sliders configured")
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := Model{
		persist: make(map[string]bool),
		initial: make(map[string]slider.Pair),
		log:     NewEventLog(ui.EventLogSize),
		popups:  NewPopups(),
		keys:    keymap.Default(),
		state:   stateMgr,
		logger:  opts.Logger,
		now:     opts.Now,
	}

	for i, sc := range cfg.Sliders {
		sliderCfg, err := sc.Build()
		if err != nil {
			return Model{}, err
		}
		sliderOpts := []slider.Option{slider.WithLogger(opts.Logger.WithField("slider", sc.Name))}
		if opts.Tracer != nil {
			sliderOpts = append(sliderOpts, slider.WithTracer(opts.Tracer))
		}
		v, err := sliderview.New(sc.Name, sc.Title, sliderCfg, sliderOpts...)
		if err != nil {
			return Model{}, err
		}
		v.SetFocused(i == 0)
		m.sliders = append(m.sliders, v)
		m.persist[sc.Name] = sc.Persist
		m.initial[sc.Name] = v.Slider().Pair()
	}

	m.restore()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// restore applies saved values to persisted sliders. Restoring is not an
// interaction, so the resulting events are dropped.
func (m *Model) restore() {
	if m.state == nil {
		return
	}
	restored := 0
	for i := range m.sliders {
		v := m.sliders[i]
		if !m.persist[v.Name()] {
			continue
		}
		saved, err := m.state.GetValue(v.Name())
		if err != nil {
			m.setError(errmsg.FormatWith(errmsg.OpStateRestore, v.Name(), err))
			continue
		}
		if saved == nil {
			continue
		}

		var value any = saved.Hi
		if v.Slider().IsRange() {
			value = slider.Pair{saved.Lo, saved.Hi}
		}
		if _, err := v.SetValue(value); err != nil {
			m.setError(errmsg.FormatWith(errmsg.OpStateRestore, v.Name(), err))
			continue
		}
		restored++
	}
	if restored > 0 && !m.statusErr {
		m.setStatus(fmt.Sprintf("Restored %d saved value(s)", restored))
	}
}

// Focused returns the focused slider.
func (m Model) Focused() sliderview.Model {
	return m.sliders[m.focus]
}

// Log returns the event log.
func (m Model) Log() *EventLog {
	return m.log
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
	m.logger.Warn(s)
}

func (m Model) indexOf(name string) int {
	for i := range m.sliders {
		if m.sliders[i].Name() == name {
			return i
		}
	}
	return -1
}

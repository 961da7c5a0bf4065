// Package slider implements a headless range-selection control: one or two
// handles on a bounded track, producing a single value or a [lo, hi] pair
// quantized to a step lattice.
//
// The Slider keeps pointer dragging, keyboard stepping and programmatic
// updates consistent through a single normalization gate (FixValue), emits
// start/change/stop lifecycle events, and projects its state to a host
// Surface as accessibility attributes and handle positions. Rendering is the
// host's job; see internal/ui/sliderview for the terminal implementation.
//
// A Slider is not safe for concurrent use. All calls are expected to come
// from the host's single event loop.
package slider

import (
	"io"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/llehouerou/rangeslider/internal/slider"

// Handle identifies one of the two edge markers.
type Handle int

const (
	HandleMin Handle = iota
	HandleMax
)

func (h Handle) String() string {
	if h == HandleMin {
		return "min"
	}
	return "max"
}

// Slider is the value/interaction engine.
type Slider struct {
	settings Settings
	surface  Surface

	// value is nil until the first render at construction.
	value *Pair

	session *session
	events  notifier
	attrs   [2]map[string]string

	log    logrus.FieldLogger
	tracer trace.Tracer
}

// Option configures optional collaborators of a Slider.
type Option func(*Slider)

// WithSurface attaches the host surface. Without it a MemorySurface is
// created and can be retrieved with Surface.
func WithSurface(s Surface) Option {
	return func(sl *Slider) {
		sl.surface = s
	}
}

// WithLogger sets the logger for interaction and settings diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(sl *Slider) {
		if l != nil {
			sl.log = l
		}
	}
}

// WithTracer sets the tracer used to record interaction sessions as spans.
func WithTracer(t trace.Tracer) Option {
	return func(sl *Slider) {
		if t != nil {
			sl.tracer = t
		}
	}
}

// New validates cfg, renders the slider onto its surface and sets the
// initial value, emitting one forced change event.
func New(cfg Config, opts ...Option) (*Slider, error) {
	settings, err := cfg.normalize()
	if err != nil {
		return nil, err
	}

	s := &Slider{
		settings: settings,
		log:      discardLogger(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.surface == nil {
		s.surface = NewMemorySurface(DefaultTrackWidth)
	}
	for i := range s.attrs {
		s.attrs[i] = make(map[string]string)
	}

	s.render()
	if err := s.setValue("new", cfg.initialPair(settings), true); err != nil {
		return nil, err
	}
	return s, nil
}

// Surface returns the host surface the slider renders onto.
func (s *Slider) Surface() Surface {
	return s.surface
}

// Settings returns a copy of the canonical settings.
func (s *Slider) Settings() Settings {
	return s.settings
}

// Disabled reports whether user interaction is disabled.
func (s *Slider) Disabled() bool {
	return s.settings.Disabled
}

// IsRange reports whether the slider has two user-controlled handles.
func (s *Slider) IsRange() bool {
	return s.settings.IsRange
}

// SetDisabled enables or disables user interaction.
func (s *Slider) SetDisabled(disabled bool) {
	_ = s.SetSetting(SettingDisabled, disabled)
}

// GetSetting returns a setting by name. Per-handle settings are returned as
// a pair in range mode and as the max handle's element otherwise.
func (s *Slider) GetSetting(name string) (any, error) {
	st := s.settings
	switch name {
	case SettingDisabled:
		return st.Disabled, nil
	case SettingMin:
		return st.Min, nil
	case SettingMax:
		return st.Max, nil
	case SettingStep:
		return st.Step, nil
	case SettingIsRange:
		return st.IsRange, nil
	case SettingTicks:
		return st.Ticks, nil
	case SettingValueTextFormatter:
		return st.ValueTextFormatter, nil
	case SettingTabOrder:
		if st.IsRange {
			return st.TabOrder, nil
		}
		return st.TabOrder[HandleMax], nil
	case SettingAriaLabel:
		return s.perHandle(st.AriaLabel), nil
	case SettingAriaLabelledBy:
		return s.perHandle(st.AriaLabelledBy), nil
	case SettingAriaDescribedBy:
		return s.perHandle(st.AriaDescribedBy), nil
	}
	return nil, unknownSetting("get", name)
}

func (s *Slider) perHandle(p [2]string) any {
	if s.settings.IsRange {
		return p
	}
	return p[HandleMax]
}

// SetSetting changes a setting by name. Changing min, max or step
// re-normalizes the current value and refreshes ticks and accessibility
// limits.
func (s *Slider) SetSetting(name string, v any) error {
	norm, err := normalizeSetting("set", name, v)
	if err != nil {
		return err
	}

	switch name {
	case SettingDisabled:
		s.settings.Disabled = norm.(bool)
		if s.settings.Disabled && s.session != nil {
			// No interaction outlives the switch to disabled.
			s.endSession()
		}
		s.updateDisabled()

	case SettingMin, SettingMax, SettingStep:
		next := s.settings
		switch name {
		case SettingMin:
			next.Min = norm.(float64)
		case SettingMax:
			next.Max = norm.(float64)
		case SettingStep:
			next.Step = norm.(float64)
		}
		if err := validateLimits("set", next.Min, next.Max, next.Step); err != nil {
			return err
		}
		if err := validateTickCount("set", name, next); err != nil {
			return err
		}
		s.settings = next
		if s.value != nil {
			if err := s.setValue("set", s.externalValue(), true); err != nil {
				return err
			}
		}
		s.updateLimits()
		s.updateTicks()

	case SettingTicks:
		next := s.settings
		next.Ticks = norm.(Ticks)
		if err := validateTickCount("set", name, next); err != nil {
			return err
		}
		s.settings = next
		s.updateTicks()

	case SettingIsRange:
		// Stored only; handles are not re-rendered.
		s.settings.IsRange = norm.(bool)

	case SettingTabOrder:
		s.settings.TabOrder = norm.([2]int)
		s.updateTabOrder()

	case SettingAriaLabel:
		s.settings.AriaLabel = norm.([2]string)
		s.updateLabels()
	case SettingAriaLabelledBy:
		s.settings.AriaLabelledBy = norm.([2]string)
		s.updateLabels()
	case SettingAriaDescribedBy:
		s.settings.AriaDescribedBy = norm.([2]string)
		s.updateLabels()

	case SettingValueTextFormatter:
		s.settings.ValueTextFormatter = norm.(ValueTextFormatter)
		if s.value != nil {
			s.updateValueTexts(*s.value)
		}

	default:
		// initialValue is only meaningful at construction.
		return unknownSetting("set", name)
	}

	s.log.WithFields(logrus.Fields{"setting": name, "value": v}).Debug("slider setting changed")
	return nil
}

// render pushes the static projection (limits, labels, disabled state,
// ticks) to the surface.
func (s *Slider) render() {
	for _, h := range []Handle{HandleMin, HandleMax} {
		s.setAttr(h, AttrRole, "slider")
		s.setAttr(h, AttrOrientation, "horizontal")
	}
	s.updateLimits()
	s.updateLabels()
	s.updateDisabled()
	s.updateTicks()
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

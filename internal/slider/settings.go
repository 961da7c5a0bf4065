package slider

import (
	"fmt"
	"math"
)

// Setting names accepted by Config.Set, Slider.GetSetting and Slider.SetSetting.
const (
	SettingDisabled           = "disabled"
	SettingInitialValue       = "initialValue"
	SettingIsRange            = "isRange"
	SettingMin                = "min"
	SettingMax                = "max"
	SettingStep               = "step"
	SettingTicks              = "ticks"
	SettingTabOrder           = "tabOrder"
	SettingAriaLabel          = "ariaLabel"
	SettingAriaLabelledBy     = "ariaLabelledBy"
	SettingAriaDescribedBy    = "ariaDescribedBy"
	SettingValueTextFormatter = "valueTextFormatter"
)

const defaultTabOrder = 0

// ValueTextFormatter turns a handle value into its accessible value text.
type ValueTextFormatter func(value float64) string

// TickFormatter is called for every tick before it is rendered. It may
// restyle the tick and returns false to suppress it.
type TickFormatter func(t *Tick, value, offsetPercent float64) bool

// Ticks controls tick generation: off, one tick per step, or one tick per
// step filtered through a formatter.
type Ticks struct {
	Enabled   bool
	Formatter TickFormatter
}

// On reports whether ticks are generated at all.
func (t Ticks) On() bool {
	return t.Enabled || t.Formatter != nil
}

// Config is the construction record for a Slider.
//
// Per-handle fields are slices: one element is broadcast to both handles,
// extra elements are ignored. InitialValue holds one number, two numbers for
// a pair, or nothing for the default.
type Config struct {
	InitialValue       []float64
	Disabled           bool
	IsRange            bool
	Min                float64
	Max                float64
	Step               float64
	Ticks              Ticks
	TabOrder           []int
	AriaLabel          []string
	AriaLabelledBy     []string
	AriaDescribedBy    []string
	ValueTextFormatter ValueTextFormatter
}

// DefaultConfig returns a config for a 0..100 single-value slider with step 1.
func DefaultConfig() Config {
	return Config{
		Min:                0,
		Max:                100,
		Step:               1,
		TabOrder:           []int{defaultTabOrder, defaultTabOrder},
		ValueTextFormatter: FormatValue,
	}
}

// Settings is the canonical, normalized form of a Config.
type Settings struct {
	Min                float64
	Max                float64
	Step               float64
	IsRange            bool
	Disabled           bool
	Ticks              Ticks
	TabOrder           [2]int
	AriaLabel          [2]string
	AriaLabelledBy     [2]string
	AriaDescribedBy    [2]string
	ValueTextFormatter ValueTextFormatter
}

// Set assigns a setting by name from a loosely typed value, applying the same
// normalization as Slider.SetSetting. It is how untyped sources (TOML files,
// flags) feed a Config.
func (c *Config) Set(name string, v any) error {
	norm, err := normalizeSetting("set", name, v)
	if err != nil {
		return err
	}
	switch name {
	case SettingDisabled:
		c.Disabled = norm.(bool)
	case SettingIsRange:
		c.IsRange = norm.(bool)
	case SettingMin:
		c.Min = norm.(float64)
	case SettingMax:
		c.Max = norm.(float64)
	case SettingStep:
		c.Step = norm.(float64)
	case SettingInitialValue:
		c.InitialValue = norm.([]float64)
	case SettingTicks:
		c.Ticks = norm.(Ticks)
	case SettingTabOrder:
		p := norm.([2]int)
		c.TabOrder = p[:]
	case SettingAriaLabel:
		p := norm.([2]string)
		c.AriaLabel = p[:]
	case SettingAriaLabelledBy:
		p := norm.([2]string)
		c.AriaLabelledBy = p[:]
	case SettingAriaDescribedBy:
		p := norm.([2]string)
		c.AriaDescribedBy = p[:]
	case SettingValueTextFormatter:
		c.ValueTextFormatter = norm.(ValueTextFormatter)
	}
	return nil
}

// normalize validates c and converts it to canonical Settings. InitialValue
// is resolved separately, at construction only.
func (c Config) normalize() (Settings, error) {
	s := Settings{
		Min:                c.Min,
		Max:                c.Max,
		Step:               c.Step,
		IsRange:            c.IsRange,
		Disabled:           c.Disabled,
		Ticks:              c.Ticks,
		TabOrder:           pairOf(c.TabOrder, defaultTabOrder),
		AriaLabel:          pairOf(c.AriaLabel, ""),
		AriaLabelledBy:     pairOf(c.AriaLabelledBy, ""),
		AriaDescribedBy:    pairOf(c.AriaDescribedBy, ""),
		ValueTextFormatter: c.ValueTextFormatter,
	}
	if s.ValueTextFormatter == nil {
		return Settings{}, &ConfigurationError{Op: "new", Setting: SettingValueTextFormatter, Reason: "must be a function"}
	}
	if err := validateLimits("new", s.Min, s.Max, s.Step); err != nil {
		return Settings{}, err
	}
	if err := validateTickCount("new", SettingTicks, s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// initialPair resolves the configured initial value; nil means the default
// ([min, min+step] for a range, min otherwise).
func (c Config) initialPair(s Settings) any {
	switch len(c.InitialValue) {
	case 0:
		if s.IsRange {
			return Pair{s.Min, s.Min + s.Step}
		}
		return s.Min
	case 1:
		return c.InitialValue[0]
	default:
		return sortedPair(c.InitialValue[0], c.InitialValue[1])
	}
}

func validateLimits(op string, minVal, maxVal, step float64) error {
	for name, v := range map[string]float64{SettingMin: minVal, SettingMax: maxVal, SettingStep: step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ConfigurationError{Op: op, Setting: name, Reason: "must be a finite number"}
		}
	}
	if step <= 0 {
		return &ConfigurationError{Op: op, Setting: SettingStep, Reason: fmt.Sprintf("must be positive, got %v", step)}
	}
	if maxVal <= minVal {
		return &ConfigurationError{Op: op, Setting: SettingMax, Reason: fmt.Sprintf("must be greater than min (%v), got %v", minVal, maxVal)}
	}
	return nil
}

// maxTicks bounds the tick lattice; no track is drawn wide enough to show
// more.
const maxTicks = 10000

// validateTickCount rejects settings whose ticks would number more than
// maxTicks. setting names the setting being changed.
func validateTickCount(op, setting string, st Settings) error {
	if !st.Ticks.On() {
		return nil
	}
	if n := math.Floor((st.Max-st.Min)/st.Step) + 1; n > maxTicks {
		return &ConfigurationError{Op: op, Setting: setting, Reason: fmt.Sprintf("ticks on would draw %.0f ticks, at most %d are allowed", n, maxTicks)}
	}
	return nil
}

// normalizeSetting coerces v into the canonical Go type of the named setting:
// bool, float64, []float64, Ticks, [2]int, [2]string or ValueTextFormatter.
func normalizeSetting(op, name string, v any) (any, error) {
	switch name {
	case SettingDisabled, SettingIsRange:
		return truthy(v), nil

	case SettingMin, SettingMax, SettingStep:
		f, ok := toFloat(v)
		if !ok {
			return nil, badSettingType(op, name, v)
		}
		return f, nil

	case SettingInitialValue:
		if v == nil {
			return []float64(nil), nil
		}
		if f, ok := toFloat(v); ok {
			return []float64{f}, nil
		}
		if p, ok := toPair(v); ok {
			return []float64{p[0], p[1]}, nil
		}
		return nil, badSettingType(op, name, v)

	case SettingTicks:
		switch t := v.(type) {
		case nil:
			return Ticks{}, nil
		case bool:
			return Ticks{Enabled: t}, nil
		case Ticks:
			return t, nil
		case TickFormatter:
			return Ticks{Formatter: t}, nil
		case func(*Tick, float64, float64) bool:
			return Ticks{Formatter: t}, nil
		}
		return nil, badSettingType(op, name, v)

	case SettingTabOrder:
		ints, ok := toInts(v)
		if !ok {
			return nil, badSettingType(op, name, v)
		}
		return pairOf(ints, defaultTabOrder), nil

	case SettingAriaLabel, SettingAriaLabelledBy, SettingAriaDescribedBy:
		strs, ok := toStrings(v)
		if !ok {
			return nil, badSettingType(op, name, v)
		}
		return pairOf(strs, ""), nil

	case SettingValueTextFormatter:
		switch f := v.(type) {
		case ValueTextFormatter:
			if f != nil {
				return f, nil
			}
		case func(float64) string:
			if f != nil {
				return ValueTextFormatter(f), nil
			}
		}
		return nil, &ConfigurationError{Op: op, Setting: name, Reason: "must be a function"}
	}
	return nil, unknownSetting(op, name)
}

// pairOf truncates s to two elements, padding a short slice by repeating
// element 0, or def when s is empty.
func pairOf[T comparable](s []T, def T) [2]T {
	switch len(s) {
	case 0:
		return [2]T{def, def}
	case 1:
		return [2]T{s[0], s[0]}
	default:
		return [2]T{s[0], s[1]}
	}
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return b != ""
	}
	if f, ok := toFloat(v); ok {
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// toPair accepts Pair, [2]float64 and two-element numeric slices.
func toPair(v any) (Pair, bool) {
	switch p := v.(type) {
	case Pair:
		return p, true
	case [2]float64:
		return Pair(p), true
	case [2]int:
		return Pair{float64(p[0]), float64(p[1])}, true
	case []float64:
		if len(p) == 2 {
			return Pair{p[0], p[1]}, true
		}
	case []int:
		if len(p) == 2 {
			return Pair{float64(p[0]), float64(p[1])}, true
		}
	case []any:
		if len(p) == 2 {
			a, okA := toFloat(p[0])
			b, okB := toFloat(p[1])
			if okA && okB {
				return Pair{a, b}, true
			}
		}
	}
	return Pair{}, false
}

func toInts(v any) ([]int, bool) {
	if f, ok := toFloat(v); ok {
		return []int{int(f)}, true
	}
	switch s := v.(type) {
	case []int:
		return s, true
	case [2]int:
		return s[:], true
	case []int64:
		out := make([]int, len(s))
		for i, n := range s {
			out[i] = int(n)
		}
		return out, true
	case []float64:
		out := make([]int, len(s))
		for i, n := range s {
			out[i] = int(n)
		}
		return out, true
	case []any:
		out := make([]int, len(s))
		for i, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = int(f)
		}
		return out, true
	}
	return nil, false
}

func toStrings(v any) ([]string, bool) {
	switch s := v.(type) {
	case string:
		return []string{s}, true
	case []string:
		return s, true
	case [2]string:
		return s[:], true
	case []any:
		out := make([]string, len(s))
		for i, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out[i] = str
		}
		return out, true
	}
	return nil, false
}

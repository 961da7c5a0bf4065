package slider

import (
	"fmt"
	"math"
)

// Pair is a [lo, hi] value: element 0 belongs to the min handle, element 1
// to the max handle.
type Pair [2]float64

// Value is the externally visible slider value: the whole pair in range
// mode, only Pair[1] otherwise.
type Value struct {
	Pair    Pair
	IsRange bool
}

// Float returns the single value of a non-range slider (the max handle).
func (v Value) Float() float64 {
	return v.Pair[HandleMax]
}

func (v Value) String() string {
	if v.IsRange {
		return fmt.Sprintf("[%s, %s]", FormatValue(v.Pair[0]), FormatValue(v.Pair[1]))
	}
	return FormatValue(v.Float())
}

func sortedPair(a, b float64) Pair {
	if b < a {
		return Pair{b, a}
	}
	return Pair{a, b}
}

// valuesEqual compares two stored values element-wise. A nil value (not yet
// initialized) is only equal to another nil value.
func valuesEqual(a, b *Pair) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a[0] == b[0] && a[1] == b[1]
}

// Value returns the current externally visible value.
func (s *Slider) Value() Value {
	return Value{Pair: s.pair(), IsRange: s.settings.IsRange}
}

// Pair returns the stored [lo, hi] pair regardless of mode.
func (s *Slider) Pair() Pair {
	return s.pair()
}

func (s *Slider) pair() Pair {
	if s.value == nil {
		return Pair{}
	}
	return *s.value
}

// externalValue is the stored value in the shape callers see: Pair in range
// mode, float64 otherwise.
func (s *Slider) externalValue() any {
	if s.settings.IsRange {
		return s.pair()
	}
	return s.pair()[HandleMax]
}

// SetValue sets the value from a number or a pair. A pair is sorted
// ascending before it is applied. Change events fire only if the stored
// value actually changes.
func (s *Slider) SetValue(v any) error {
	if p, ok := toPair(v); ok {
		v = sortedPair(p[0], p[1])
	}
	return s.setValue("set value", v, false)
}

// Move shifts the value by a number of steps. A number moves the max handle
// only; a pair moves each handle by its own count.
func (s *Slider) Move(steps any) error {
	cur := s.pair()
	step := s.settings.Step
	if n, ok := toFloat(steps); ok {
		return s.SetValue(cur[HandleMax] + step*n)
	}
	if p, ok := toPair(steps); ok {
		return s.SetValue(Pair{cur[0] + step*p[0], cur[1] + step*p[1]})
	}
	return &ValueTypeError{Op: "move", Value: steps}
}

// prepare converts a proposed number or pair into a valid stored pair. It is
// the single normalization gate for every value-setting path.
func (s *Slider) prepare(op string, v any) (Pair, error) {
	var p Pair
	if x, ok := toFloat(v); ok {
		p = Pair{s.scalarFloor(x), x}
	} else if pp, ok := toPair(v); ok {
		p = pp
	} else {
		return Pair{}, &ValueTypeError{Op: op, Value: v}
	}
	if math.IsNaN(p[0]) || math.IsNaN(p[1]) {
		return Pair{}, &ValueTypeError{Op: op, Value: v}
	}

	// The low end anchors unless this update moves only the low end.
	anchorLow := s.value == nil || s.value[HandleMax] != p[HandleMax]

	st := s.settings
	return FixValue(p, st.Min, st.Max, st.Step, !st.IsRange, anchorLow), nil
}

// scalarFloor picks the low end for a scalar update: the current low end in
// range mode; in single mode the internal floor, reset to min when the new
// value would fall below it.
func (s *Slider) scalarFloor(x float64) float64 {
	if s.value == nil {
		return s.settings.Min
	}
	lo := s.value[HandleMin]
	if s.settings.IsRange || lo <= x {
		return lo
	}
	return s.settings.Min
}

// setValue stores a normalized value, updates the surface and accessibility
// projection, and emits a change event if the value changed or force is set.
func (s *Slider) setValue(op string, v any, force bool) error {
	p, err := s.prepare(op, v)
	if err != nil {
		return err
	}

	changed := !valuesEqual(s.value, &p)
	s.value = &p

	if changed || force {
		st := s.settings
		lo := ValueToPercent(p[0], st.Min, st.Max)
		hi := ValueToPercent(p[1], st.Min, st.Max)
		s.surface.PlaceHandles(lo, hi)
		s.updateValueNow(p)
		s.updateValueTexts(p)
		s.events.emit(EventChange, s.Value())
	}
	return nil
}

// wouldChange reports whether applying v would alter the value held at
// snapshot. Used to decide when a session's start event is due.
func (s *Slider) wouldChange(snapshot Pair, v any) bool {
	p, err := s.prepare("check", v)
	if err != nil {
		return false
	}
	return !valuesEqual(&snapshot, &p)
}

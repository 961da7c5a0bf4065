package slider

// Tick is one mark on the track. A TickFormatter may set Major or Label to
// change how the host draws it.
type Tick struct {
	Value  float64
	Offset float64 // percent from the start of the track
	Major  bool
	Label  string
}

// Ticks returns the ticks currently shown, or nil when ticks are off.
func (s *Slider) Ticks() []Tick {
	return buildTicks(s.settings)
}

func (s *Slider) updateTicks() {
	s.surface.SetTicks(buildTicks(s.settings))
}

// buildTicks walks the step lattice from min to max inclusive. The counter is
// rounded every iteration so accumulated drift cannot drop or add the last
// tick (0.2 * 25 must land on 5).
func buildTicks(st Settings) []Tick {
	if !st.Ticks.On() {
		return nil
	}

	var ticks []Tick
	for cur := RoundValue(st.Min); cur <= st.Max; {
		t := Tick{
			Value:  cur,
			Offset: ValueToPercent(cur, st.Min, st.Max),
		}
		if st.Ticks.Formatter == nil || st.Ticks.Formatter(&t, cur, t.Offset) {
			ticks = append(ticks, t)
		}

		next := RoundValue(cur + st.Step)
		if next <= cur {
			// step below rounding precision
			break
		}
		cur = next
	}
	return ticks
}

package slider

import "strconv"

// Accessibility attribute names projected onto each handle.
const (
	AttrRole        = "role"
	AttrOrientation = "aria-orientation"
	AttrValueMin    = "aria-valuemin"
	AttrValueMax    = "aria-valuemax"
	AttrValueNow    = "aria-valuenow"
	AttrValueText   = "aria-valuetext"
	AttrLabel       = "aria-label"
	AttrLabelledBy  = "aria-labelledby"
	AttrDescribedBy = "aria-describedby"
	AttrTabIndex    = "tabindex"
)

// Attributes returns a copy of the accessibility attributes of a handle.
func (s *Slider) Attributes(h Handle) map[string]string {
	out := make(map[string]string, len(s.attrs[h]))
	for k, v := range s.attrs[h] {
		out[k] = v
	}
	return out
}

// TabIndex returns the effective focus order of a handle: -1 while disabled.
func (s *Slider) TabIndex(h Handle) int {
	if s.settings.Disabled {
		return -1
	}
	return s.settings.TabOrder[h]
}

func (s *Slider) setAttr(h Handle, name, value string) {
	s.attrs[h][name] = value
	s.surface.SetAttribute(h, name, value)
}

// setAttrOrRemove sets the attribute, or removes it when value is empty.
func (s *Slider) setAttrOrRemove(h Handle, name, value string) {
	if value == "" {
		delete(s.attrs[h], name)
		s.surface.RemoveAttribute(h, name)
		return
	}
	s.setAttr(h, name, value)
}

func (s *Slider) updateLimits() {
	minText := FormatValue(s.settings.Min)
	maxText := FormatValue(s.settings.Max)
	for _, h := range []Handle{HandleMin, HandleMax} {
		s.setAttr(h, AttrValueMin, minText)
		s.setAttr(h, AttrValueMax, maxText)
	}
}

func (s *Slider) updateLabels() {
	st := s.settings
	for _, h := range []Handle{HandleMin, HandleMax} {
		s.setAttrOrRemove(h, AttrLabel, st.AriaLabel[h])
		s.setAttrOrRemove(h, AttrLabelledBy, st.AriaLabelledBy[h])
		s.setAttrOrRemove(h, AttrDescribedBy, st.AriaDescribedBy[h])
	}
}

func (s *Slider) updateValueNow(p Pair) {
	s.setAttr(HandleMin, AttrValueNow, FormatValue(p[HandleMin]))
	s.setAttr(HandleMax, AttrValueNow, FormatValue(p[HandleMax]))
}

func (s *Slider) updateValueTexts(p Pair) {
	format := s.settings.ValueTextFormatter
	s.setAttr(HandleMin, AttrValueText, format(p[HandleMin]))
	s.setAttr(HandleMax, AttrValueText, format(p[HandleMax]))
}

func (s *Slider) updateTabOrder() {
	for _, h := range []Handle{HandleMin, HandleMax} {
		s.setAttr(h, AttrTabIndex, strconv.Itoa(s.TabIndex(h)))
	}
}

// updateDisabled projects the disabled state; while disabled neither handle
// is reachable by keyboard focus.
func (s *Slider) updateDisabled() {
	s.surface.SetDisabled(s.settings.Disabled)
	s.updateTabOrder()
}

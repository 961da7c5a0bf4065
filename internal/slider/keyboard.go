package slider

// Key is a slider key, independent of physical key codes.
type Key int

const (
	KeyNone Key = iota
	KeyHome
	KeyEnd
	KeyIncrease
	KeyDecrease
	KeyPageIncrease
	KeyPageDecrease
)

// largeStepMultiplier is the number of steps a page key moves.
const largeStepMultiplier = 10

func (k Key) String() string {
	switch k {
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyIncrease:
		return "increase"
	case KeyDecrease:
		return "decrease"
	case KeyPageIncrease:
		return "page_increase"
	case KeyPageDecrease:
		return "page_decrease"
	}
	return "none"
}

// KeyDown applies a key to the focused handle h. It returns true when the
// key was consumed, in which case the host should suppress the key's default
// action. Unrecognized keys, and all keys while disabled or dragging, are
// not consumed. Neither are keys on the min handle of a single slider.
func (s *Slider) KeyDown(h Handle, k Key) bool {
	if s.settings.Disabled || !s.hasHandle(h) {
		return false
	}
	target, ok := s.keyTarget(h, k)
	if !ok {
		return false
	}

	sess := s.session
	if sess != nil && sess.kind == sessionDrag {
		s.rejectSession(sessionKeyboard, h, "busy")
		return false
	}
	if sess != nil && sess.handle != h {
		// Focus moved without a blur reaching us.
		s.endSession()
		sess = nil
	}
	if sess == nil {
		sess = s.beginSession(sessionKeyboard, h)
	}

	s.apply(sess, target)
	return true
}

// KeyUp ends the key session on h.
func (s *Slider) KeyUp(h Handle) {
	s.endKeySession(h)
}

// Blur ends the key session on h when the handle loses focus.
func (s *Slider) Blur(h Handle) {
	s.endKeySession(h)
}

func (s *Slider) endKeySession(h Handle) {
	sess := s.session
	if sess == nil || sess.kind != sessionKeyboard || sess.handle != h {
		return
	}
	s.endSession()
}

// keyTarget computes the value a key proposes for handle h.
func (s *Slider) keyTarget(h Handle, k Key) (any, bool) {
	cur := s.pair()[h]
	st := s.settings

	var next float64
	switch k {
	case KeyHome:
		next = st.Min
	case KeyEnd:
		next = st.Max
	case KeyIncrease:
		next = cur + st.Step
	case KeyDecrease:
		next = cur - st.Step
	case KeyPageIncrease:
		next = cur + largeStepMultiplier*st.Step
	case KeyPageDecrease:
		next = cur - largeStepMultiplier*st.Step
	default:
		return nil, false
	}
	return s.proposal(h, next), true
}

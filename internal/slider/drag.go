package slider

// PointerDown starts dragging handle h from pointer position x (host units,
// same origin as the track). It returns false, and leaves the slider idle,
// when the slider is disabled, another session is open, or the track has no
// usable width. The min handle only exists on a range slider.
func (s *Slider) PointerDown(h Handle, x float64) bool {
	if s.settings.Disabled {
		s.rejectSession(sessionDrag, h, "disabled")
		return false
	}
	if !s.hasHandle(h) {
		s.rejectSession(sessionDrag, h, "no such handle")
		return false
	}
	if s.session != nil {
		s.rejectSession(sessionDrag, h, "busy")
		return false
	}
	width := s.surface.TrackWidth()
	if !(width > 0) {
		s.rejectSession(sessionDrag, h, "zero-width track")
		return false
	}

	sess := s.beginSession(sessionDrag, h)
	sess.trackWidth = width
	sess.startHandleX = s.surface.HandleCenter(h)
	sess.startPointerX = x
	return true
}

// PointerMove moves the dragged handle so that it keeps its press-time
// distance to the pointer. It is a no-op when no drag is open, so hosts can
// forward every motion event regardless of where the pointer is.
func (s *Slider) PointerMove(x float64) {
	sess := s.session
	if sess == nil || sess.kind != sessionDrag {
		return
	}

	st := s.settings
	percent := offsetToPercent(sess.startHandleX+x-sess.startPointerX, sess.trackWidth)
	s.apply(sess, s.proposal(sess.handle, PercentToValue(percent, st.Min, st.Max)))
}

// PointerUp ends the drag. The final position is the one of the last move.
func (s *Slider) PointerUp() {
	if s.session == nil || s.session.kind != sessionDrag {
		return
	}
	s.endSession()
}

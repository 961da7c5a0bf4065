package slider

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type sessionKind int

const (
	sessionDrag sessionKind = iota + 1
	sessionKeyboard
)

func (k sessionKind) String() string {
	switch k {
	case sessionDrag:
		return "drag"
	case sessionKeyboard:
		return "keyboard"
	}
	return "unknown"
}

// session is one continuous drag gesture or key interaction. A Slider holds
// at most one; nil means idle.
type session struct {
	id         string
	kind       sessionKind
	handle     Handle
	startValue Pair
	started    bool // start event emitted

	// Drag geometry captured at press time.
	trackWidth    float64
	startHandleX  float64
	startPointerX float64

	span trace.Span
	log  logrus.FieldLogger
}

// Interacting reports whether a drag or key session is open, and on which
// handle.
func (s *Slider) Interacting() (Handle, bool) {
	if s.session == nil {
		return 0, false
	}
	return s.session.handle, true
}

// Dragging reports whether a drag session is open.
func (s *Slider) Dragging() bool {
	return s.session != nil && s.session.kind == sessionDrag
}

// EndInteraction closes any open session as if the pointer or key had been
// released. Hosts call it when they lose track of the release (focus loss,
// pointer capture lost).
func (s *Slider) EndInteraction() {
	s.endSession()
}

func (s *Slider) beginSession(kind sessionKind, h Handle) *session {
	id := uuid.NewString()
	_, span := s.tracer.Start(context.Background(), "slider."+kind.String(),
		trace.WithAttributes(
			attribute.String("slider.session", id),
			attribute.String("slider.handle", h.String()),
		))

	sess := &session{
		id:         id,
		kind:       kind,
		handle:     h,
		startValue: s.pair(),
		span:       span,
		log: s.log.WithFields(logrus.Fields{
			"session": id,
			"kind":    kind.String(),
			"handle":  h.String(),
		}),
	}
	s.session = sess
	sess.log.WithField("value", sess.startValue).Debug("slider session started")
	return sess
}

func (s *Slider) endSession() {
	sess := s.session
	if sess == nil {
		return
	}
	s.session = nil

	if sess.started {
		s.events.emit(EventStopChange, s.Value())
	}

	final := s.pair()
	sess.span.SetAttributes(
		attribute.Bool("slider.changed", sess.started),
		attribute.Float64Slice("slider.start_value", sess.startValue[:]),
		attribute.Float64Slice("slider.final_value", final[:]),
	)
	sess.span.End()
	sess.log.WithFields(logrus.Fields{"value": final, "changed": sess.started}).Debug("slider session ended")
}

// hasHandle reports whether users can act on h. A single slider keeps its
// lower bound internally and shows no min handle.
func (s *Slider) hasHandle(h Handle) bool {
	return h == HandleMax || (h == HandleMin && s.settings.IsRange)
}

// rejectSession logs why an interaction did not open a session.
func (s *Slider) rejectSession(kind sessionKind, h Handle, reason string) {
	s.log.WithFields(logrus.Fields{
		"kind":   kind.String(),
		"handle": h.String(),
		"reason": reason,
	}).Debug("slider session rejected")
}

// proposal builds the value an interaction on handle h proposes: the bare
// number for the max handle, a pair keeping the max end for the min handle.
func (s *Slider) proposal(h Handle, v float64) any {
	if h == HandleMax {
		return v
	}
	return Pair{v, s.pair()[HandleMax]}
}

// apply runs an interaction update through the value store, emitting the
// session's start event first if this is the first update that changes the
// value.
func (s *Slider) apply(sess *session, v any) {
	if !sess.started && s.wouldChange(sess.startValue, v) {
		sess.started = true
		s.events.emit(EventStartChange, s.Value())
	}
	if err := s.setValue("interaction", v, false); err != nil {
		sess.log.WithError(err).Debug("slider update dropped")
	}
}

package slider

// EventKind names one of the three lifecycle events.
type EventKind string

const (
	// EventStartChange fires once per interaction session, before the first
	// update that changes the value. Payload: the value before the change.
	EventStartChange EventKind = "start_change"
	// EventChange fires whenever an update changes the stored value.
	EventChange EventKind = "change"
	// EventStopChange fires when a session that emitted a start event ends.
	// Payload: the final value.
	EventStopChange EventKind = "stop_change"
)

// Listener receives event payloads.
type Listener func(Value)

type listenerEntry struct {
	id uint64
	fn Listener
}

// notifier is a synchronous, per-kind listener registry. Listeners run in
// subscription order on the caller's goroutine.
type notifier struct {
	nextID    uint64
	listeners map[EventKind][]listenerEntry
}

func (n *notifier) subscribe(kind EventKind, fn Listener) uint64 {
	if n.listeners == nil {
		n.listeners = make(map[EventKind][]listenerEntry)
	}
	n.nextID++
	n.listeners[kind] = append(n.listeners[kind], listenerEntry{id: n.nextID, fn: fn})
	return n.nextID
}

func (n *notifier) unsubscribe(kind EventKind, id uint64) bool {
	entries := n.listeners[kind]
	for i, e := range entries {
		if e.id == id {
			n.listeners[kind] = append(entries[:i:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

func (n *notifier) emit(kind EventKind, v Value) {
	// Copy so listeners may unsubscribe while being called.
	entries := append([]listenerEntry(nil), n.listeners[kind]...)
	for _, e := range entries {
		e.fn(v)
	}
}

// On subscribes fn to events of the given kind and returns a function that
// removes the subscription. Calling it more than once is harmless.
func (s *Slider) On(kind EventKind, fn Listener) (unsubscribe func()) {
	id := s.events.subscribe(kind, fn)
	return func() {
		s.events.unsubscribe(kind, id)
	}
}

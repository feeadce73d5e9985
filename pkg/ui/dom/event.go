package dom

import "github.com/odvcencio/tabstop/pkg/ui/terminal"

// EventType identifies a dispatched event.
type EventType int

const (
	EventKeyDown EventType = iota + 1
	EventMouseDown
	EventFocus
	EventBlur
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "keydown"
	case EventMouseDown:
		return "mousedown"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	default:
		return "unknown"
	}
}

// Bubbles reports whether events of this type run a bubble phase.
// Focus changes only reach capture listeners on ancestors.
func (t EventType) Bubbles() bool {
	return t == EventKeyDown || t == EventMouseDown
}

// Phase is the dispatch phase an event is in.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseCapture
	PhaseTarget
	PhaseBubble
)

// Event is a dispatched input or focus event.
type Event struct {
	Type   EventType
	Target Node

	// CurrentTarget and Phase are updated as the event travels.
	CurrentTarget *Element
	Phase         Phase

	// Keyboard fields.
	Key   terminal.Key
	Rune  rune
	Shift bool
	Alt   bool
	Ctrl  bool

	// Mouse fields.
	X, Y   int
	Button terminal.MouseButton

	// Related is the element losing focus for focus events and the element
	// gaining focus for blur events.
	Related *Element

	defaultPrevented bool
	stopped          bool
}

// PreventDefault suppresses the document's default action for the event.
// It has no effect on focus and blur events, which have none.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops delivery to further elements. Listeners on the
// current element still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// TargetElement returns the target if it is an element, or nil.
func (e *Event) TargetElement() *Element {
	el, _ := e.Target.(*Element)
	return el
}

// Listener handles a dispatched event.
type Listener func(ev *Event)

// Registration is the handle returned by AddEventListener.
type Registration struct {
	target  *Element
	typ     EventType
	capture bool
	fn      Listener
	removed bool
}

// Remove detaches the listener. Safe to call more than once.
func (r *Registration) Remove() {
	if r == nil || r.removed {
		return
	}
	r.removed = true
	if r.target == nil {
		return
	}
	ls := r.target.listeners
	for i, existing := range ls {
		if existing == r {
			r.target.listeners = append(ls[:i], ls[i+1:]...)
			break
		}
	}
}

// Active reports whether the listener is still attached.
func (r *Registration) Active() bool {
	return r != nil && !r.removed
}

// AddEventListener registers fn for events of type typ reaching e. With
// capture set the listener runs on the way down to the target; otherwise on
// the way back up (or at the target).
func (e *Element) AddEventListener(typ EventType, capture bool, fn Listener) *Registration {
	r := &Registration{target: e, typ: typ, capture: capture, fn: fn}
	if fn == nil {
		r.removed = true
		return r
	}
	e.listeners = append(e.listeners, r)
	return r
}

// ListenerCount returns the number of attached listeners.
func (e *Element) ListenerCount() int {
	return len(e.listeners)
}

func (e *Element) invoke(ev *Event, capture bool) {
	if len(e.listeners) == 0 {
		return
	}
	snapshot := append([]*Registration(nil), e.listeners...)
	ev.CurrentTarget = e
	for _, r := range snapshot {
		if r.removed || r.typ != ev.Type || r.capture != capture {
			continue
		}
		r.fn(ev)
	}
}

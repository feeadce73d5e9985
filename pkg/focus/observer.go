package focus

import (
	"runtime/debug"

	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/logging"
	"github.com/odvcencio/tabstop/pkg/ui/dom"
	"github.com/odvcencio/tabstop/pkg/ui/terminal"
)

// SignalKind says whether a signal reports where navigation is leaving
// from or where it arrived.
type SignalKind int

const (
	// SignalFrom is emitted on navigation keys, before the destination is
	// known.
	SignalFrom SignalKind = iota
	// SignalTo is emitted on pointer presses and focus changes.
	SignalTo
)

// String returns "from" or "to".
func (k SignalKind) String() string {
	if k == SignalFrom {
		return "from"
	}
	return "to"
}

// Modality is the input channel and direction behind the latest navigation.
type Modality struct {
	Tabbing  bool
	Arrowing bool
	Keyboard bool
	Mouse    bool
	Forward  bool
	Backward bool
}

// String names the channel: "tab", "arrow", "mouse" or "none".
func (m Modality) String() string {
	switch {
	case m.Tabbing:
		return "tab"
	case m.Arrowing:
		return "arrow"
	case m.Mouse:
		return "mouse"
	default:
		return "none"
	}
}

// Signal is one classified navigation step.
type Signal struct {
	// Event is the dispatched event that produced the signal. Calling
	// PreventDefault on it suppresses the document's default action for
	// key and pointer events.
	Event *dom.Event
	Kind  SignalKind

	// From and To are nil when unknown. From signals always carry a nil To.
	From *dom.Element
	To   *dom.Element

	Modality
}

// Subscription is the handle returned by Observer.Subscribe.
type Subscription struct {
	id     uint64
	obs    *Observer
	fn     func(Signal)
	active bool
}

// ID returns the subscriber id used in logs.
func (s *Subscription) ID() uint64 {
	return s.id
}

// Active reports whether the subscription still receives signals.
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

// Unsubscribe stops delivery. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	subs := s.obs.subs
	for i, existing := range subs {
		if existing == s {
			s.obs.subs = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Observer classifies key, pointer and focus events inside a container
// into navigation Signals and fans them out to subscribers.
type Observer struct {
	container *dom.Element
	logger    *logging.Logger

	engaged bool
	regs    []*dom.Registration

	subs   []*Subscription
	nextID uint64

	mod      Modality
	from, to *dom.Element
}

// ObserverOption configures an Observer.
type ObserverOption func(*observerOptions)

type observerOptions struct {
	logger     *logging.Logger
	autoEngage bool
}

// WithObserverLogger sets the logger used for lifecycle and subscriber
// failures.
func WithObserverLogger(l *logging.Logger) ObserverOption {
	return func(o *observerOptions) {
		o.logger = l
	}
}

// WithAutoEngage engages the observer as soon as it is created.
func WithAutoEngage() ObserverOption {
	return func(o *observerOptions) {
		o.autoEngage = true
	}
}

// NewObserver creates an observer for container.
func NewObserver(container *dom.Element, opts ...ObserverOption) (*Observer, error) {
	if container == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "navigation observer requires a container")
	}
	var cfg observerOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	o := &Observer{
		container: container,
		logger:    logging.OrDiscard(cfg.logger).WithComponent("navigation_observer"),
	}
	if cfg.autoEngage {
		o.Engage()
	}
	return o, nil
}

// Container returns the observed element.
func (o *Observer) Container() *dom.Element {
	return o.container
}

// Engaged reports whether listeners are attached.
func (o *Observer) Engaged() bool {
	return o.engaged
}

// Modality returns the current flags.
func (o *Observer) Modality() Modality {
	return o.mod
}

// From returns the element navigation last left.
func (o *Observer) From() *dom.Element {
	return o.from
}

// To returns the element navigation last arrived at.
func (o *Observer) To() *dom.Element {
	return o.to
}

// Engage seeds the destination from the document's active element and
// attaches capture listeners. No-op when already engaged.
func (o *Observer) Engage() {
	if o.engaged {
		return
	}
	o.engaged = true
	if doc := o.container.Document(); doc != nil {
		o.to = doc.ActiveElement()
	}
	o.regs = append(o.regs,
		o.container.AddEventListener(dom.EventKeyDown, true, o.handleKeyDown),
		o.container.AddEventListener(dom.EventMouseDown, true, o.handleMouseDown),
		o.container.AddEventListener(dom.EventFocus, true, o.handleFocus),
	)
	o.logger.Lifecycle("engage", true)
}

// Disengage detaches the listeners. Subscribers stay registered. No-op when
// not engaged.
func (o *Observer) Disengage() {
	if !o.engaged {
		return
	}
	o.engaged = false
	for _, r := range o.regs {
		r.Remove()
	}
	o.regs = nil
	o.logger.Lifecycle("disengage", false)
}

// Subscribe registers fn for every emitted signal. Subscribers run in
// registration order.
func (o *Observer) Subscribe(fn func(Signal)) *Subscription {
	o.nextID++
	s := &Subscription{id: o.nextID, obs: o, fn: fn, active: fn != nil}
	if s.active {
		o.subs = append(o.subs, s)
	}
	return s
}

// SubscriberCount returns the number of active subscriptions.
func (o *Observer) SubscriberCount() int {
	return len(o.subs)
}

func (o *Observer) handleKeyDown(ev *dom.Event) {
	if !o.engaged {
		return
	}
	switch {
	case ev.Key == terminal.KeyTab:
		o.mod = Modality{Tabbing: true, Keyboard: true}
		o.setDirection(!ev.Shift)
	case ev.Key.IsArrow():
		o.mod = Modality{Arrowing: true, Keyboard: true}
		o.setDirection(!ev.Key.Decreasing())
	default:
		return
	}
	o.emit(Signal{
		Event:    ev,
		Kind:     SignalFrom,
		From:     ev.TargetElement(),
		Modality: o.mod,
	})
}

func (o *Observer) handleMouseDown(ev *dom.Event) {
	if !o.engaged {
		return
	}
	switch ev.Button {
	case terminal.MouseLeft, terminal.MouseMiddle, terminal.MouseRight:
	default:
		return
	}
	o.mod = Modality{Mouse: true}
	o.from = o.to
	o.to = ev.TargetElement()
	o.emitTo(ev)
}

func (o *Observer) handleFocus(ev *dom.Event) {
	if !o.engaged {
		return
	}
	target := ev.TargetElement()
	if target == nil || target == o.to {
		return
	}
	o.from = o.to
	o.to = target
	o.emitTo(ev)
}

func (o *Observer) setDirection(forward bool) {
	o.mod.Forward = forward
	o.mod.Backward = !forward
}

func (o *Observer) emitTo(ev *dom.Event) {
	o.emit(Signal{
		Event:    ev,
		Kind:     SignalTo,
		From:     o.from,
		To:       o.to,
		Modality: o.mod,
	})
}

func (o *Observer) emit(sig Signal) {
	recordSignal(sig)
	subs := append([]*Subscription(nil), o.subs...)
	for _, s := range subs {
		if !s.active {
			continue
		}
		o.deliver(s, sig)
	}
}

func (o *Observer) deliver(s *Subscription, sig Signal) {
	defer func() {
		if r := recover(); r != nil {
			recordSubscriberPanic()
			o.logger.SubscriberPanicked(s.id, sig.Kind.String(), r, debug.Stack())
		}
	}()
	s.fn(sig)
}

package focus

import (
	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/logging"
	"github.com/odvcencio/tabstop/pkg/ui/dom"
)

// rule identifies one redirect of the portal state machine.
type rule int

const (
	ruleNone rule = iota
	// After-anchor order: previous, anchor, portal, next.
	ruleA1 // forward past the anchor into the portal
	ruleA2 // forward past the portal's last stop to next
	ruleA3 // backward onto the anchor from next, into the portal's last stop
	ruleA4 // backward past the portal's first stop to the anchor
	// Before-anchor order: previous, portal, anchor, next.
	ruleB1 // forward onto the anchor from previous, into the portal's first stop
	ruleB2 // forward past the portal's last stop to the anchor
	ruleB3 // backward past the anchor into the portal's last stop
	ruleB4 // backward past the portal's first stop to previous
)

var ruleNames = [...]string{"none", "A1", "A2", "A3", "A4", "B1", "B2", "B3", "B4"}

func (r rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "unknown"
}

// PortalConfig configures a TabStopPortal. Container and one of After or
// Before are required. When both anchors are set After wins and Before is
// ignored.
type PortalConfig struct {
	// Container is the remote region that joins the Tab sequence.
	Container *dom.Element

	// After places the portal immediately after this element.
	After *dom.Element

	// Before places the portal immediately before this element.
	Before *dom.Element

	// AutoEngage engages the portal on construction.
	AutoEngage bool

	// Enumerator finds tab stops. Defaults to dom.Enumerator.
	Enumerator Enumerator

	Logger *logging.Logger
}

// TabStopPortal makes Container behave, for Tab purposes, as if it sat
// directly after (or before) an anchor element elsewhere in the document.
type TabStopPortal struct {
	container *dom.Element
	anchor    *dom.Element
	after     bool

	enum     Enumerator
	logger   *logging.Logger
	observer *Observer
	sub      *Subscription

	engaged    bool
	portalling bool
}

// NewTabStopPortal validates cfg and builds a portal. The portal's observer
// watches the body of the container's document so Tab presses on the
// anchor are seen.
func NewTabStopPortal(cfg PortalConfig) (*TabStopPortal, error) {
	if cfg.Container == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "tab stop portal requires a container")
	}
	if cfg.After == nil && cfg.Before == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "tab stop portal requires an after or before anchor").
			WithContext("container", cfg.Container.String())
	}
	doc := cfg.Container.Document()
	if doc == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "tab stop portal container has no document").
			WithContext("container", cfg.Container.String())
	}

	logger := logging.OrDiscard(cfg.Logger)
	p := &TabStopPortal{
		container: cfg.Container,
		enum:      cfg.Enumerator,
		logger:    logger.WithComponent("tab_stop_portal"),
	}
	if p.enum == nil {
		p.enum = dom.Enumerator{Inspector: doc.Inspector()}
	}
	if cfg.After != nil {
		p.anchor, p.after = cfg.After, true
		if cfg.Before != nil {
			p.logger.Warn("both anchors configured, ignoring before",
				"after", cfg.After.String(),
				"before", cfg.Before.String(),
			)
		}
	} else {
		p.anchor = cfg.Before
	}

	obs, err := NewObserver(doc.Body(), WithObserverLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "create portal observer")
	}
	p.observer = obs

	if cfg.AutoEngage {
		p.Engage()
	}
	return p, nil
}

// Engaged reports whether the portal is reacting to navigation.
func (p *TabStopPortal) Engaged() bool {
	return p.engaged
}

// Portalling reports whether logical focus is inside the portal's virtual
// position in the Tab sequence.
func (p *TabStopPortal) Portalling() bool {
	return p.portalling
}

// Observer returns the portal's navigation observer.
func (p *TabStopPortal) Observer() *Observer {
	return p.observer
}

// Engage starts the observer and subscribes. No-op when engaged.
func (p *TabStopPortal) Engage() {
	if p.engaged {
		return
	}
	p.engaged = true
	p.observer.Engage()
	p.sub = p.observer.Subscribe(p.handleSignal)
	p.logger.Lifecycle("engage", true)
}

// Disengage stops the observer and releases the subscription. No-op when
// not engaged.
func (p *TabStopPortal) Disengage() {
	if !p.engaged {
		return
	}
	p.engaged = false
	p.observer.Disengage()
	p.sub.Unsubscribe()
	p.sub = nil
	p.logger.Lifecycle("disengage", false)
}

func (p *TabStopPortal) handleSignal(sig Signal) {
	if !p.engaged {
		return
	}

	if sig.Mouse && sig.To != nil && !p.container.Contains(sig.To) {
		p.portalling = false
	}
	if !sig.Tabbing {
		return
	}

	var r rule
	if p.after {
		r = p.matchAfter(sig)
	} else {
		r = p.matchBefore(sig)
	}
	if r != ruleNone {
		p.fire(r, sig)
	}
}

func (p *TabStopPortal) matchAfter(sig Signal) rule {
	first := p.enum.FirstInteractiveChild(p.container)
	last := p.enum.LastInteractiveChild(p.container)
	switch {
	case sig.Forward && sig.From == p.anchor && !p.portalling:
		return ruleA1
	case sig.Forward && sig.From != nil && sig.From == last && p.portalling:
		return ruleA2
	case sig.Backward && sig.To == p.anchor && !p.portalling && sig.From != first:
		return ruleA3
	case sig.Backward && sig.From != nil && sig.From == first && p.portalling:
		return ruleA4
	}
	return ruleNone
}

func (p *TabStopPortal) matchBefore(sig Signal) rule {
	first := p.enum.FirstInteractiveChild(p.container)
	last := p.enum.LastInteractiveChild(p.container)
	switch {
	case sig.Forward && sig.To == p.anchor && !p.portalling && sig.From != last:
		return ruleB1
	case sig.Forward && sig.From != nil && sig.From == last && p.portalling:
		return ruleB2
	case sig.Backward && sig.From == p.anchor && !p.portalling:
		return ruleB3
	case sig.Backward && sig.From != nil && sig.From == first && p.portalling:
		return ruleB4
	}
	return ruleNone
}

// fire updates state before moving focus: the focus change re-enters
// handleSignal through the observer and must see the new state. A rule
// whose destination does not exist leaves the default action alone; exit
// rules still clear portalling.
func (p *TabStopPortal) fire(r rule, sig Signal) {
	var (
		target   *dom.Element
		entering bool
	)
	switch r {
	case ruleA1, ruleB1:
		entering = true
		target = p.enum.FirstInteractiveChild(p.container)
	case ruleA3, ruleB3:
		entering = true
		target = p.enum.LastInteractiveChild(p.container)
	case ruleA2:
		target = p.outside(p.enum.NextInteractiveElement)
	case ruleB4:
		target = p.outside(p.enum.PreviousInteractiveElement)
	case ruleA4, ruleB2:
		target = p.anchor
	}

	if target == nil {
		if !entering {
			p.portalling = false
		}
		p.logger.Debug("portal rule has no destination", "rule", r.String())
		return
	}

	p.portalling = entering
	if sig.Event != nil {
		sig.Event.PreventDefault()
	}
	recordPortalTransition(r)
	p.logger.PortalTransition(r.String(), dom.NodeString(sig.From), dom.NodeString(target), p.portalling)
	target.Focus()
}

// outside steps from the anchor with step until it finds an element that is
// not inside the portal container.
func (p *TabStopPortal) outside(step func(dom.Searchable, dom.Node) *dom.Element) *dom.Element {
	body := p.observer.Container()
	for el := step(body, p.anchor); el != nil; el = step(body, el) {
		if !p.container.Contains(el) {
			return el
		}
	}
	return nil
}

package dom

import (
	"slices"
	"strings"

	"github.com/odvcencio/tabstop/pkg/ui/terminal"
)

// Document owns a tree rooted at a body element and tracks the single
// active (focused) element.
type Document struct {
	body      *Element
	active    *Element
	inspector Inspector
}

// NewDocument creates an empty document with a body.
func NewDocument() *Document {
	d := &Document{}
	d.body = d.CreateElement("body")
	return d
}

// Body returns the root element.
func (d *Document) Body() *Element {
	return d.body
}

// Inspector returns the focusability rules the document applies.
func (d *Document) Inspector() Inspector {
	return d.inspector
}

// CreateElement creates a detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{doc: d, tag: strings.ToLower(strings.TrimSpace(tag))}
}

// CreateText creates a detached text node owned by d.
func (d *Document) CreateText(content string) *Text {
	return &Text{doc: d, content: content}
}

// ElementByID returns the first element in document order with the id.
func (d *Document) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	if d.body.id == id {
		return d.body
	}
	var found *Element
	d.body.Walk(func(n Node) bool {
		if el, ok := n.(*Element); ok && el.id == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// ActiveElement returns the focused element, or the body when nothing is.
func (d *Document) ActiveElement() *Element {
	if d.active == nil {
		return d.body
	}
	return d.active
}

// Focus moves focus to el and dispatches blur then focus events.
// Focusing the body blurs the current element. Returns false when el is
// already active, detached, or not focusable.
func (d *Document) Focus(el *Element) bool {
	if el == nil || el.doc != d {
		return false
	}
	if el == d.body {
		prev := d.active
		if prev == nil {
			return false
		}
		d.active = nil
		d.Dispatch(&Event{Type: EventBlur, Target: prev})
		return true
	}
	if el == d.active || !el.Connected() || !d.inspector.IsFocusable(el) {
		return false
	}

	prev := d.active
	d.active = el
	if prev != nil {
		d.Dispatch(&Event{Type: EventBlur, Target: prev, Related: el})
	}
	d.Dispatch(&Event{Type: EventFocus, Target: el, Related: prev})
	return true
}

// DispatchKey dispatches a keydown at the active element.
func (d *Document) DispatchKey(ke terminal.KeyEvent) *Event {
	ev := &Event{
		Type:   EventKeyDown,
		Target: d.ActiveElement(),
		Key:    ke.Key,
		Rune:   ke.Rune,
		Shift:  ke.Shift,
		Alt:    ke.Alt,
		Ctrl:   ke.Ctrl,
	}
	d.Dispatch(ev)
	return ev
}

// DispatchMouseDown dispatches a mouse press at target. A nil target means
// the body.
func (d *Document) DispatchMouseDown(target Node, me terminal.MouseEvent) *Event {
	if target == nil {
		target = d.body
	}
	ev := &Event{
		Type:   EventMouseDown,
		Target: target,
		X:      me.X,
		Y:      me.Y,
		Button: me.Button,
		Shift:  me.Shift,
		Alt:    me.Alt,
		Ctrl:   me.Ctrl,
	}
	d.Dispatch(ev)
	return ev
}

// Dispatch runs capture, target and bubble phases for ev, then the default
// action unless a listener prevented it.
func (d *Document) Dispatch(ev *Event) {
	if ev == nil || ev.Target == nil {
		return
	}

	targetEl, _ := ev.Target.(*Element)
	var path []*Element
	start := ev.Target.Parent()
	for p := start; p != nil; p = p.parent {
		path = append(path, p)
	}
	slices.Reverse(path)

	ev.Phase = PhaseCapture
	for _, el := range path {
		el.invoke(ev, true)
		if ev.stopped {
			break
		}
	}

	if !ev.stopped && targetEl != nil {
		ev.Phase = PhaseTarget
		targetEl.invoke(ev, true)
		targetEl.invoke(ev, false)
	}

	if !ev.stopped && ev.Type.Bubbles() {
		ev.Phase = PhaseBubble
		for i := len(path) - 1; i >= 0; i-- {
			path[i].invoke(ev, false)
			if ev.stopped {
				break
			}
		}
	}

	ev.Phase = PhaseNone
	ev.CurrentTarget = nil

	if !ev.defaultPrevented {
		d.defaultAction(ev)
	}
}

func (d *Document) defaultAction(ev *Event) {
	switch ev.Type {
	case EventKeyDown:
		if ev.Key == terminal.KeyTab && !ev.Ctrl && !ev.Alt {
			d.MoveSequential(!ev.Shift)
		}
	case EventMouseDown:
		if !pointerButton(ev.Button) {
			return
		}
		var el *Element
		switch t := ev.Target.(type) {
		case *Element:
			el = t
		default:
			el = t.Parent()
		}
		for ; el != nil; el = el.parent {
			if d.inspector.IsFocusable(el) {
				d.Focus(el)
				return
			}
		}
		d.Focus(d.body)
	}
}

func pointerButton(b terminal.MouseButton) bool {
	return b == terminal.MouseLeft || b == terminal.MouseMiddle || b == terminal.MouseRight
}

// TabOrder returns the tabbable elements in sequential navigation order:
// positive tab indexes ascending, then everything else in document order.
func (d *Document) TabOrder() []*Element {
	var order []*Element
	d.body.Walk(func(n Node) bool {
		if d.inspector.IsInteractive(n) {
			order = append(order, n.(*Element))
		}
		return true
	})
	slices.SortStableFunc(order, func(a, b *Element) int {
		return tabRank(a) - tabRank(b)
	})
	return order
}

func tabRank(el *Element) int {
	if i, ok := el.TabIndex(); ok && i > 0 {
		return i
	}
	return maxTabRank
}

const maxTabRank = 1 << 30

// MoveSequential moves focus to the next (or previous) tabbable element,
// wrapping at the ends. Returns false if nothing is tabbable.
func (d *Document) MoveSequential(forward bool) bool {
	order := d.TabOrder()
	if len(order) == 0 {
		return false
	}

	n := len(order)
	cur := d.active
	if idx := slices.Index(order, cur); idx >= 0 {
		if forward {
			return d.Focus(order[(idx+1)%n])
		}
		return d.Focus(order[(idx-1+n)%n])
	}

	// Focus is on the body or on something outside the tab order; continue
	// from its document position.
	pos := d.positions()
	here := -1
	if cur != nil {
		here = pos[cur]
	}
	if forward {
		for _, el := range order {
			if pos[el] > here {
				return d.Focus(el)
			}
		}
		return d.Focus(order[0])
	}
	if cur == nil {
		return d.Focus(order[n-1])
	}
	for i := n - 1; i >= 0; i-- {
		if pos[order[i]] < here {
			return d.Focus(order[i])
		}
	}
	return d.Focus(order[n-1])
}

func (d *Document) positions() map[*Element]int {
	pos := make(map[*Element]int)
	i := 0
	d.body.Walk(func(n Node) bool {
		if el, ok := n.(*Element); ok {
			pos[el] = i
			i++
		}
		return true
	})
	return pos
}

package focus

import "github.com/odvcencio/tabstop/pkg/ui/dom"

// RovingSelection keeps exactly one member of an ElementList reachable by
// Tab. Members that carry no tab index attribute are skipped.
//
// The selection reads the list on every call but never mutates it.
type RovingSelection struct {
	elements  *ElementList
	inspector Inspector
	index     int
	engaged   bool
}

// RovingOption configures a RovingSelection.
type RovingOption func(*RovingSelection)

// WithInspector makes the selection move real focus only to members the
// inspector reports as focusable. Reachability is still toggled on all.
func WithInspector(in Inspector) RovingOption {
	return func(r *RovingSelection) {
		r.inspector = in
	}
}

// NewRovingSelection binds a selection to elements.
func NewRovingSelection(elements *ElementList, opts ...RovingOption) *RovingSelection {
	if elements == nil {
		elements = NewElementList()
	}
	r := &RovingSelection{elements: elements}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Elements returns the list the selection roves over.
func (r *RovingSelection) Elements() *ElementList {
	return r.elements
}

// Index returns the active index.
func (r *RovingSelection) Index() int {
	return r.index
}

// Active returns the member at the active index, or nil.
func (r *RovingSelection) Active() dom.Node {
	return r.elements.At(r.index)
}

// Engaged reports whether reachability is currently asserted.
func (r *RovingSelection) Engaged() bool {
	return r.engaged
}

// Next moves to the following member. No-op at the end.
func (r *RovingSelection) Next() {
	if r.index < r.elements.Len()-1 {
		r.MoveFocusTo(r.index + 1)
	}
}

// Prev moves to the preceding member. No-op at the start.
func (r *RovingSelection) Prev() {
	if r.index > 0 {
		r.MoveFocusTo(r.index - 1)
	}
}

// First moves to the first member.
func (r *RovingSelection) First() {
	r.MoveFocusTo(0)
}

// Last moves to the last member.
func (r *RovingSelection) Last() {
	r.MoveFocusTo(r.elements.Len() - 1)
}

// GotoIndex moves to member i. Out-of-range indexes are ignored.
func (r *RovingSelection) GotoIndex(i int) {
	r.MoveFocusTo(i)
}

// MoveFocusTo makes member i active and gives it real focus. An index
// outside the list leaves the selection untouched.
func (r *RovingSelection) MoveFocusTo(i int) {
	if i < 0 || i >= r.elements.Len() {
		return
	}
	r.index = i
	r.Engage(true)
}

// Refocus re-asserts reachability at the current index and gives the
// active member real focus.
func (r *RovingSelection) Refocus() {
	r.Engage(true)
}

// Engage marks the active member reachable and every other member
// unreachable. With moveRealFocus set the active member also takes focus.
func (r *RovingSelection) Engage(moveRealFocus bool) {
	r.engaged = true
	for i, n := range r.elements.Nodes() {
		ti, ok := n.(dom.TabIndexer)
		if !ok {
			continue
		}
		if i != r.index {
			ti.SetTabIndex(-1)
			continue
		}
		ti.SetTabIndex(0)
		if moveRealFocus {
			r.focus(n)
		}
	}
}

// Disengage removes the tab index attribute from every member and resets
// the active index.
func (r *RovingSelection) Disengage() {
	for _, n := range r.elements.Nodes() {
		if ti, ok := n.(dom.TabIndexer); ok {
			ti.RemoveTabIndex()
		}
	}
	r.index = 0
	r.engaged = false
}

func (r *RovingSelection) focus(n dom.Node) {
	f, ok := n.(dom.Focuser)
	if !ok {
		return
	}
	if r.inspector != nil && !r.inspector.IsFocusable(n) {
		return
	}
	f.Focus()
}

// Package focus tracks keyboard and pointer navigation over a dom tree and
// bends the Tab sequence where a host needs it to.
//
// The pieces build on each other: ElementList and DOMOrderList hold ordered
// groups of nodes, RovingSelection keeps one member of a group reachable by
// Tab, Observer turns raw input into navigation Signals, and TabStopPortal
// consumes those signals to make a remote region behave as if it sat next
// to an anchor element. ArrowNavigator drives a RovingSelection from arrow
// keys.
//
// Everything here runs on the goroutine that dispatches document events.
// None of the types are safe for concurrent use.
package focus

import "github.com/odvcencio/tabstop/pkg/ui/dom"

// ElementList is an insertion-ordered set of nodes. Membership is by
// identity. A list may be shared by reference between a RovingSelection
// and its host; the host owns it.
type ElementList struct {
	index map[dom.Node]struct{}
	order []dom.Node
}

// NewElementList creates a list holding nodes in first-seen order.
// Duplicates and nil entries are dropped.
func NewElementList(nodes ...dom.Node) *ElementList {
	l := &ElementList{index: make(map[dom.Node]struct{}, len(nodes))}
	for _, n := range nodes {
		l.Add(n)
	}
	return l
}

// Add appends n unless it is already a member. Returns l for chaining.
func (l *ElementList) Add(n dom.Node) *ElementList {
	if n == nil || l.Has(n) {
		return l
	}
	if l.index == nil {
		l.index = make(map[dom.Node]struct{})
	}
	l.index[n] = struct{}{}
	l.order = append(l.order, n)
	return l
}

// Remove deletes n, keeping the order of the rest. Returns false if n was
// not a member.
func (l *ElementList) Remove(n dom.Node) bool {
	if !l.Has(n) {
		return false
	}
	delete(l.index, n)
	if i := l.Index(n); i >= 0 {
		l.order = append(l.order[:i], l.order[i+1:]...)
	}
	return true
}

// Clear empties the list.
func (l *ElementList) Clear() {
	clear(l.index)
	l.order = nil
}

// Has reports membership.
func (l *ElementList) Has(n dom.Node) bool {
	if n == nil {
		return false
	}
	_, ok := l.index[n]
	return ok
}

// Len returns the number of members.
func (l *ElementList) Len() int {
	return len(l.order)
}

// At returns the member at position i, or nil when i is out of range.
func (l *ElementList) At(i int) dom.Node {
	if i < 0 || i >= len(l.order) {
		return nil
	}
	return l.order[i]
}

// Index returns the position of n, or -1.
func (l *ElementList) Index(n dom.Node) int {
	for i, m := range l.order {
		if m == n {
			return i
		}
	}
	return -1
}

// Nodes returns a copy of the members in order.
func (l *ElementList) Nodes() []dom.Node {
	out := make([]dom.Node, len(l.order))
	copy(out, l.order)
	return out
}

// replace swaps in a new order. Callers guarantee nodes is duplicate-free.
func (l *ElementList) replace(nodes []dom.Node) {
	clear(l.index)
	if l.index == nil {
		l.index = make(map[dom.Node]struct{}, len(nodes))
	}
	for _, n := range nodes {
		l.index[n] = struct{}{}
	}
	l.order = nodes
}

// Package dom is a small retained element tree for terminal UIs.
//
// It provides what a focus engine needs from its host: parent/child
// structure in document order, a tab index attribute, a single active
// element per document, and capture/bubble event dispatch with default
// actions for Tab and mouse presses.
package dom

import (
	"errors"
	"strings"
)

// ErrHierarchy is returned when an insertion would create a cycle or move a
// node between documents.
var ErrHierarchy = errors.New("dom: invalid hierarchy")

// Node is any member of a document tree. Identity is pointer equality.
type Node interface {
	// Parent returns the parent element, or nil when detached or root.
	Parent() *Element

	// Children returns the child nodes in document order.
	Children() []Node
}

// Searchable is a node whose descendants can be walked in document order.
// Child lookups take a Searchable so a leaf handle cannot be passed by
// mistake.
type Searchable interface {
	Node

	// Walk visits descendants (not the node itself) in pre-order until fn
	// returns false.
	Walk(fn func(Node) bool)

	// Contains reports whether n is this node or one of its descendants.
	Contains(n Node) bool
}

// TabIndexer is implemented by nodes that carry a tab index attribute.
type TabIndexer interface {
	TabIndex() (int, bool)
	SetTabIndex(i int)
	RemoveTabIndex()
}

// Focuser is implemented by nodes that can take input focus.
type Focuser interface {
	Focus()
}

// Text is a non-interactive leaf, typically a label.
type Text struct {
	parent  *Element
	doc     *Document
	content string
	bounds  Rect
}

// Parent returns the parent element.
func (t *Text) Parent() *Element {
	if t == nil {
		return nil
	}
	return t.parent
}

// Children always returns nil.
func (t *Text) Children() []Node { return nil }

// Content returns the text.
func (t *Text) Content() string { return t.content }

// SetContent replaces the text.
func (t *Text) SetContent(s string) { t.content = s }

// Bounds returns the screen area of the text.
func (t *Text) Bounds() Rect { return t.bounds }

// SetBounds sets the screen area of the text.
func (t *Text) SetBounds(r Rect) { t.bounds = r }

// Element is an element node.
type Element struct {
	doc      *Document
	parent   *Element
	children []Node

	id    string
	tag   string
	label string
	href  string

	bounds Rect

	tabIndex    int
	hasTabIndex bool
	disabled    bool
	hidden      bool
	editable    bool

	listeners []*Registration
}

// Parent returns the parent element.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// SetID sets the element id.
func (e *Element) SetID(id string) { e.id = id }

// Tag returns the lowercase tag name.
func (e *Element) Tag() string { return e.tag }

// Label returns the display label.
func (e *Element) Label() string { return e.label }

// SetLabel sets the display label.
func (e *Element) SetLabel(s string) { e.label = s }

// Href returns the link target for anchors.
func (e *Element) Href() string { return e.href }

// SetHref sets the link target.
func (e *Element) SetHref(s string) { e.href = s }

// Bounds returns the screen area of the element.
func (e *Element) Bounds() Rect { return e.bounds }

// SetBounds sets the screen area of the element.
func (e *Element) SetBounds(r Rect) { e.bounds = r }

// Disabled reports whether the element is disabled.
func (e *Element) Disabled() bool { return e.disabled }

// SetDisabled toggles the disabled state.
func (e *Element) SetDisabled(v bool) { e.disabled = v }

// Hidden reports whether the element itself is hidden.
func (e *Element) Hidden() bool { return e.hidden }

// SetHidden toggles visibility.
func (e *Element) SetHidden(v bool) { e.hidden = v }

// Editable reports whether the element accepts text input.
func (e *Element) Editable() bool { return e.editable }

// SetEditable toggles the editable state.
func (e *Element) SetEditable(v bool) { e.editable = v }

// TabIndex returns the tab index and whether the attribute is present.
func (e *Element) TabIndex() (int, bool) { return e.tabIndex, e.hasTabIndex }

// SetTabIndex sets the tab index attribute.
func (e *Element) SetTabIndex(i int) {
	e.tabIndex = i
	e.hasTabIndex = true
}

// RemoveTabIndex removes the tab index attribute entirely.
func (e *Element) RemoveTabIndex() {
	e.tabIndex = 0
	e.hasTabIndex = false
}

// Focus asks the document to move input focus here.
func (e *Element) Focus() {
	if e.doc != nil {
		e.doc.Focus(e)
	}
}

// Blur returns focus to the document body if this element has it.
func (e *Element) Blur() {
	if e.doc != nil && e.doc.active == e {
		e.doc.Focus(e.doc.body)
	}
}

// AppendChild appends child, detaching it from any previous parent.
func (e *Element) AppendChild(child Node) error {
	return e.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref. A nil ref appends.
func (e *Element) InsertBefore(child, ref Node) error {
	if err := e.checkInsert(child); err != nil {
		return err
	}
	if child == ref {
		return nil
	}
	if old := child.Parent(); old != nil {
		old.RemoveChild(child)
	}

	pos := len(e.children)
	if ref != nil {
		pos = e.indexOf(ref)
		if pos < 0 {
			return ErrHierarchy
		}
	}

	e.children = append(e.children, nil)
	copy(e.children[pos+1:], e.children[pos:])
	e.children[pos] = child
	setParent(child, e)
	return nil
}

// RemoveChild detaches child. Returns false if child is not a direct child.
// Focus inside the removed subtree falls back to the body.
func (e *Element) RemoveChild(child Node) bool {
	i := e.indexOf(child)
	if i < 0 {
		return false
	}
	e.children = append(e.children[:i], e.children[i+1:]...)
	setParent(child, nil)

	if e.doc != nil && e.doc.active != nil {
		if sub, ok := child.(*Element); ok && sub.Contains(e.doc.active) {
			e.doc.active = nil
		}
	}
	return true
}

// Contains reports whether n is e or a descendant of e.
func (e *Element) Contains(n Node) bool {
	if n == nil {
		return false
	}
	if el, ok := n.(*Element); ok && el == e {
		return true
	}
	for p := n.Parent(); p != nil; p = p.parent {
		if p == e {
			return true
		}
	}
	return false
}

// Walk visits descendants in pre-order until fn returns false.
func (e *Element) Walk(fn func(Node) bool) {
	e.walk(fn)
}

func (e *Element) walk(fn func(Node) bool) bool {
	for _, child := range e.children {
		if !fn(child) {
			return false
		}
		if el, ok := child.(*Element); ok {
			if !el.walk(fn) {
				return false
			}
		}
	}
	return true
}

// Connected reports whether e is attached under its document's body.
func (e *Element) Connected() bool {
	if e.doc == nil {
		return false
	}
	return e.doc.body.Contains(e)
}

// String returns a short description for logs.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(e.tag)
	if e.id != "" {
		sb.WriteString("#")
		sb.WriteString(e.id)
	}
	return sb.String()
}

func (e *Element) indexOf(n Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (e *Element) checkInsert(child Node) error {
	switch c := child.(type) {
	case *Element:
		if c == nil || c.doc != e.doc || c.Contains(e) {
			return ErrHierarchy
		}
	case *Text:
		if c == nil || c.doc != e.doc {
			return ErrHierarchy
		}
	default:
		return ErrHierarchy
	}
	return nil
}

func setParent(n Node, parent *Element) {
	switch c := n.(type) {
	case *Element:
		c.parent = parent
	case *Text:
		c.parent = parent
	}
}

// NodeString describes any node for logs.
func NodeString(n Node) string {
	switch v := n.(type) {
	case nil:
		return "<nil>"
	case *Element:
		return v.String()
	case *Text:
		if v == nil {
			return "<nil>"
		}
		return "#text"
	default:
		return "node"
	}
}
